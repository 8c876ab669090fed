package forest

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound reports a lemma that is not in the index.
	ErrNotFound = errors.New("lemma not found")

	// ErrAmbiguous reports a lemma carried by several lexemes that the
	// given morph pattern could not single out.
	ErrAmbiguous = errors.New("ambiguous lemma")

	// ErrDuplicateLexeme reports a second lexeme with an already
	// indexed lemma and morph pair.
	ErrDuplicateLexeme = errors.New("duplicate lemma and morph pair")
)

// Index maps a lemma to the ids of the lexemes carrying it, keyed by
// morph pattern. It is valid only against the id space of the store it
// was built from; a sort invalidates it.
type Index map[string]map[string]int

// Insert registers id under the lemma and morph pair.
func (x Index) Insert(lemma, morph string, id int) error {
	byMorph, ok := x[lemma]
	if !ok {
		byMorph = map[string]int{}
		x[lemma] = byMorph
	}

	if _, ok := byMorph[morph]; ok {
		return fmt.Errorf("%w: %q %q", ErrDuplicateLexeme, lemma, morph)
	}

	byMorph[morph] = id
	return nil
}

// Lookup resolves a lemma to an id. An empty morph means unspecified.
//
// A lemma carried by exactly one lexeme resolves regardless of morph.
// With several candidates the morph must single one out, otherwise the
// lookup fails with ErrAmbiguous. An ambiguous lemma is a different
// outcome than an absent one and callers must treat it as such.
func (x Index) Lookup(lemma, morph string) (int, error) {
	byMorph, ok := x[lemma]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, lemma)
	}

	if len(byMorph) == 1 {
		for _, id := range byMorph {
			return id, nil
		}
	}

	if morph != "" {
		if id, ok := byMorph[morph]; ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrAmbiguous, lemma)
}

// Lemmas returns all lemmas in the index, sorted.
func (x Index) Lemmas() []string {
	lemmas := make([]string, 0, len(x))
	for lemma := range x {
		lemmas = append(lemmas, lemma)
	}

	sort.Strings(lemmas)
	return lemmas
}

// Morphs returns the morph patterns registered under the lemma, sorted.
// Used to offer disambiguation choices for an ambiguous lemma.
func (x Index) Morphs(lemma string) []string {
	byMorph, ok := x[lemma]
	if !ok {
		return nil
	}

	morphs := make([]string, 0, len(byMorph))
	for m := range byMorph {
		morphs = append(morphs, m)
	}

	sort.Strings(morphs)
	return morphs
}

// NewIndex builds a fresh index against the current ids of the store.
// Required after a sort, which relabels every lexeme.
func NewIndex(s *Store) (Index, error) {
	x := Index{}
	for _, n := range s.nodes {
		if err := x.Insert(n.Lemma, n.Morph, n.Id); err != nil {
			return nil, err
		}
	}

	return x, nil
}
