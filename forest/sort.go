package forest

import (
	"fmt"
	"sort"
	"strings"

	lex "github.com/tiefling-cat/derinet/lexeme"
)

// Sort returns a new store with the lexemes in canonical order: by
// lowercased lemma, then morph, ascending, stable for equal keys.
//
// Every id changes under the sort. Parents are rewritten through the
// old to new id map, children are discarded and relinked from the
// rewritten parents. The input store is never modified: callers swap in
// the returned store and rebuild the index with NewIndex. On error the
// input is the only valid store.
func Sort(s *Store) (*Store, error) {
	nodes := make([]lex.Lexeme, len(s.nodes))
	copy(nodes, s.nodes)

	sort.SliceStable(nodes, func(i, j int) bool {
		li, lj := strings.ToLower(nodes[i].Lemma), strings.ToLower(nodes[j].Lemma)
		if li != lj {
			return li < lj
		}
		return nodes[i].Morph < nodes[j].Morph
	})

	// nodes[pos].Id is the old id of the lexeme now at pos, so the
	// inverse permutation maps old ids to new ones.
	newId := make([]int, len(nodes))
	for pos, n := range nodes {
		newId[n.Id] = pos
	}

	sorted := NewStore()
	for _, n := range nodes {
		if n.Parent != lex.NoParent {
			if n.Parent < 0 || n.Parent >= len(nodes) {
				return nil, fmt.Errorf("%w: lexeme %d points to %d", ErrDanglingParent, n.Id, n.Parent)
			}
			n.Parent = newId[n.Parent]
		}

		sorted.Append(n)
	}

	if err := sorted.LinkChildren(); err != nil {
		return nil, err
	}

	return sorted, nil
}
