// Package forest implements the derivational forest: an arena of
// lexemes addressed by dense integer ids, the lemma index and the
// canonical sort.
package forest

import (
	"errors"
	"fmt"

	lex "github.com/tiefling-cat/derinet/lexeme"
)

var (
	// ErrOutOfRange reports an id outside the store.
	ErrOutOfRange = errors.New("lexeme id out of range")

	// ErrDanglingParent reports a parent reference outside the store,
	// or a lexeme that is its own parent.
	ErrDanglingParent = errors.New("dangling parent reference")
)

// Store owns all lexemes of the forest. A lexeme is addressed only by
// its id, which is its position in the store.
type Store struct {
	nodes []lex.Lexeme
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append inserts the lexeme at the next free id and returns that id.
// The stated Id field of the argument is overwritten and its children
// are discarded; edges are linked separately by LinkChildren.
func (s *Store) Append(l lex.Lexeme) int {
	l.Id = len(s.nodes)
	l.Children = nil
	s.nodes = append(s.nodes, l)
	return l.Id
}

// Len returns the number of lexemes in the store.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Get returns the lexeme with the given id.
func (s *Store) Get(id int) (lex.Lexeme, error) {
	if id < 0 || id >= len(s.nodes) {
		return lex.Lexeme{}, fmt.Errorf("%w: %d", ErrOutOfRange, id)
	}

	return s.nodes[id], nil
}

// All returns the lexemes in id order. The slice is owned by the store,
// callers must not modify it.
func (s *Store) All() []lex.Lexeme {
	return s.nodes
}

// ValidateContiguity checks that the ids are exactly 0..N-1, i.e. that
// every lexeme sits at the position its id states. A violation is
// reported as a warning, not a failure: the forest may still be usable.
// Guards against callers corrupting ids through the slice that All
// exposes.
func (s *Store) ValidateContiguity() *Warning {
	for i := range s.nodes {
		if s.nodes[i].Id != i {
			return &Warning{
				Msg: fmt.Sprintf("lexeme numeration not contiguous: %d lexemes total but id %d at position %d", len(s.nodes), s.nodes[i].Id, i),
			}
		}
	}

	return nil
}

// LinkChildren recomputes every children list from the parent
// references in a single pass. Existing children lists are discarded
// first, so repeated calls never accumulate duplicate edges.
func (s *Store) LinkChildren() error {
	for i := range s.nodes {
		s.nodes[i].Children = nil
	}

	for i := range s.nodes {
		p := s.nodes[i].Parent
		if p == lex.NoParent {
			continue
		}

		if p < 0 || p >= len(s.nodes) || p == s.nodes[i].Id {
			return fmt.Errorf("%w: lexeme %d points to %d", ErrDanglingParent, s.nodes[i].Id, p)
		}

		s.nodes[p].Children = append(s.nodes[p].Children, s.nodes[i].Id)
	}

	return nil
}
