// Package render provides read only traversal and rendering of
// derivation subtrees. Nothing in this package modifies the store.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/tiefling-cat/derinet/forest"
	lex "github.com/tiefling-cat/derinet/lexeme"
	"github.com/tiefling-cat/derinet/tsv"
)

// ErrCycle reports a cycle among the parent references. A valid forest
// never has one; the traversal checks defensively instead of recursing
// forever on a corrupt store.
var ErrCycle = errors.New("cycle in derivation links")

// Node is a subtree: a lexeme and the subtrees of its children.
type Node struct {
	Lexeme   lex.Lexeme `json:"lexeme"`
	Children []Node     `json:"children,omitempty"`
}

// Renderer writes a subtree in some output format.
type Renderer interface {
	Render(Node) error
}

// Subtree returns the subtree rooted at id.
func Subtree(s *forest.Store, id int) (Node, error) {
	return subtree(s, id, map[int]bool{})
}

func subtree(s *forest.Store, id int, seen map[int]bool) (Node, error) {
	if seen[id] {
		return Node{}, fmt.Errorf("%w: lexeme %d visited twice", ErrCycle, id)
	}
	seen[id] = true

	l, err := s.Get(id)
	if err != nil {
		return Node{}, err
	}

	n := Node{Lexeme: l}
	for _, child := range l.Children {
		cn, err := subtree(s, child, seen)
		if err != nil {
			return Node{}, err
		}

		n.Children = append(n.Children, cn)
	}

	return n, nil
}

// TreeRenderer writes a subtree line by line, depth first, with box
// drawing connectors. The last child of a node gets a different
// connector than its earlier siblings.
type TreeRenderer struct {
	W io.Writer
}

// NewTreeRenderer creates a TreeRenderer writing to w.
func NewTreeRenderer(w io.Writer) *TreeRenderer {
	return &TreeRenderer{W: w}
}

// Render writes the subtree. Every line is the tab separated record of
// a lexeme behind its connector.
func (r *TreeRenderer) Render(n Node) error {
	return r.render(n, "", "")
}

func (r *TreeRenderer) render(n Node, prefix, connector string) error {
	if _, err := fmt.Fprintf(r.W, "%s%s%s\n", prefix, connector, tsv.Encode(n.Lexeme)); err != nil {
		return err
	}

	childPrefix := prefix
	switch connector {
	case "├─":
		childPrefix += "│ "
	case "└─":
		childPrefix += "  "
	}

	for i, c := range n.Children {
		conn := "├─"
		if i == len(n.Children)-1 {
			conn = "└─"
		}

		if err := r.render(c, childPrefix, conn); err != nil {
			return err
		}
	}

	return nil
}

// compile-time interface check
var _ Renderer = (*TreeRenderer)(nil)
