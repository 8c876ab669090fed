package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tiefling-cat/derinet/forest"
	lex "github.com/tiefling-cat/derinet/lexeme"
)

func testStore(t *testing.T) *forest.Store {
	t.Helper()

	records := []lex.Lexeme{
		{Id: 0, Lemma: "do", Morph: "base", Pos: "V", Parent: lex.NoParent},
		{Id: 1, Lemma: "doer", Morph: "agent", Pos: "N", Parent: 0},
		{Id: 2, Lemma: "doing", Morph: "gerund", Pos: "N", Parent: 0},
	}

	store, _, _, err := forest.Build(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return store
}

func TestSubtree(t *testing.T) {
	store := testStore(t)

	n, err := Subtree(store, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n.Lexeme.Lemma != "do" {
		t.Errorf("expected root 'do', got %q", n.Lexeme.Lemma)
	}
	if len(n.Children) != 2 {
		t.Fatalf("expected 2 child subtrees, got %d", len(n.Children))
	}

	if n.Children[0].Lexeme.Lemma != "doer" || n.Children[1].Lexeme.Lemma != "doing" {
		t.Errorf("unexpected child order: %q, %q", n.Children[0].Lexeme.Lemma, n.Children[1].Lexeme.Lemma)
	}
	for _, c := range n.Children {
		if len(c.Children) != 0 {
			t.Errorf("expected childless subtree for %q", c.Lexeme.Lemma)
		}
	}
}

func TestSubtreeOfLeaf(t *testing.T) {
	store := testStore(t)

	n, err := Subtree(store, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n.Lexeme.Lemma != "doer" || len(n.Children) != 0 {
		t.Errorf("unexpected subtree %+v", n)
	}
}

func TestSubtreeOutOfRange(t *testing.T) {
	store := testStore(t)

	if _, err := Subtree(store, 9); !errors.Is(err, forest.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestSubtreeCycle(t *testing.T) {
	// two non-root lexemes pointing at each other pass the build range
	// checks but violate the forest shape
	records := []lex.Lexeme{
		{Id: 0, Lemma: "a", Morph: "x", Pos: "N", Parent: 1},
		{Id: 1, Lemma: "b", Morph: "y", Pos: "N", Parent: 0},
	}

	store, _, _, err := forest.Build(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Subtree(store, 0); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
}

func TestTreeRendererGlyphs(t *testing.T) {
	store := testStore(t)

	n, err := Subtree(store, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	r := NewTreeRenderer(&buf)
	if err := r.Render(n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}

	if lines[0] != "0\tdo\tbase\tV\t" {
		t.Errorf("unexpected root line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "├─1\tdoer") {
		t.Errorf("expected sibling connector on %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "└─2\tdoing") {
		t.Errorf("expected last child connector on %q", lines[2])
	}
}

func TestTreeRendererNestedPrefix(t *testing.T) {
	records := []lex.Lexeme{
		{Id: 0, Lemma: "do", Morph: "base", Pos: "V", Parent: lex.NoParent},
		{Id: 1, Lemma: "doer", Morph: "agent", Pos: "N", Parent: 0},
		{Id: 2, Lemma: "doing", Morph: "gerund", Pos: "N", Parent: 0},
		{Id: 3, Lemma: "doership", Morph: "state", Pos: "N", Parent: 1},
	}

	store, _, _, err := forest.Build(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := Subtree(store, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := NewTreeRenderer(&buf).Render(n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}

	// doership sits under doer, which has a later sibling, so its line
	// carries the continuation bar
	if !strings.HasPrefix(lines[2], "│ └─3\tdoership") {
		t.Errorf("expected continuation prefix on %q", lines[2])
	}
}

func TestRenderDoesNotMutateStore(t *testing.T) {
	store := testStore(t)

	n, err := Subtree(store, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := NewTreeRenderer(&buf).Render(n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root, _ := store.Get(0)
	if len(root.Children) != 2 {
		t.Errorf("store mutated by render: %v", root.Children)
	}
}
