package stat

import (
	"testing"

	"github.com/tiefling-cat/derinet/forest"
	lex "github.com/tiefling-cat/derinet/lexeme"
)

func TestAggregate(t *testing.T) {
	records := []lex.Lexeme{
		{Id: 0, Lemma: "do", Morph: "base", Pos: "V", Parent: lex.NoParent},
		{Id: 1, Lemma: "doer", Morph: "agent", Pos: "N", Parent: 0},
		{Id: 2, Lemma: "doing", Morph: "gerund", Pos: "N", Parent: 0},
	}

	store, _, _, err := forest.Build(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hdl := NewHandler()
	hdl.Aggregate(store)

	stats := hdl.Get()
	if stats.NumLexemes != 3 {
		t.Errorf("expected 3 lexemes, got %d", stats.NumLexemes)
	}
	if stats.NumRoots != 1 {
		t.Errorf("expected 1 root, got %d", stats.NumRoots)
	}
	if stats.NumLeaves != 2 {
		t.Errorf("expected 2 leaves, got %d", stats.NumLeaves)
	}
	if stats.NumEdges != 2 {
		t.Errorf("expected 2 edges, got %d", stats.NumEdges)
	}
	if stats.ChildrenDis[0] != 2 || stats.ChildrenDis[2] != 1 {
		t.Errorf("unexpected children distribution %v", stats.ChildrenDis)
	}
	if stats.ChildrenPerNodeMean != 2.0/3.0 {
		t.Errorf("expected children mean 2/3, got %v", stats.ChildrenPerNodeMean)
	}
}

func TestAggregateEmpty(t *testing.T) {
	store, _, _, err := forest.Build(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hdl := NewHandler()
	hdl.Aggregate(store)

	stats := hdl.Get()
	if stats.NumLexemes != 0 || stats.NumRoots != 0 || stats.NumLeaves != 0 {
		t.Errorf("unexpected stats for empty store: %+v", stats)
	}

	// no division by zero, the mean of nothing is zero
	if stats.ChildrenPerNodeMean != 0 {
		t.Errorf("expected zero children mean, got %v", stats.ChildrenPerNodeMean)
	}
}
