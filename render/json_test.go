package render

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONRendererRender(t *testing.T) {
	store := testStore(t)

	n, err := Subtree(store, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Node
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.Lexeme.Lemma != "do" {
		t.Errorf("expected lemma 'do', got %q", got.Lexeme.Lemma)
	}

	if len(got.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(got.Children))
	}

	if got.Children[0].Lexeme.Lemma != "doer" {
		t.Errorf("expected first child 'doer', got %q", got.Children[0].Lexeme.Lemma)
	}
}

func TestJSONRendererOmitsChildlessArray(t *testing.T) {
	store := testStore(t)

	n, err := Subtree(store, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := NewJSONRenderer(&buf).Render(n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bytes.Contains(buf.Bytes(), []byte(`"children"`)) {
		t.Errorf("childless node must omit the children key: %s", buf.String())
	}
}
