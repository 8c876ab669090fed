package tsv

import (
	"errors"
	"testing"

	lex "github.com/tiefling-cat/derinet/lexeme"
)

func TestDecode(t *testing.T) {
	l, err := Decode("1\tdoer\tagent\tN\t0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if l.Id != 1 {
		t.Errorf("expected id 1, got %d", l.Id)
	}
	if l.Lemma != "doer" {
		t.Errorf("expected lemma 'doer', got %q", l.Lemma)
	}
	if l.Morph != "agent" {
		t.Errorf("expected morph 'agent', got %q", l.Morph)
	}
	if l.Pos != "N" {
		t.Errorf("expected pos 'N', got %q", l.Pos)
	}
	if l.Parent != 0 {
		t.Errorf("expected parent 0, got %d", l.Parent)
	}
	if l.Children != nil {
		t.Errorf("expected nil children, got %v", l.Children)
	}
}

func TestDecodeRoot(t *testing.T) {
	l, err := Decode("0\tdo\tbase\tV\t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !l.IsRoot() {
		t.Errorf("expected root, got parent %d", l.Parent)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode("0\tdo\tbase\tV")
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}

	_, err = Decode("")
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for empty line, got %v", err)
	}
}

func TestDecodeInvalidId(t *testing.T) {
	_, err := Decode("x\tdo\tbase\tV\t")
	if !errors.Is(err, ErrInvalidInteger) {
		t.Fatalf("expected ErrInvalidInteger, got %v", err)
	}
}

func TestDecodeNegativeParent(t *testing.T) {
	_, err := Decode("0\tdo\tbase\tV\t-2")
	if !errors.Is(err, ErrInvalidInteger) {
		t.Fatalf("expected ErrInvalidInteger, got %v", err)
	}
}

func TestEncodeRoot(t *testing.T) {
	l := lex.Lexeme{Id: 0, Lemma: "do", Morph: "base", Pos: "V", Parent: lex.NoParent}

	line := Encode(l)
	if line != "0\tdo\tbase\tV\t" {
		t.Errorf("unexpected line %q", line)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := lex.Lexeme{Id: 7, Lemma: "doing", Morph: "gerund", Pos: "N", Parent: 3}

	got, err := Decode(Encode(l))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Id != l.Id || got.Lemma != l.Lemma || got.Morph != l.Morph || got.Pos != l.Pos || got.Parent != l.Parent {
		t.Errorf("round trip changed the lexeme: %+v", got)
	}
}
