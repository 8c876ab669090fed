package lexeme

// NoParent marks a lexeme without a parent (a forest root).
const NoParent = -1

// Lexeme is a single word form of the derivational lexicon.
type Lexeme struct {
	// Id is the position of the lexeme in the store. Dense, zero based,
	// the only way to address a lexeme.
	Id int `json:"id"`

	// Lemma is the canonical word form.
	Lemma string `json:"lemma"`

	// Morph describes how the lexeme is derived. Together with Lemma it
	// forms the natural key of the lexicon.
	Morph string `json:"morph"`

	// Pos is the part of speech tag. Informational only.
	Pos string `json:"pos"`

	// Parent is the id of the lexeme this one derives from, NoParent
	// for roots.
	Parent int `json:"parent"`

	// Children holds the ids of the lexemes derived from this one.
	// Derived data: recomputed from the Parent relation, never
	// serialized.
	Children []int `json:"-"`
}

// IsRoot reports whether the lexeme has no parent.
func (l Lexeme) IsRoot() bool {
	return l.Parent == NoParent
}
