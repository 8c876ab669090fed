package forest

import (
	"errors"
	"fmt"

	lex "github.com/tiefling-cat/derinet/lexeme"
)

// ErrNotImplemented marks operations whose semantics are not defined
// yet.
var ErrNotImplemented = errors.New("not implemented")

// Warning is a non fatal inconsistency found while building a store.
type Warning struct {
	Msg string
}

func (w Warning) String() string {
	return w.Msg
}

// Build constructs a store and its lemma index from decoded records.
//
// The input order is authoritative: ids are assigned by position, the
// stated id of each record is only checked against it and a mismatch is
// reported as a warning, never trusted. Children are linked once, after
// every record is in place, so a forward parent reference is no special
// case. On error no partial store escapes.
func Build(records []lex.Lexeme) (*Store, Index, []Warning, error) {
	store := NewStore()
	index := Index{}

	var warnings []Warning
	for _, rec := range records {
		stated := rec.Id
		id := store.Append(rec)

		// warn once on the first divergence, like the original loader;
		// a single inconsistent numeration produces one finding, not
		// one per record
		if stated != id && len(warnings) == 0 {
			warnings = append(warnings, Warning{
				Msg: fmt.Sprintf("lexeme numeration inconsistent: record at position %d states id %d", id, stated),
			})
		}

		if err := index.Insert(rec.Lemma, rec.Morph, id); err != nil {
			return nil, nil, nil, err
		}
	}

	if err := store.LinkChildren(); err != nil {
		return nil, nil, nil, err
	}

	if w := store.ValidateContiguity(); w != nil {
		warnings = append(warnings, *w)
	}

	return store, index, warnings, nil
}

// Merge is reserved for incremental updates of an existing store from a
// second record source. Its semantics are not defined; it always fails.
func Merge(store *Store, records []lex.Lexeme) error {
	return fmt.Errorf("%w: merge", ErrNotImplemented)
}
