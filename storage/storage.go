package storage

import (
	"errors"

	"github.com/tiefling-cat/derinet/forest"
)

// ErrNotFound reports a lexicon source that does not exist. The CLI
// layer decides how to present it.
var ErrNotFound = errors.New("lexicon not found")

// LexiconReader defines read operations for lexicon storage.
type LexiconReader interface {
	// Load reads the whole lexicon and builds the forest and its lemma
	// index. Warnings report non fatal numeration findings; on error no
	// store is returned.
	Load() (*forest.Store, forest.Index, []forest.Warning, error)
}

// LexiconWriter defines write operations for lexicon storage.
type LexiconWriter interface {
	// Write persists a snapshot of the store, replacing any previous
	// content.
	Write(*forest.Store) error
}

// LexiconRepository combines read and write operations.
type LexiconRepository interface {
	LexiconReader
	LexiconWriter
}

// BulkWriter is an optional capability for repositories that can report
// progress during a bulk write.
type BulkWriter interface {
	WriteAll(s *forest.Store, cb func(current, total int, lemma string)) error
}
