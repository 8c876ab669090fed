package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tiefling-cat/derinet/forest"
	lex "github.com/tiefling-cat/derinet/lexeme"
	"github.com/tiefling-cat/derinet/storage"
	"github.com/tiefling-cat/derinet/tsv"
)

// LexiconStore reads and writes a lexicon as a single TSV file, one
// record per line.
type LexiconStore struct {
	path string
}

var _ storage.LexiconRepository = (*LexiconStore)(nil)

// NewLexiconStore creates a filesystem lexicon store for the given
// file path.
func NewLexiconStore(path string) *LexiconStore {
	return &LexiconStore{path: path}
}

// Load reads every record of the file in line order and builds the
// forest. A decode failure aborts the whole load with the offending
// line number; no partial forest is returned. A missing trailing
// newline on the last line is accepted.
func (h *LexiconStore) Load() (*forest.Store, forest.Index, []forest.Warning, error) {
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil, fmt.Errorf("%w: %s", storage.ErrNotFound, h.path)
		}
		return nil, nil, nil, err
	}
	defer f.Close()

	var records []lex.Lexeme

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		rec, err := tsv.Decode(scanner.Text())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}

	return forest.Build(records)
}

// Write saves a TSV snapshot of the store, one lexeme per line in id
// order.
func (h *LexiconStore) Write(s *forest.Store) error {
	f, err := os.Create(h.path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, l := range s.All() {
		if _, err := fmt.Fprintln(w, tsv.Encode(l)); err != nil {
			f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
