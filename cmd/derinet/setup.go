package main

import (
	"fmt"
	"path/filepath"

	"github.com/tiefling-cat/derinet/forest"
	"github.com/tiefling-cat/derinet/storage"
	"github.com/tiefling-cat/derinet/storage/filesystem"
	"github.com/tiefling-cat/derinet/storage/sqlite/zombiezen"
)

// NewLexiconRepository selects the storage backend by the path
// extension: a SQLite database for .db/.sqlite/.sqlite3, the TSV
// filesystem store for anything else.
func NewLexiconRepository(p *Pool, path string) (storage.LexiconRepository, error) {
	if !isSQLite(path) {
		return filesystem.NewLexiconStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateLexemeTables(pool); err != nil {
		return nil, fmt.Errorf("failed to create lexemes table: %w", err)
	}

	return zombiezen.NewLexiconStore(pool), nil
}

func isSQLite(path string) bool {
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}

	return false
}

// loadLexicon loads a repository and prints any numeration warnings to
// the error stream.
func loadLexicon(repo storage.LexiconReader, ui UI) (*forest.Store, forest.Index, error) {
	store, index, warnings, err := repo.Load()
	if err != nil {
		return nil, nil, err
	}

	for _, w := range warnings {
		fmt.Fprintf(ui.Err, "⚠  %s\n", w)
	}

	return store, index, nil
}
