package zombiezen

import (
	"context"
	"fmt"

	"github.com/tiefling-cat/derinet/forest"
	lex "github.com/tiefling-cat/derinet/lexeme"
	"github.com/tiefling-cat/derinet/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// LexiconStore persists a lexicon in a SQLite database, one row per
// lexeme.
type LexiconStore struct {
	pool *sqlitex.Pool
}

var _ storage.LexiconRepository = (*LexiconStore)(nil)
var _ storage.BulkWriter = (*LexiconStore)(nil)

func NewLexiconStore(pool *sqlitex.Pool) *LexiconStore {
	return &LexiconStore{pool: pool}
}

// Load reads every lexeme row in id order and builds the forest through
// the same builder as the filesystem store, so numeration warnings and
// integrity errors behave identically for both backends.
func (h *LexiconStore) Load() (*forest.Store, forest.Index, []forest.Warning, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, nil, nil, err
	}
	defer h.pool.Put(conn)

	var records []lex.Lexeme
	err = sqlitex.Execute(conn, "SELECT id, lemma, morph, pos, parent FROM lexemes ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rec := lex.Lexeme{
				Id:     stmt.ColumnInt(0),
				Lemma:  stmt.ColumnText(1),
				Morph:  stmt.ColumnText(2),
				Pos:    stmt.ColumnText(3),
				Parent: lex.NoParent,
			}
			if stmt.ColumnType(4) != sqlite.TypeNull {
				rec.Parent = stmt.ColumnInt(4)
			}

			records = append(records, rec)
			return nil
		},
	})
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no lexemes in database", storage.ErrNotFound)
	}

	return forest.Build(records)
}

// Write persists a snapshot of the store in one transaction.
func (h *LexiconStore) Write(s *forest.Store) error {
	return h.WriteAll(s, nil)
}

// WriteAll persists a snapshot of the store in one transaction,
// replacing any previous content. cb, if not nil, is called once per
// written lexeme.
func (h *LexiconStore) WriteAll(s *forest.Store, cb func(current, total int, lemma string)) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM lexemes", nil)
	if err != nil {
		return fmt.Errorf("failed to clear lexemes: %w", err)
	}

	total := s.Len()
	for i, l := range s.All() {
		var parent interface{}
		if l.Parent != lex.NoParent {
			parent = l.Parent
		}

		err = sqlitex.Execute(conn, "INSERT INTO lexemes (id, lemma, morph, pos, parent) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{l.Id, l.Lemma, l.Morph, l.Pos, parent},
		})
		if err != nil {
			return fmt.Errorf("failed to insert lexeme %d: %w", l.Id, err)
		}

		if cb != nil {
			cb(i+1, total, l.Lemma)
		}
	}

	return nil
}

// FindByLemma returns the ids of the lexemes carrying the lemma,
// ordered by id. Uses the lemma index of the table, no forest is built.
func (h *LexiconStore) FindByLemma(lemma string) ([]int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var ids []int
	err = sqlitex.Execute(conn, "SELECT id FROM lexemes WHERE lemma = ? ORDER BY id", &sqlitex.ExecOptions{
		Args: []interface{}{lemma},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			ids = append(ids, stmt.ColumnInt(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}
