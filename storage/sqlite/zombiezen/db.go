package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens a SQLite connection pool on the lexicon database. The
// pool is sized to the CPU count; the sqlitex defaults already enable
// WAL mode and create the file if it does not exist.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	poolSize := runtime.NumCPU()
	initString := fmt.Sprintf("file:%s", dbPath)

	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon database %s: %w", dbPath, err)
	}

	return pool, nil
}
