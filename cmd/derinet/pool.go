package main

import (
	"github.com/tiefling-cat/derinet/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool lazily opens at most one lexicon database per command run, so a
// command that reads and writes the same database shares the
// connections.
type Pool struct {
	p *sqlitex.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}

	p.p = pool
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p == nil {
		return nil
	}

	return p.p.Close()
}
