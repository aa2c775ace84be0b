package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashbox-server/internal/config"
)

// Storage owns the Postgres pool. Reads share the pool; writes each get a Writer.
type Storage struct {
	db     *sql.DB
	bobDB  bob.DB
	reader *Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	return Open(env.PostgresURL(), env.PostgresMaxConns)
}

// Open connects to databaseURL with a pool of at most maxConns connections.
func Open(databaseURL string, maxConns int) (*Storage, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	db.SetMaxOpenConns(maxConns)

	bobDB := bob.NewDB(db)
	return &Storage{
		db:     db,
		bobDB:  bobDB,
		reader: NewReader(bobDB),
	}, nil
}

// Ping checks the pool can reach the database.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Reader returns the pooled, non-transactional reader.
func (s *Storage) Reader() *Reader {
	return s.reader
}

// Write begins a store session. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage.Write: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
