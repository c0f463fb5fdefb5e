package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a PostgreSQL connection pool and verifies it with a ping.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// pgPool is the subset of *pgxpool.Pool used by PgStorage.
type pgPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// PgStorage keeps each document as one row of the collections table. The
// column is json rather than jsonb so the stored text, including key order
// and number literals, comes back unchanged.
type PgStorage struct {
	pool pgPool
}

// NewPgStorage creates a PgStorage backed by the given pool.
func NewPgStorage(pool pgPool) *PgStorage {
	return &PgStorage{pool: pool}
}

var _ Storage = (*PgStorage)(nil)

const createCollectionsTable = `CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	data       JSON NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the collections table if it does not exist.
func (s *PgStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createCollectionsTable); err != nil {
		return fmt.Errorf("storage: create collections table: %w", err)
	}
	return nil
}

func (s *PgStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := s.pool.QueryRow(ctx,
		`SELECT data::text FROM collections WHERE name = $1`, key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: select %s: %w", key, err)
	}
	return []byte(data), nil
}

func (s *PgStorage) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO collections (name, data, updated_at)
		 VALUES ($1, $2::json, NOW())
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: upsert %s: %w", key, err)
	}
	return nil
}

func (s *PgStorage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
