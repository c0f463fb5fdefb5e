package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing has been stored under the key yet.
var ErrNotFound = errors.New("storage: not found")

// Storage persists whole documents addressed by key (e.g. "listings.json").
// The local filesystem implementation is the default; PgStorage keeps the
// same documents in PostgreSQL.
type Storage interface {
	// Load returns the raw document stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the document stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
