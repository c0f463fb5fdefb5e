package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/storage"
)

// errEmpty marks a stored document that is blank or parses to a falsy
// JSON value (null, false, 0, ""). Such documents read as the fallback.
var errEmpty = errors.New("repository: empty document")

// collection is an ordered list of records stored as one JSON array under
// a single storage key. Elements are kept as raw JSON, so records written
// by other tools or older versions pass through reads and appends as-is.
// Every mutation re-reads the whole array, changes it in memory and writes
// it back.
type collection struct {
	store storage.Storage
	key   string

	// mu serialises read-modify-write cycles within this process.
	mu sync.Mutex
}

func newCollection(store storage.Storage, key string) *collection {
	return &collection{store: store, key: key}
}

// read loads and parses the stored array. It returns storage.ErrNotFound
// or errEmpty for the expected "nothing there yet" cases and a wrapped
// error for anything unreadable.
func (c *collection) read(ctx context.Context) ([]json.RawMessage, error) {
	data, err := c.store.Load(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmpty
	}

	raw, err := decodeJSON[any](data)
	if err != nil {
		return nil, fmt.Errorf("repository: parse %s: %w", c.key, err)
	}
	if !model.Truthy(raw) {
		return nil, errEmpty
	}

	items, err := decodeJSON[[]json.RawMessage](data)
	if err != nil {
		return nil, fmt.Errorf("repository: %s is not an array: %w", c.key, err)
	}
	return items, nil
}

// Load returns the stored elements, or fallback when there are none or
// they cannot be read. Failures are logged, never returned.
func (c *collection) Load(ctx context.Context, fallback []json.RawMessage) []json.RawMessage {
	items, err := c.read(ctx)
	switch {
	case err == nil:
		return items
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, errEmpty):
		slog.Debug("collection empty, using fallback", "key", c.key, "reason", err.Error())
		return fallback
	default:
		slog.Warn("error reading collection", "key", c.key, "error", err)
		return fallback
	}
}

// Save overwrites the stored array with items, pretty-printed with two-space
// indentation. Failures are logged, never returned, and not retried.
func (c *collection) Save(ctx context.Context, items []json.RawMessage) {
	if items == nil {
		items = []json.RawMessage{}
	}
	data, err := encodeJSON(items, "  ")
	if err != nil {
		slog.Error("error encoding collection", "key", c.key, "error", err)
		return
	}
	if err := c.store.Save(ctx, c.key, data); err != nil {
		slog.Error("error writing collection", "key", c.key, "error", err)
	}
}

// Append adds record to the end of the stored array. Existing elements are
// written back byte-for-byte apart from indentation.
func (c *collection) Append(ctx context.Context, record any) {
	elem, err := encodeJSON(record, "")
	if err != nil {
		slog.Error("error encoding record", "key", c.key, "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.Load(ctx, []json.RawMessage{})
	items = append(items, elem)
	c.Save(ctx, items)
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number.
func decodeJSON[V any](data []byte) (V, error) {
	var v V
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return v, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// encodeJSON encodes v without HTML escaping, indented by indent when it is
// non-empty.
func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
