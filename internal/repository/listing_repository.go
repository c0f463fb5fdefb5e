package repository

import (
	"context"
	"encoding/json"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/storage"
)

// ListingsKey is the storage key of the listings collection.
const ListingsKey = "listings.json"

// ListingRepository defines the persistence interface for listings.
type ListingRepository interface {
	// List returns the stored listings as raw JSON elements, exactly as
	// persisted and in insertion order.
	List(ctx context.Context) []json.RawMessage
	Append(ctx context.Context, listing *model.Listing)
}

// JSONListingRepository stores listings as a JSON array in a Storage.
type JSONListingRepository struct {
	coll *collection
}

// NewListingRepository creates a JSONListingRepository backed by store.
func NewListingRepository(store storage.Storage) *JSONListingRepository {
	return &JSONListingRepository{coll: newCollection(store, ListingsKey)}
}

var _ ListingRepository = (*JSONListingRepository)(nil)

// List never returns nil.
func (r *JSONListingRepository) List(ctx context.Context) []json.RawMessage {
	return r.coll.Load(ctx, []json.RawMessage{})
}

func (r *JSONListingRepository) Append(ctx context.Context, listing *model.Listing) {
	r.coll.Append(ctx, listing)
}
