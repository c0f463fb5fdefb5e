package service

import (
	"context"
	"encoding/json"

	"github.com/estatehub/backend/internal/model"
)

// ListingService defines the business logic for property listings.
type ListingService interface {
	// ListAll returns every stored listing in creation order, as the raw
	// JSON elements persisted (never nil).
	ListAll(ctx context.Context) []json.RawMessage

	// Create validates input, stores a new listing and returns it.
	// Missing title, location or price yields a *ValidationError.
	Create(ctx context.Context, input model.ListingInput) (*model.Listing, error)
}
