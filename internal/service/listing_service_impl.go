package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/repository"
)

// listingServiceImpl is the production implementation of ListingService.
type listingServiceImpl struct {
	repo repository.ListingRepository
	ids  *IDGenerator
	now  func() time.Time
}

// NewListingService creates a ListingService backed by the given repository.
func NewListingService(repo repository.ListingRepository, ids *IDGenerator) ListingService {
	return &listingServiceImpl{repo: repo, ids: ids, now: time.Now}
}

func (s *listingServiceImpl) ListAll(ctx context.Context) []json.RawMessage {
	listings := s.repo.List(ctx)
	if listings == nil {
		return []json.RawMessage{}
	}
	return listings
}

// Create fills in defaults (beds/baths/size "", status "For Sale") and
// appends the listing. Persistence failures are logged by the repository
// and do not fail the call.
func (s *listingServiceImpl) Create(ctx context.Context, input model.ListingInput) (*model.Listing, error) {
	if input.Title == "" || input.Location == "" || !model.Truthy(input.Price) {
		return nil, newValidationError(msgListingFieldsRequired)
	}

	now := s.now()
	listing := &model.Listing{
		ID:        s.ids.Next(now),
		Title:     input.Title,
		Location:  input.Location,
		Price:     input.Price,
		Beds:      model.OrDefault(input.Beds, ""),
		Baths:     model.OrDefault(input.Baths, ""),
		Size:      model.OrDefault(input.Size, ""),
		Status:    model.StringOrDefault(input.Status, model.DefaultListingStatus),
		CreatedAt: model.FormatTimestamp(now),
	}

	s.repo.Append(ctx, listing)
	return listing, nil
}
