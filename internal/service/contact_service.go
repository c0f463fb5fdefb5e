package service

import (
	"context"

	"github.com/estatehub/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Create validates input and stores a new contact message.
	// Missing name or email yields a *ValidationError.
	Create(ctx context.Context, input model.ContactInput) error
}
