package service

import (
	"context"
	"time"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
	ids  *IDGenerator
	now  func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository, ids *IDGenerator) ContactService {
	return &contactServiceImpl{repo: repo, ids: ids, now: time.Now}
}

// Create defaults phone and message to "" and type to "General" before
// appending the message.
func (s *contactServiceImpl) Create(ctx context.Context, input model.ContactInput) error {
	if input.Name == "" || input.Email == "" {
		return newValidationError(msgContactFieldsRequired)
	}

	now := s.now()
	s.repo.Append(ctx, &model.Contact{
		ID:        s.ids.Next(now),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     model.OrDefault(input.Phone, ""),
		Type:      model.OrDefault(input.Type, model.DefaultContactType),
		Message:   model.OrDefault(input.Message, ""),
		CreatedAt: model.FormatTimestamp(now),
	})
	return nil
}
