package repository

import (
	"context"

	"github.com/estatehub/backend/internal/model"
	"github.com/estatehub/backend/internal/storage"
)

// ContactsKey is the storage key of the contacts collection.
const ContactsKey = "contacts.json"

// ContactRepository defines the persistence interface for contact messages.
// Contacts are write-only through the API.
type ContactRepository interface {
	Append(ctx context.Context, contact *model.Contact)
}

// JSONContactRepository stores contact messages as a JSON array in a Storage.
type JSONContactRepository struct {
	coll *collection
}

// NewContactRepository creates a JSONContactRepository backed by store.
func NewContactRepository(store storage.Storage) *JSONContactRepository {
	return &JSONContactRepository{coll: newCollection(store, ContactsKey)}
}

var _ ContactRepository = (*JSONContactRepository)(nil)

func (r *JSONContactRepository) Append(ctx context.Context, contact *model.Contact) {
	r.coll.Append(ctx, contact)
}
