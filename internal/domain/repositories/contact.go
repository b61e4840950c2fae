package repositories

import (
	"context"

	"fixitron/internal/domain/models"
)

// ContactRepository defines data access for contact messages.
type ContactRepository interface {
	// Insert stores a new contact message and returns its generated id.
	Insert(ctx context.Context, msg *models.ContactMessage) (string, error)
}
