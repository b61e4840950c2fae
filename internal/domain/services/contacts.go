package services

import (
	"context"

	"fixitron/internal/domain/models"
)

// Contacts is the business interface for contact messages.
type Contacts interface {
	// Create validates the message, stamps CreatedAt server-side and
	// stores it, returning the generated id.
	Create(ctx context.Context, msg *models.ContactMessage) (string, error)
}
