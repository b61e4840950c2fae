package services

import (
	"context"

	"fixitron/internal/domain/models"
)

// ServiceCatalog is the business interface for service listings.
// Operations taking an *models.Identity enforce ownership; the others are
// open to anonymous callers.
type ServiceCatalog interface {
	// Create validates and stores a new listing. The owner attribute is
	// taken from the submitted body as-is.
	Create(ctx context.Context, svc *models.Service) (string, error)

	// Search returns listings, optionally filtered by a case-insensitive
	// substring match on the listing name.
	Search(ctx context.Context, query string) ([]models.Service, error)

	// ListMine returns the listings owned by email, after checking that
	// email matches the verified identity.
	ListMine(ctx context.Context, identity *models.Identity, email string) ([]models.Service, error)

	// Update applies upd to the listing with the given id, but only when
	// the verified identity owns it.
	Update(ctx context.Context, identity *models.Identity, id string, upd *models.ServiceUpdate) error

	// Delete removes the listing with the given id, but only when the
	// verified identity owns it.
	Delete(ctx context.Context, identity *models.Identity, id string) error
}
