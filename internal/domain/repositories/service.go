package repositories

import (
	"context"

	"fixitron/internal/domain/models"
)

// ServiceRepository defines data access for service listings.
type ServiceRepository interface {
	// Insert stores a new listing and returns its generated id (hex form).
	Insert(ctx context.Context, svc *models.Service) (string, error)

	// Search returns listings whose name contains query (case-insensitive).
	// An empty query returns all listings.
	Search(ctx context.Context, query string) ([]models.Service, error)

	// ListByProvider returns the listings owned by the given provider email.
	ListByProvider(ctx context.Context, email string) ([]models.Service, error)

	// GetByID returns one listing by id. Returns an error matching
	// domain.ErrNotFound if no listing has that id.
	GetByID(ctx context.Context, id string) (*models.Service, error)

	// UpdateOwned applies upd to the listing matching BOTH id and owner
	// email in a single atomic filtered update. It returns the number of
	// matched documents; zero means the id does not exist or the owner
	// does not match (callers cannot distinguish the two).
	UpdateOwned(ctx context.Context, id, ownerEmail string, upd *models.ServiceUpdate) (int64, error)

	// Delete removes one listing by id. Returns an error matching
	// domain.ErrNotFound if nothing was deleted.
	Delete(ctx context.Context, id string) error
}
