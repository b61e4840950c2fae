package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"fixitron/internal/domain"
	"fixitron/internal/domain/models"
	"fixitron/internal/domain/repositories"
	"fixitron/internal/domain/services"
	serviceAuth "fixitron/internal/service/auth"
)

// serviceCatalog implements services.ServiceCatalog.
type serviceCatalog struct {
	repo   repositories.ServiceRepository
	authz  *serviceAuth.ServiceOwnerAuthorizer
	logger *slog.Logger
}

// NewServiceCatalog creates the service listing service
func NewServiceCatalog(repo repositories.ServiceRepository, authz *serviceAuth.ServiceOwnerAuthorizer, logger *slog.Logger) services.ServiceCatalog {
	return &serviceCatalog{
		repo:   repo,
		authz:  authz,
		logger: logger,
	}
}

// Create stores a new listing. The owner attribute comes from the body
// as-is; create is an open route and does not derive ownership from any
// identity.
func (s *serviceCatalog) Create(ctx context.Context, svc *models.Service) (string, error) {
	if err := validateService(svc); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	id, err := s.repo.Insert(ctx, svc)
	if err != nil {
		return "", err
	}

	s.logger.Info("service created", "id", id, "provider", svc.ProviderEmail)
	return id, nil
}

func (s *serviceCatalog) Search(ctx context.Context, query string) ([]models.Service, error) {
	return s.repo.Search(ctx, query)
}

// ListMine applies the query-scope guard before the store is touched.
func (s *serviceCatalog) ListMine(ctx context.Context, identity *models.Identity, email string) ([]models.Service, error) {
	if err := serviceAuth.RequireSameEmail(identity, email); err != nil {
		return nil, err
	}
	return s.repo.ListByProvider(ctx, email)
}

// Update relies on the store's atomic filtered update for the ownership
// check: the update matches only when id and owner both match. Zero
// matched documents is reported as not-found, distinct from success.
func (s *serviceCatalog) Update(ctx context.Context, identity *models.Identity, id string, upd *models.ServiceUpdate) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}

	matched, err := s.repo.UpdateOwned(ctx, id, identity.Email, upd)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("no matching service %s: %w", id, domain.ErrNotFound)
	}

	s.logger.Info("service updated", "id", id, "provider", identity.Email)
	return nil
}

// Delete runs the record-scope guard explicitly: fetch first, 404 if the
// listing is absent, 403 if it exists but belongs to someone else, and
// only then delete.
func (s *serviceCatalog) Delete(ctx context.Context, identity *models.Identity, id string) error {
	if err := s.authz.CanModifyService(ctx, identity, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("service deleted", "id", id, "provider", identity.Email)
	return nil
}

func validateService(svc *models.Service) error {
	return validation.ValidateStruct(svc,
		validation.Field(&svc.ServiceName, validation.Required, validation.Length(1, 200)),
		validation.Field(&svc.ProviderEmail, validation.Required),
		validation.Field(&svc.Price, validation.Min(0.0)),
	)
}
