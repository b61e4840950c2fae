package auth

import (
	"context"
	"errors"
	"fmt"

	"fixitron/internal/domain"
	"fixitron/internal/domain/models"
	"fixitron/internal/domain/repositories"
)

// RequireSameEmail is the query-scope guard: a caller may only query
// resources under the email they authenticated as. Pure comparison, no
// I/O; a mismatch must short-circuit before any store access.
func RequireSameEmail(identity *models.Identity, email string) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}
	if identity.Email != email {
		return fmt.Errorf("email %q does not match the authenticated user: %w", email, domain.ErrForbidden)
	}
	return nil
}

// ServiceOwnerAuthorizer is the record-scope guard for listings: a user
// can mutate or delete a listing only if their verified email equals the
// listing's providerEmail.
//
// This is the simplest authorization model. For future extensibility:
// - RoleBasedAuthorizer: check the user's role on the listing
// - SharingAuthorizer: check if the listing is delegated to the user
type ServiceOwnerAuthorizer struct {
	services repositories.ServiceRepository
}

// NewServiceOwnerAuthorizer creates a new ownership-based authorizer
func NewServiceOwnerAuthorizer(services repositories.ServiceRepository) *ServiceOwnerAuthorizer {
	return &ServiceOwnerAuthorizer{services: services}
}

// CanModifyService checks if the identity owns the listing. The existence
// check comes first: a nonexistent listing yields not-found before any
// ownership decision is made.
func (a *ServiceOwnerAuthorizer) CanModifyService(ctx context.Context, identity *models.Identity, serviceID string) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}

	svc, err := a.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
			return err
		}
		return fmt.Errorf("get service for auth: %w", err)
	}

	if svc.ProviderEmail != identity.Email {
		return fmt.Errorf("service %s is not owned by the authenticated user: %w", serviceID, domain.ErrForbidden)
	}
	return nil
}
