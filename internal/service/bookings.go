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

// bookings implements services.Bookings.
type bookings struct {
	repo   repositories.BookingRepository
	logger *slog.Logger
}

// NewBookings creates the booking service
func NewBookings(repo repositories.BookingRepository, logger *slog.Logger) services.Bookings {
	return &bookings{
		repo:   repo,
		logger: logger,
	}
}

func (s *bookings) Create(ctx context.Context, b *models.Booking) (string, error) {
	if err := validateBooking(b); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	id, err := s.repo.Insert(ctx, b)
	if err != nil {
		return "", err
	}

	s.logger.Info("booking created", "id", id, "user", b.UserEmail)
	return id, nil
}

// ListForUser applies the query-scope guard, then returns only the
// caller's bookings.
func (s *bookings) ListForUser(ctx context.Context, identity *models.Identity, email string) ([]models.Booking, error) {
	if err := serviceAuth.RequireSameEmail(identity, email); err != nil {
		return nil, err
	}
	return s.repo.ListByEmail(ctx, email)
}

// Update has no ownership check: any caller may update any booking's
// status. Bookings carry no owner attribute to compare against.
func (s *bookings) Update(ctx context.Context, id string, upd *models.BookingUpdate) error {
	matched, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("no matching booking %s: %w", id, domain.ErrNotFound)
	}

	s.logger.Info("booking updated", "id", id)
	return nil
}

func validateBooking(b *models.Booking) error {
	return validation.ValidateStruct(b,
		validation.Field(&b.UserEmail, validation.Required),
		validation.Field(&b.Price, validation.Min(0.0)),
	)
}
