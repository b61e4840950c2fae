package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"fixitron/internal/domain"
	"fixitron/internal/domain/models"
	"fixitron/internal/domain/repositories"
	"fixitron/internal/domain/services"
)

// contacts implements services.Contacts.
type contacts struct {
	repo   repositories.ContactRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewContacts creates the contact message service
func NewContacts(repo repositories.ContactRepository, logger *slog.Logger) services.Contacts {
	return &contacts{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *contacts) Create(ctx context.Context, msg *models.ContactMessage) (string, error) {
	if err := validateContact(msg); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	// CreatedAt is server-assigned; whatever the client sent is replaced.
	msg.CreatedAt = s.now().UTC()

	id, err := s.repo.Insert(ctx, msg)
	if err != nil {
		return "", err
	}

	s.logger.Info("contact message received", "id", id)
	return id, nil
}

func validateContact(msg *models.ContactMessage) error {
	return validation.ValidateStruct(msg,
		validation.Field(&msg.Name, validation.Required),
		validation.Field(&msg.Email, validation.Required),
		validation.Field(&msg.Message, validation.Required, validation.Length(1, 5000)),
	)
}
