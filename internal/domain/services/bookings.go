package services

import (
	"context"

	"fixitron/internal/domain/models"
)

// Bookings is the business interface for bookings.
type Bookings interface {
	// Create validates and stores a new booking.
	Create(ctx context.Context, b *models.Booking) (string, error)

	// ListForUser returns the bookings made by email, after checking that
	// email matches the verified identity.
	ListForUser(ctx context.Context, identity *models.Identity, email string) ([]models.Booking, error)

	// Update applies upd to the booking with the given id. Any caller may
	// update any booking; there is no ownership check on this path.
	Update(ctx context.Context, id string, upd *models.BookingUpdate) error
}
