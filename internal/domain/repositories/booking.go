package repositories

import (
	"context"

	"fixitron/internal/domain/models"
)

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Insert stores a new booking and returns its generated id (hex form).
	Insert(ctx context.Context, b *models.Booking) (string, error)

	// ListByEmail returns the bookings made by the given user email.
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)

	// Update applies upd to the booking with the given id and returns the
	// number of matched documents (zero when the id does not exist).
	Update(ctx context.Context, id string, upd *models.BookingUpdate) (int64, error)
}
