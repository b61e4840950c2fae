package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"fixitron/internal/domain/models"
	"fixitron/internal/domain/repositories"
)

// bookingRepository implements repositories.BookingRepository on the
// booking collection.
type bookingRepository struct {
	col    *mongo.Collection
	logger *slog.Logger
}

// NewBookingRepository creates a mongo-backed booking repository
func NewBookingRepository(cfg *RepositoryConfig) repositories.BookingRepository {
	return &bookingRepository{
		col:    cfg.DB.Collection(bookingsCollection),
		logger: cfg.Logger,
	}
}

func (r *bookingRepository) Insert(ctx context.Context, b *models.Booking) (string, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return "", fmt.Errorf("insert booking: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *bookingRepository) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := r.col.Find(ctx, bson.D{{Key: "user_email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, id string, upd *models.BookingUpdate) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: upd}},
	)
	if err != nil {
		return 0, fmt.Errorf("update booking %s: %w", id, err)
	}
	return res.MatchedCount, nil
}
