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

// contactRepository implements repositories.ContactRepository on the
// contacts collection.
type contactRepository struct {
	col    *mongo.Collection
	logger *slog.Logger
}

// NewContactRepository creates a mongo-backed contact message repository
func NewContactRepository(cfg *RepositoryConfig) repositories.ContactRepository {
	return &contactRepository{
		col:    cfg.DB.Collection(contactsCollection),
		logger: cfg.Logger,
	}
}

func (r *contactRepository) Insert(ctx context.Context, msg *models.ContactMessage) (string, error) {
	res, err := r.col.InsertOne(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("insert contact message: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
