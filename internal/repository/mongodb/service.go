package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"fixitron/internal/domain"
	"fixitron/internal/domain/models"
	"fixitron/internal/domain/repositories"
)

// serviceRepository implements repositories.ServiceRepository on the
// services collection.
type serviceRepository struct {
	col    *mongo.Collection
	logger *slog.Logger
}

// NewServiceRepository creates a mongo-backed service listing repository
func NewServiceRepository(cfg *RepositoryConfig) repositories.ServiceRepository {
	return &serviceRepository{
		col:    cfg.DB.Collection(servicesCollection),
		logger: cfg.Logger,
	}
}

func (r *serviceRepository) Insert(ctx context.Context, svc *models.Service) (string, error) {
	res, err := r.col.InsertOne(ctx, svc)
	if err != nil {
		return "", fmt.Errorf("insert service: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *serviceRepository) Search(ctx context.Context, query string) ([]models.Service, error) {
	filter := bson.D{}
	if query != "" {
		// Case-insensitive substring match on the listing name. The query
		// text is quoted so it is never interpreted as a pattern.
		filter = bson.D{{Key: "service_name", Value: bson.Regex{
			Pattern: regexp.QuoteMeta(query),
			Options: "i",
		}}}
	}

	return r.findServices(ctx, filter)
}

func (r *serviceRepository) ListByProvider(ctx context.Context, email string) ([]models.Service, error) {
	return r.findServices(ctx, bson.D{{Key: "providerEmail", Value: email}})
}

func (r *serviceRepository) findServices(ctx context.Context, filter bson.D) ([]models.Service, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var svc models.Service
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&svc)
	if err != nil {
		if IsNoDocuments(err) {
			return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get service %s: %w", id, err)
	}
	return &svc, nil
}

func (r *serviceRepository) UpdateOwned(ctx context.Context, id, ownerEmail string, upd *models.ServiceUpdate) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	// Ownership is enforced by the filter itself: the update matches only
	// when both the id and the owner email match, atomically.
	filter := bson.D{
		{Key: "_id", Value: oid},
		{Key: "providerEmail", Value: ownerEmail},
	}

	res, err := r.col.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: upd}})
	if err != nil {
		return 0, fmt.Errorf("update service %s: %w", id, err)
	}
	return res.MatchedCount, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
