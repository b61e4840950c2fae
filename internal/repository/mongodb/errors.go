package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"fixitron/internal/domain"
)

// IsNoDocuments checks if error is the driver's "no documents" result
func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// parseObjectID converts an externally supplied hex id into an ObjectID,
// mapping bad input to a domain validation error.
func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("invalid id %q: %w", id, domain.ErrValidation)
	}
	return oid, nil
}
