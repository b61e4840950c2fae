package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	DB     *mongo.Database
	Logger *slog.Logger
}

// Collection names. "booking" is singular for historical reasons; the data
// predates this server.
const (
	servicesCollection = "services"
	bookingsCollection = "booking"
	contactsCollection = "contacts"
)

// Connect creates the process-scoped mongo client. The client is created
// once at startup, shared by every repository, and disconnected at
// shutdown.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	// Test connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, client.Database(database), nil
}
