package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig holds the configuration for the document store connection.
type MongoConfig struct {
	URI      string
	Database string
}

// NewMongo connects to MongoDB, verifies the connection and returns the
// client together with the configured database handle. Both are constructed
// once per process; callers own the client's lifecycle and must Disconnect
// on shutdown.
func NewMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// HealthCheck checks if the document store connection is healthy.
func HealthCheck(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return fmt.Errorf("database client not configured")
	}
	return client.Ping(ctx, readpref.Primary())
}
