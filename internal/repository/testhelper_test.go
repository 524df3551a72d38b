package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB holds the test database connection and container
type TestDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Container *mongodb.MongoDBContainer
}

// SetupTestDB starts a MongoDB container and connects a client to it.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed repository tests in short mode")
	}

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("Failed to start mongodb container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to connect to mongodb: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to ping mongodb: %v", err)
	}

	db := &TestDB{
		Client:    client,
		Database:  client.Database("settings_test"),
		Container: container,
	}

	t.Cleanup(func() {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
	})

	return db
}

// Truncate removes all documents from the users collection between tests.
func (db *TestDB) Truncate(t *testing.T) {
	t.Helper()
	if err := db.Database.Collection("users").Drop(context.Background()); err != nil {
		t.Fatalf("Failed to drop users collection: %v", err)
	}
}
