// Package mongo is the document store alternative to the postgres adapter. Orders,
// drivers and customers live in one collection each, keyed by the entity id in _id.
// Guarded writes use UpdateOne with the expected state in the filter, and the unit
// of work runs them inside a session transaction, so the server must be a replica set.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ordersCollection    = "orders"
	driversCollection   = "drivers"
	customersCollection = "customers"
)

const connectTimeout = 10 * time.Second

// Connect opens a client for uri and pings the primary. Extra options are applied
// after the uri.
func Connect(ctx context.Context, uri string, extra ...*options.ClientOptions) (*mongodriver.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := append([]*options.ClientOptions{options.Client().ApplyURI(uri)}, extra...)
	client, err := mongodriver.Connect(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique email indexes and the indexes behind listings
// and dispatch. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongodriver.Database) error {
	uniqueEmail := mongodriver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(driversCollection).Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		uniqueEmail,
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "documents_verified", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("create driver indexes: %w", err)
	}
	if _, err := db.Collection(customersCollection).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return fmt.Errorf("create customer indexes: %w", err)
	}
	if _, err := db.Collection(ordersCollection).Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "driver_id", Value: 1}, {Key: "status", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("create order indexes: %w", err)
	}
	return nil
}
