package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Connect dials MongoDB and verifies the connection with a ping. The caller
// owns the returned client and is responsible for Disconnect on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db: ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the service relies on. The unique index
// on users.email is what turns a duplicate registration into a clean
// conflict instead of a second identity.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("db: ensure indexes: %w", err)
	}

	_, err = database.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "postedBy", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("db: ensure indexes: %w", err)
	}
	return nil
}
