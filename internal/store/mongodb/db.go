package mongodb

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"megacart/internal/domain"
)

const connectTimeout = 15 * time.Second

// Open connects to MongoDB with the given URI and verifies the connection
// with a ping. Callers treat an error here as the signal to start in
// fallback mode.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(connectTimeout).
		SetMaxPoolSize(10).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w: %w", domain.ErrDatabaseConnection, err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the application relies on. Idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	_, err = db.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create products id index: %w", err)
	}
	return nil
}

// SeedProducts inserts the given catalog into an empty products
// collection. A non-empty collection is left untouched.
func SeedProducts(ctx context.Context, db *mongo.Database, products []*domain.Product) error {
	col := db.Collection("products")

	count, err := col.EstimatedDocumentCount(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]any, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	log.Printf("seeded products collection with %d entries", len(products))
	return nil
}
