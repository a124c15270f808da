package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"megacart/internal/catalog"
	"megacart/internal/config"
	"megacart/internal/domain"
	"megacart/internal/store/memory"
	"megacart/internal/store/mongodb"
)

// Store bundles the active repositories and reports which backend serves
// them: "mongo" when the document store is reachable, "memory" in
// fallback mode.
type Store struct {
	Products domain.ProductRepository
	Users    domain.UserRepository

	name   string
	client *mongo.Client
}

// Open connects to the configured document store. If the connection
// cannot be established the service degrades to the in-memory fallback:
// catalog reads come from the built-in seed list and user accounts live
// in a process-local map.
func Open(ctx context.Context, cfg *config.Config) *Store {
	client, err := mongodb.Open(ctx, cfg.MongoURL)
	if err != nil {
		log.Printf("document store unreachable, starting in fallback mode: %v", err)
		return NewMemory()
	}

	db := client.Database(cfg.DatabaseName)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Printf("warning: %v", err)
	}
	if err := mongodb.SeedProducts(ctx, db, catalog.Seed()); err != nil {
		log.Printf("warning: %v", err)
	}

	return &Store{
		Products: mongodb.NewProductRepo(db),
		Users:    mongodb.NewUserRepo(db),
		name:     "mongo",
		client:   client,
	}
}

// NewMemory builds a fallback-mode store over the seed catalog.
func NewMemory() *Store {
	return &Store{
		Products: memory.NewProductRepo(catalog.Seed()),
		Users:    memory.NewUserRepo(),
		name:     "memory",
	}
}

// Name reports the active backend.
func (s *Store) Name() string {
	return s.name
}

// Ping checks backend health. The in-memory store is always healthy.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Close releases backend resources.
func (s *Store) Close(ctx context.Context) {
	if s.client == nil {
		return
	}
	if err := s.client.Disconnect(ctx); err != nil {
		log.Printf("disconnect mongo: %v", err)
	}
}
