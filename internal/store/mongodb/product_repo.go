package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"megacart/internal/domain"
)

type ProductRepo struct {
	col *mongo.Collection
}

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection("products")}
}

var _ domain.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	err := withRetry(ctx, func() error {
		cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
		if err != nil {
			return fmt.Errorf("find products: %w", err)
		}
		defer cur.Close(ctx)

		var out []*domain.Product
		if err := cur.All(ctx, &out); err != nil {
			return fmt.Errorf("decode products: %w", err)
		}
		products = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product *domain.Product
	err := withRetry(ctx, func() error {
		p := &domain.Product{}
		err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(p)
		if errors.Is(err, mongo.ErrNoDocuments) {
			product = nil
			return nil
		}
		if err != nil {
			return fmt.Errorf("find product %d: %w", id, err)
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
