package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"megacart/internal/catalog"
	"megacart/internal/domain"
	"megacart/internal/service"
	"megacart/internal/store/memory"
)

// failingProductRepo simulates an unreachable document store.
type failingProductRepo struct{}

func (failingProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	return nil, errors.New("server selection timeout")
}

func (failingProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return nil, errors.New("server selection timeout")
}

func TestListProducts(t *testing.T) {
	primary := memory.NewProductRepo(catalog.Seed())
	fallback := memory.NewProductRepo(catalog.Seed())

	t.Run("All", func(t *testing.T) {
		svc := service.NewCatalogService(primary, fallback)
		products, err := svc.ListProducts(context.Background(), service.ProductFilter{})
		assert.NoError(t, err)
		assert.Len(t, products, 15)
	})

	t.Run("FilterByCategory", func(t *testing.T) {
		svc := service.NewCatalogService(primary, fallback)
		products, err := svc.ListProducts(context.Background(), service.ProductFilter{Category: "sports"})
		assert.NoError(t, err)
		assert.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, "Sports", p.Category)
		}
	})

	t.Run("Search", func(t *testing.T) {
		svc := service.NewCatalogService(primary, fallback)
		products, err := svc.ListProducts(context.Background(), service.ProductFilter{Search: "laptop"})
		assert.NoError(t, err)
		assert.Len(t, products, 2) // MacBook Pro M3 and HP Spectre x360
	})

	t.Run("InStock", func(t *testing.T) {
		svc := service.NewCatalogService(primary, fallback)
		inStock := false
		products, err := svc.ListProducts(context.Background(), service.ProductFilter{InStock: &inStock})
		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("PrimaryDownServesFallback", func(t *testing.T) {
		svc := service.NewCatalogService(failingProductRepo{}, fallback)
		products, err := svc.ListProducts(context.Background(), service.ProductFilter{})
		assert.NoError(t, err)
		assert.Len(t, products, 15)
	})
}

func TestGetProduct(t *testing.T) {
	primary := memory.NewProductRepo(catalog.Seed())
	fallback := memory.NewProductRepo(catalog.Seed())

	t.Run("Found", func(t *testing.T) {
		svc := service.NewCatalogService(primary, fallback)
		p, err := svc.GetProduct(context.Background(), 1)
		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, "iPhone 15 Pro", p.Name)
	})

	t.Run("Missing", func(t *testing.T) {
		svc := service.NewCatalogService(primary, fallback)
		p, err := svc.GetProduct(context.Background(), 999)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("PrimaryDownServesFallback", func(t *testing.T) {
		svc := service.NewCatalogService(failingProductRepo{}, fallback)
		p, err := svc.GetProduct(context.Background(), 3)
		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, "Nike Air Max", p.Name)
	})
}

func TestCategories(t *testing.T) {
	svc := service.NewCatalogService(memory.NewProductRepo(nil), memory.NewProductRepo(nil))
	assert.Equal(t, []string{"Electronics", "Clothing", "Books", "Home", "Sports", "Beauty"}, svc.Categories())
}
