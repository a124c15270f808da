package service

import (
	"context"
	"log"
	"strings"

	"megacart/internal/catalog"
	"megacart/internal/domain"
)

// CatalogService serves product and category reads. Reads that fail
// against the primary store are answered from the fallback repository so
// the storefront keeps rendering while the document store is down.
type CatalogService struct {
	products domain.ProductRepository
	fallback domain.ProductRepository
}

func NewCatalogService(products, fallback domain.ProductRepository) *CatalogService {
	return &CatalogService{
		products: products,
		fallback: fallback,
	}
}

// ProductFilter holds the optional query filters for product listings.
type ProductFilter struct {
	Category string
	Search   string
	InStock  *bool
}

func (f ProductFilter) empty() bool {
	return f.Category == "" && f.Search == "" && f.InStock == nil
}

// ListProducts returns catalog entries matching the filter.
func (s *CatalogService) ListProducts(ctx context.Context, f ProductFilter) ([]*domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		log.Printf("catalog: primary store list failed, serving fallback: %v", err)
		products, err = s.fallback.List(ctx)
		if err != nil {
			return nil, err
		}
	}
	return filterProducts(products, f), nil
}

// GetProduct returns the entry with the given id, or (nil, nil) when no
// such entry exists.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		log.Printf("catalog: primary store lookup failed, serving fallback: %v", err)
		product, err = s.fallback.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	return product, nil
}

// Categories returns the fixed category name list.
func (s *CatalogService) Categories() []string {
	return catalog.Categories
}

func filterProducts(products []*domain.Product, f ProductFilter) []*domain.Product {
	if f.empty() {
		return products
	}

	search := strings.ToLower(f.Search)
	out := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}
