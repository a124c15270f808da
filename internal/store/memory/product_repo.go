package memory

import (
	"context"

	"megacart/internal/domain"
)

// ProductRepo serves the static catalog used in fallback mode. It is
// read-only; the slice it wraps is never mutated.
type ProductRepo struct {
	products []*domain.Product
}

func NewProductRepo(products []*domain.Product) *ProductRepo {
	return &ProductRepo{products: products}
}

var _ domain.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
