package domain

import (
	"context"
)

// ProductRepository defines read operations over the product catalog.
// Lookups that find nothing return (nil, nil); errors are reserved for
// store failures.
type ProductRepository interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
