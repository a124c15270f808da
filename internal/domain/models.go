package domain

import "time"

// Product is a single catalog entry. JSON field names follow the public
// API contract; bson tags match the document layout in the products
// collection, where every document carries a numeric id alongside _id.
type Product struct {
	ID          int64   `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
	Image       string  `bson:"image" json:"image"`
	Rating      float64 `bson:"rating" json:"rating"`
	Reviews     int     `bson:"reviews" json:"reviews"`
	InStock     bool    `bson:"inStock" json:"inStock"`
}

// User represents a registered customer account. ID is the ObjectID hex
// of the backing document (or a generated one in fallback mode).
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
