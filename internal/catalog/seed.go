package catalog

import "megacart/internal/domain"

// Categories is the fixed set of storefront categories. The list is a
// constant and is served regardless of what the database holds.
var Categories = []string{"Electronics", "Clothing", "Books", "Home", "Sports", "Beauty"}

// Seed returns the built-in product catalog. It doubles as the fallback
// dataset when the document store is unreachable and as the initial data
// for an empty products collection.
func Seed() []*domain.Product {
	return []*domain.Product{
		{
			ID:          1,
			Name:        "iPhone 15 Pro",
			Description: "Latest iPhone with advanced features",
			Price:       99999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1697284959152-32ef13855932?w=800",
			Rating:      4.8,
			Reviews:     1250,
			InStock:     true,
		},
		{
			ID:          2,
			Name:        "Samsung Galaxy S24",
			Description: "Premium Android smartphone",
			Price:       79999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?w=400",
			Rating:      4.6,
			Reviews:     890,
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "Nike Air Max",
			Description: "Comfortable running shoes",
			Price:       8999,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			Rating:      4.4,
			Reviews:     567,
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "MacBook Pro M3",
			Description: "Powerful laptop for professionals",
			Price:       199999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400",
			Rating:      4.9,
			Reviews:     423,
			InStock:     true,
		},
		{
			ID:          5,
			Name:        "Levi's Jeans",
			Description: "Classic denim jeans",
			Price:       3999,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
			Rating:      4.2,
			Reviews:     234,
			InStock:     true,
		},
		{
			ID:          6,
			Name:        "Apple Watch Series 9",
			Description: "Smartwatch with fitness tracking and health features",
			Price:       45999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1644235779485-e4d021d8edab?w=800",
			Rating:      4.6,
			Reviews:     870,
			InStock:     true,
		},
		{
			ID:          7,
			Name:        "HP Spectre x360",
			Description: "Convertible laptop with touchscreen display",
			Price:       134999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1619532550465-ad4dc9bd680a?w=800",
			Rating:      4.5,
			Reviews:     560,
			InStock:     true,
		},
		{
			ID:          8,
			Name:        "Canon EOS R10",
			Description: "Mirrorless camera for photography enthusiasts",
			Price:       89999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1745848037998-1e6dc8380f7e?w=800",
			Rating:      4.7,
			Reviews:     340,
			InStock:     true,
		},
		{
			ID:          9,
			Name:        "Apple AirPods Pro 2",
			Description: "Wireless earbuds with noise cancellation",
			Price:       24999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1610438235354-a6ae5528385c?w=800",
			Rating:      4.8,
			Reviews:     1120,
			InStock:     true,
		},
		{
			ID:          10,
			Name:        "Fitbit Charge 6",
			Description: "Fitness band with heart rate monitoring",
			Price:       15999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1611270629569-948d94ca915a?w=800",
			Rating:      4.4,
			Reviews:     450,
			InStock:     true,
		},
		{
			ID:          11,
			Name:        "Woodland Hiking Boots",
			Description: "Durable boots for trekking and hiking",
			Price:       7999,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1542841366-9a30e19bb19a?w=800",
			Rating:      4.3,
			Reviews:     290,
			InStock:     true,
		},
		{
			ID:          12,
			Name:        "Ray-Ban Aviator Sunglasses",
			Description: "Classic unisex sunglasses",
			Price:       12999,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1612479121907-15bca39a5388?w=800",
			Rating:      4.6,
			Reviews:     710,
			InStock:     true,
		},
		{
			ID:          13,
			Name:        "Gucci Leather Wallet",
			Description: "Luxury leather wallet for men",
			Price:       24999,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1584723344605-03537a1369d5?w=800",
			Rating:      4.5,
			Reviews:     180,
			InStock:     true,
		},
		{
			ID:          14,
			Name:        "Yonex Badminton Racket",
			Description: "Lightweight racket for professional players",
			Price:       6999,
			Category:    "Sports",
			Image:       "https://images.unsplash.com/photo-1615326882458-e0d45b097f55?w=800",
			Rating:      4.7,
			Reviews:     520,
			InStock:     true,
		},
		{
			ID:          15,
			Name:        "Decathlon Yoga Mat",
			Description: "Non-slip yoga mat with cushioning",
			Price:       2499,
			Category:    "Sports",
			Image:       "https://plus.unsplash.com/premium_photo-1716025656382-cc9dfe8714a7?w=800",
			Rating:      4.4,
			Reviews:     330,
			InStock:     true,
		},
	}
}
