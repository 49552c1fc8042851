package models

import "time"

// Product.ProductImage holds the object storage key. Handlers swap it for a
// presigned URL before responding, the key itself never leaves the API.
type Product struct {
	ProductID    string    `json:"product_id" db:"product_id"`
	ProductName  string    `json:"product_name" db:"product_name"`
	PriceCents   int64     `json:"price_cents" db:"price_cents"`
	Stock        int32     `json:"stock" db:"stock"`
	SKU          string    `json:"sku" db:"sku"`
	CategoryID   *string   `json:"category_id,omitempty" db:"category_id"`
	CategoryName *string   `json:"category_name,omitempty" db:"category_name"`
	ProductImage *string   `json:"product_image,omitempty" db:"product_image"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
