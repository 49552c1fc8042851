package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Monetary amounts are integer minor units (cents) end-to-end. Floats never
// touch money.
type Transaction struct {
	TransactionID    uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	TransactionDate  time.Time       `json:"transaction_date" db:"transaction_date"`
	TotalPriceCents  int64           `json:"total_price_cents" db:"total_price_cents"`
	ItemCount        int32           `json:"item_count" db:"item_count"`
	TransactionItems json.RawMessage `json:"transaction_items" db:"transaction_items"`
}

type TransactionItem struct {
	ProductName     string `json:"product_name"`
	ProductCategory string `json:"product_category"`
	Quantity        int32  `json:"quantity"`
	PriceCents      int64  `json:"price_cents"`
}
