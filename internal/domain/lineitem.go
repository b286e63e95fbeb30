package domain

import "github.com/google/uuid"

// LineItem is an immutable record of one purchase event in the active cart.
// Name and price are snapshots of the product at purchase time.
type LineItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
}
