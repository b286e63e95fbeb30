package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is an outstanding restock request. At most one order may exist per
// product at any time; the facade enforces this before insertion.
type Order struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PlacedAt    time.Time `json:"placed_at"`
}

// NewOrder creates an outstanding order for the given product. The product
// name is a denormalized snapshot taken at placement time.
func NewOrder(productID uuid.UUID, productName string, quantity int) *Order {
	return &Order{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		PlacedAt:    time.Now(),
	}
}
