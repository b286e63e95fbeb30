package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a product in the catalog
type Product struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	ReorderLevel int       `json:"reorder_level"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewProduct creates a product with zero initial stock.
func NewProduct(name string, price float64, reorderLevel int) *Product {
	return &Product{
		ID:           uuid.New(),
		Name:         name,
		Price:        price,
		Stock:        0,
		ReorderLevel: reorderLevel,
		CreatedAt:    time.Now(),
	}
}

// AdjustStock applies a signed delta to the stock level. Stock may go
// negative; a purchase is never rejected for exceeding the current level.
func (p *Product) AdjustStock(delta int) {
	p.Stock += delta
}

// NeedsReorder reports whether stock is at or below the reorder level.
func (p *Product) NeedsReorder() bool {
	return p.Stock <= p.ReorderLevel
}
