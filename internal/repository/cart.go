package repository

import "grocery-store/internal/domain"

// Cart holds the line items of the purchase currently in progress. It is
// transient state: checkout drains it into a member's transaction log and it
// is never captured in snapshots.
type Cart struct {
	items []domain.LineItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a line item to the cart.
func (c *Cart) Add(item domain.LineItem) {
	c.items = append(c.items, item)
}

// Items returns a copy of the cart contents in purchase order.
func (c *Cart) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of line items in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = c.items[:0]
}
