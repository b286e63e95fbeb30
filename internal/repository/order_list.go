package repository

import (
	"errors"
	"iter"
	"slices"

	"grocery-store/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order already exists for product")
)

// OrderList is the in-memory queue of outstanding restock orders, keyed by
// product id. Add enforces the at-most-one-order-per-product invariant.
type OrderList struct {
	byProduct map[uuid.UUID]*domain.Order
	ordered   []*domain.Order
}

// NewOrderList creates an empty order list.
func NewOrderList() *OrderList {
	return &OrderList{byProduct: make(map[uuid.UUID]*domain.Order)}
}

// Add inserts an outstanding order. It fails with ErrDuplicateOrder if an
// order for the same product is already queued.
func (l *OrderList) Add(o *domain.Order) error {
	if _, exists := l.byProduct[o.ProductID]; exists {
		return ErrDuplicateOrder
	}
	l.byProduct[o.ProductID] = o
	l.ordered = append(l.ordered, o)
	return nil
}

// FindByProduct retrieves the outstanding order for a product, if any.
func (l *OrderList) FindByProduct(productID uuid.UUID) (*domain.Order, error) {
	o, ok := l.byProduct[productID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// Remove deletes the outstanding order for a product.
func (l *OrderList) Remove(productID uuid.UUID) error {
	o, ok := l.byProduct[productID]
	if !ok {
		return ErrOrderNotFound
	}
	delete(l.byProduct, productID)
	l.ordered = slices.DeleteFunc(l.ordered, func(e *domain.Order) bool {
		return e == o
	})
	return nil
}

// All returns a restartable sequence over the orders in placement order.
func (l *OrderList) All() iter.Seq[*domain.Order] {
	return func(yield func(*domain.Order) bool) {
		for _, o := range l.ordered {
			if !yield(o) {
				return
			}
		}
	}
}

// Len returns the number of outstanding orders.
func (l *OrderList) Len() int {
	return len(l.ordered)
}

// Replace discards the current contents and installs the given orders, in
// order. Used when restoring from a snapshot.
func (l *OrderList) Replace(orders []domain.Order) {
	l.byProduct = make(map[uuid.UUID]*domain.Order, len(orders))
	l.ordered = l.ordered[:0]
	for i := range orders {
		o := orders[i]
		l.byProduct[o.ProductID] = &o
		l.ordered = append(l.ordered, &o)
	}
}
