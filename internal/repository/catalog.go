package repository

import (
	"errors"
	"iter"

	"grocery-store/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already exists")
)

// Catalog is the keyed in-memory collection of products. Lookups are by id;
// iteration follows insertion order. The catalog is not safe for concurrent
// use; the facade serializes access.
type Catalog struct {
	byID    map[uuid.UUID]*domain.Product
	ordered []*domain.Product
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[uuid.UUID]*domain.Product)}
}

// Insert adds a product. It fails with ErrDuplicateProduct if a product with
// the same id is already present, leaving the catalog unchanged.
func (c *Catalog) Insert(p *domain.Product) error {
	if _, exists := c.byID[p.ID]; exists {
		return ErrDuplicateProduct
	}
	c.byID[p.ID] = p
	c.ordered = append(c.ordered, p)
	return nil
}

// FindByID retrieves a product by id.
func (c *Catalog) FindByID(id uuid.UUID) (*domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// FindByName retrieves a product by exact name match, scanning in insertion
// order.
func (c *Catalog) FindByName(name string) (*domain.Product, error) {
	for _, p := range c.ordered {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

// All returns a restartable sequence over the products in insertion order.
func (c *Catalog) All() iter.Seq[*domain.Product] {
	return func(yield func(*domain.Product) bool) {
		for _, p := range c.ordered {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Replace discards the current contents and installs the given products, in
// order. Used when restoring from a snapshot.
func (c *Catalog) Replace(products []domain.Product) {
	c.byID = make(map[uuid.UUID]*domain.Product, len(products))
	c.ordered = c.ordered[:0]
	for i := range products {
		p := products[i]
		c.byID[p.ID] = &p
		c.ordered = append(c.ordered, &p)
	}
}
