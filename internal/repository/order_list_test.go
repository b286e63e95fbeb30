package repository

import (
	"testing"

	"grocery-store/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderListAtMostOnePerProduct(t *testing.T) {
	list := NewOrderList()
	productID := uuid.New()

	require.NoError(t, list.Add(domain.NewOrder(productID, "milk", 20)))
	assert.ErrorIs(t, list.Add(domain.NewOrder(productID, "milk", 40)), ErrDuplicateOrder)
	assert.Equal(t, 1, list.Len())

	found, err := list.FindByProduct(productID)
	require.NoError(t, err)
	assert.Equal(t, 20, found.Quantity)
}

func TestOrderListRemove(t *testing.T) {
	list := NewOrderList()
	productID := uuid.New()
	require.NoError(t, list.Add(domain.NewOrder(productID, "milk", 20)))

	require.NoError(t, list.Remove(productID))
	assert.Equal(t, 0, list.Len())
	assert.ErrorIs(t, list.Remove(productID), ErrOrderNotFound)

	// A fresh order for the product is accepted after removal
	require.NoError(t, list.Add(domain.NewOrder(productID, "milk", 20)))
}

func TestOrderListFindMissing(t *testing.T) {
	list := NewOrderList()
	_, err := list.FindByProduct(uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderListIterationOrder(t *testing.T) {
	list := NewOrderList()
	first := domain.NewOrder(uuid.New(), "milk", 20)
	second := domain.NewOrder(uuid.New(), "eggs", 10)
	require.NoError(t, list.Add(first))
	require.NoError(t, list.Add(second))

	var got []string
	for o := range list.All() {
		got = append(got, o.ProductName)
	}
	assert.Equal(t, []string{"milk", "eggs"}, got)
}

func TestCartAddAndClear(t *testing.T) {
	cart := NewCart()
	cart.Add(domain.LineItem{ProductID: uuid.New(), ProductName: "milk", UnitPrice: 2.50, Quantity: 3})
	cart.Add(domain.LineItem{ProductID: uuid.New(), ProductName: "eggs", UnitPrice: 4.00, Quantity: 1})

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "milk", items[0].ProductName)

	// Items returns a copy, not the live slice
	items[0].ProductName = "mutated"
	assert.Equal(t, "milk", cart.Items()[0].ProductName)

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
}
