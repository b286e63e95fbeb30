package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTransactionsOnFiltersByCalendarDay(t *testing.T) {
	m := NewMember("Alice", "", "", time.Now(), 25)
	productID := uuid.New()

	day := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	m.RecordTransaction(Transaction{ProductID: productID, ProductName: "milk", Quantity: 1, Timestamp: day.Add(9 * time.Hour)})
	m.RecordTransaction(Transaction{ProductID: productID, ProductName: "milk", Quantity: 2, Timestamp: day.Add(23*time.Hour + 59*time.Minute)})
	m.RecordTransaction(Transaction{ProductID: productID, ProductName: "milk", Quantity: 3, Timestamp: day.AddDate(0, 0, 1)})

	got := m.TransactionsOn(day)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Quantity)
	assert.Equal(t, 2, got[1].Quantity)

	assert.Empty(t, m.TransactionsOn(day.AddDate(0, 0, -1)))
}

func TestProductStockLifecycle(t *testing.T) {
	p := NewProduct("milk", 2.50, 10)
	assert.Equal(t, 0, p.Stock)
	assert.True(t, p.NeedsReorder())

	p.AdjustStock(25)
	assert.False(t, p.NeedsReorder())

	p.AdjustStock(-30)
	assert.Equal(t, -5, p.Stock)
	assert.True(t, p.NeedsReorder())
}
