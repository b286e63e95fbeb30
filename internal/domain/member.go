package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member represents an enrolled store member
type Member struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Phone        string        `json:"phone"`
	DateJoined   time.Time     `json:"date_joined"`
	Fee          float64       `json:"fee"`
	Transactions []Transaction `json:"transactions"`
}

// Transaction is one completed purchase recorded in a member's log
type Transaction struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewMember creates a member with an empty transaction log.
func NewMember(name, address, phone string, dateJoined time.Time, fee float64) *Member {
	return &Member{
		ID:         uuid.New(),
		Name:       name,
		Address:    address,
		Phone:      phone,
		DateJoined: dateJoined,
		Fee:        fee,
	}
}

// RecordTransaction appends a purchase to the member's log. The log is
// append-only; entries are never updated or removed.
func (m *Member) RecordTransaction(t Transaction) {
	m.Transactions = append(m.Transactions, t)
}

// TransactionsOn returns the member's transactions that fall on the given
// calendar day, in recording order.
func (m *Member) TransactionsOn(day time.Time) []Transaction {
	y, mo, d := day.Date()
	var out []Transaction
	for _, t := range m.Transactions {
		ty, tmo, td := t.Timestamp.Date()
		if ty == y && tmo == mo && td == d {
			out = append(out, t)
		}
	}
	return out
}
