package service

import (
	"time"

	"grocery-store/internal/domain"

	"github.com/google/uuid"
)

// Code is the closed set of outcome statuses returned by facade operations.
// Business failures are reported through these codes, never as errors.
type Code string

const (
	OperationCompleted Code = "OPERATION_COMPLETED"
	OperationFailed    Code = "OPERATION_FAILED"
	OrderPlaced        Code = "ORDER_PLACED"
	NoSuchMember       Code = "NO_SUCH_MEMBER"
	ProductNotFound    Code = "PRODUCT_NOT_FOUND"
)

// ProductFields is a value copy of a product's externally visible fields.
type ProductFields struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	ReorderLevel int       `json:"reorder_level"`
}

// MemberFields is a value copy of a member's externally visible fields.
type MemberFields struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	DateJoined time.Time `json:"date_joined"`
	Fee        float64   `json:"fee"`
}

// OrderFields is a value copy of an outstanding order's fields.
type OrderFields struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
}

// LineItemFields is a value copy of a cart line item.
type LineItemFields struct {
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// TransactionFields is a value copy of one entry in a member's purchase log.
type TransactionFields struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Timestamp   time.Time `json:"timestamp"`
}

// Result is the uniform outcome of every facade operation: a status code
// plus the field set of whichever entity the operation concerned. Field sets
// are copies; a Result never aliases live store state.
type Result struct {
	Code        Code               `json:"code"`
	Product     *ProductFields     `json:"product,omitempty"`
	Member      *MemberFields      `json:"member,omitempty"`
	Order       *OrderFields       `json:"order,omitempty"`
	LineItem    *LineItemFields    `json:"line_item,omitempty"`
	Transaction *TransactionFields `json:"transaction,omitempty"`
}

func failed(code Code) Result {
	return Result{Code: code}
}

func productFields(p *domain.Product) *ProductFields {
	return &ProductFields{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Stock:        p.Stock,
		ReorderLevel: p.ReorderLevel,
	}
}

func memberFields(m *domain.Member) *MemberFields {
	return &MemberFields{
		ID:         m.ID,
		Name:       m.Name,
		Address:    m.Address,
		Phone:      m.Phone,
		DateJoined: m.DateJoined,
		Fee:        m.Fee,
	}
}

func orderFields(o *domain.Order) *OrderFields {
	return &OrderFields{
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
	}
}

func lineItemFields(li domain.LineItem) *LineItemFields {
	return &LineItemFields{
		ProductName: li.ProductName,
		UnitPrice:   li.UnitPrice,
		Quantity:    li.Quantity,
	}
}

func transactionFields(t domain.Transaction) *TransactionFields {
	return &TransactionFields{
		ProductID:   t.ProductID,
		ProductName: t.ProductName,
		UnitPrice:   t.UnitPrice,
		Quantity:    t.Quantity,
		Timestamp:   t.Timestamp,
	}
}
