package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the confirmation record of a finalized checkout. It is shown to
// the shopper and never stored server-side.
type Order struct {
	ID            string
	FullName      string
	Email         string
	Phone         string
	Address       string
	PaymentMethod string
	TotalAmount   decimal.Decimal
	OrderItems    []OrderItem
	CreatedAt     time.Time
}

type OrderItem struct {
	ProductID       string
	Name            string
	UnitAmount      decimal.Decimal
	Quantity        int
	LineTotalAmount decimal.Decimal
}

type CreateOrderRequest struct {
	FullName      string
	Email         string
	Phone         string
	Address       string
	PaymentMethod string
	Items         []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID  string
	Name       string
	UnitAmount decimal.Decimal
	Quantity   int
}
