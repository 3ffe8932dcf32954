package app

import (
	"context"

	"github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type CartReader interface {
	GetCart(ctx context.Context) ([]CartItem, error)
	ClearCart(ctx context.Context) error
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, billing domain.Billing, items []CartItem) (domain.Confirmation, error)
}

type MoneyFormatter interface {
	Money(d decimal.Decimal) string
}
