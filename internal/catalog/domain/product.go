package domain

import "github.com/shopspring/decimal"

// Product is one product card on the showcase. Its displayed price is what
// the cart captures on add-to-cart.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Image       string
	Price       decimal.Decimal
	OldPrice    decimal.Decimal
}

func (p Product) OnSale() bool {
	return p.OldPrice.GreaterThan(p.Price)
}
