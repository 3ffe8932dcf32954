package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/shopspring/decimal"
)

var ErrStorageRead = errors.New("cart storage unreadable")

type lineItemRecord struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Image    string      `json:"image"`
	Quantity int         `json:"quantity"`
}

// Encode serializes a cart as a JSON array of line items. The price is
// written as a JSON number carrying the exact decimal text.
func Encode(cart domain.Cart) (string, error) {
	records := make([]lineItemRecord, 0, len(cart.Items))
	for _, it := range cart.Items {
		records = append(records, lineItemRecord{
			ID:       it.ID,
			Name:     it.Name,
			Price:    json.Number(it.Price.String()),
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode cart: %w", err)
	}
	return string(raw), nil
}

// Decode parses a persisted cart. Any error wraps ErrStorageRead; a payload
// that parses but breaks a cart invariant is treated as malformed too.
func Decode(raw string) (domain.Cart, error) {
	var records []lineItemRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	cart := domain.Cart{Items: make([]domain.LineItem, 0, len(records))}
	for i, rec := range records {
		price, err := decimal.NewFromString(rec.Price.String())
		if err != nil {
			return domain.Cart{}, fmt.Errorf("%w: item %d price %q", ErrStorageRead, i, rec.Price)
		}
		cart.Items = append(cart.Items, domain.LineItem{
			ID:       rec.ID,
			Name:     rec.Name,
			Price:    price,
			Image:    rec.Image,
			Quantity: rec.Quantity,
		})
	}

	if err := cart.Validate(); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	return cart, nil
}
