package adapter

import (
	"context"

	cartdomain "github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
)

type CartStore interface {
	Snapshot() cartdomain.Cart
	Clear() error
}

type CartStoreReader struct {
	store CartStore
}

func NewCartStoreReader(store CartStore) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) GetCart(ctx context.Context) ([]checkoutapp.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cart := r.store.Snapshot()
	items := make([]checkoutapp.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, checkoutapp.CartItem{
			ProductID: it.ID,
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		})
	}
	return items, nil
}

func (r *CartStoreReader) ClearCart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.Clear()
}
