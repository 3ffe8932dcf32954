package adapter

import (
	"context"
	"testing"
	"time"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/kv"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/storefront-cart/internal/order/app"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ checkoutapp.CartReader  = (*CartStoreReader)(nil)
	_ checkoutapp.OrderPlacer = (*OrderServicePlacer)(nil)
)

type stubClock struct{}

func (stubClock) Now() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

type stubID struct{}

func (stubID) NewID() string { return "ORDER0000001" }

func TestCartStoreReader(t *testing.T) {
	store := cartapp.NewStore(kv.NewMemory())
	require.NoError(t, store.Add("p1", "Smartphone", decimal.NewFromInt(500), "p1.jpg"))
	require.NoError(t, store.Add("p1", "Smartphone", decimal.NewFromInt(500), "p1.jpg"))
	r := NewCartStoreReader(store)

	items, err := r.GetCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []checkoutapp.CartItem{{ProductID: "p1", Name: "Smartphone", UnitPrice: decimal.NewFromInt(500), Quantity: 2}}, items)

	require.NoError(t, r.ClearCart(context.Background()))
	assert.True(t, store.Snapshot().IsEmpty())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.GetCart(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrderServicePlacer(t *testing.T) {
	p := NewOrderServicePlacer(orderapp.NewService(stubClock{}, stubID{}))
	billing := checkoutdomain.Billing{FullName: "Amina", Email: "a@b.c", Phone: "1", Address: "x", Payment: "card"}

	conf, err := p.PlaceOrder(context.Background(), billing, []checkoutapp.CartItem{
		{ProductID: "p1", Name: "Smartphone", UnitPrice: decimal.NewFromInt(500), Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "ORDER0000001", conf.OrderNumber)
	assert.Equal(t, billing, conf.Billing)
	require.Len(t, conf.Lines, 1)
	assert.Equal(t, "1000", conf.Lines[0].LineTotal.String())
	assert.Equal(t, "1000", conf.Total.String())
	assert.Equal(t, stubClock{}.Now(), conf.ConfirmedAt)
}
