package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
)

const DefaultShopName = "Habaswein"

// Finalizer turns the billing form and the current cart into an order
// confirmation. It starts in StateEditing and moves to StateConfirmed only
// after the cart has been cleared; a failed submission leaves both the cart
// and the state untouched.
type Finalizer struct {
	cart     CartReader
	orders   OrderPlacer
	format   MoneyFormatter
	shopName string
	log      *slog.Logger

	mu           sync.Mutex
	state        domain.State
	confirmation domain.Confirmation
}

type Option func(*Finalizer)

func WithShopName(name string) Option {
	return func(f *Finalizer) {
		if strings.TrimSpace(name) != "" {
			f.shopName = name
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(f *Finalizer) {
		if log != nil {
			f.log = log
		}
	}
}

func NewFinalizer(cart CartReader, orders OrderPlacer, format MoneyFormatter, opts ...Option) *Finalizer {
	f := &Finalizer{
		cart:     cart,
		orders:   orders,
		format:   format,
		shopName: DefaultShopName,
		log:      slog.Default(),
		state:    domain.StateEditing,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Finalizer) State() domain.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Finalizer) Confirmation() (domain.Confirmation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmation, f.state == domain.StateConfirmed
}

func (f *Finalizer) Submit(ctx context.Context, form domain.Billing) (domain.Confirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == domain.StateConfirmed {
		return domain.Confirmation{}, domain.ErrAlreadyConfirmed
	}

	billing := form.Normalize()
	if err := billing.Validate(); err != nil {
		return domain.Confirmation{}, err
	}

	items, err := f.cart.GetCart(ctx)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("read cart: %w", err)
	}

	conf, err := f.orders.PlaceOrder(ctx, billing, items)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("place order: %w", err)
	}
	conf.Text = FormatConfirmation(conf, f.format, f.shopName)

	if err := f.cart.ClearCart(ctx); err != nil {
		return domain.Confirmation{}, fmt.Errorf("clear cart: %w", err)
	}

	f.state = domain.StateConfirmed
	f.confirmation = conf
	f.log.Info("order confirmed",
		slog.String("order_number", conf.OrderNumber),
		slog.Int("lines", len(conf.Lines)),
		slog.String("total", conf.Total.String()))
	return conf, nil
}

// FormatConfirmation renders the text shown to the shopper once the order
// is confirmed.
func FormatConfirmation(conf domain.Confirmation, format MoneyFormatter, shopName string) string {
	var lines []string

	lines = append(lines, "Order Confirmed!")
	lines = append(lines, strings.Repeat("-", 20))
	lines = append(lines, fmt.Sprintf("Order: %s", conf.OrderNumber))
	lines = append(lines, fmt.Sprintf("Name: %s", conf.Billing.FullName))
	lines = append(lines, fmt.Sprintf("Email: %s", conf.Billing.Email))
	lines = append(lines, fmt.Sprintf("Phone: %s", conf.Billing.Phone))
	lines = append(lines, fmt.Sprintf("Address: %s", conf.Billing.Address))
	lines = append(lines, fmt.Sprintf("Payment: %s", conf.Billing.Payment))
	lines = append(lines, "")
	lines = append(lines, "Items:")
	for _, ln := range conf.Lines {
		lines = append(lines, fmt.Sprintf("%s x%d", ln.Name, ln.Quantity))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Total: %s", format.Money(conf.Total)))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Thank you for shopping with %s!", shopName))

	return strings.Join(lines, "\n")
}
