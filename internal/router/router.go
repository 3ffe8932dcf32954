package router

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/shopspring/decimal"
)

type CartStore interface {
	Add(id, name string, price decimal.Decimal, image string) error
	Increase(id string) error
	Decrease(id string) error
	Remove(id string) error
	Snapshot() domain.Cart
}

// Projector rebuilds every visible representation from a snapshot.
type Projector interface {
	Project(cart domain.Cart)
}

type ProjectorFunc func(cart domain.Cart)

func (f ProjectorFunc) Project(cart domain.Cart) { f(cart) }

type handler func(Signal) error

// Router is the single entry point for cart interactions. Its dispatch table
// maps each action to one store operation.
type Router struct {
	store     CartStore
	projector Projector
	log       *slog.Logger
	table     map[Action]handler
}

func New(store CartStore, projector Projector, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	r := &Router{
		store:     store,
		projector: projector,
		log:       log,
	}
	r.table = map[Action]handler{
		ActionAddToCart: r.add,
		ActionIncrease:  func(s Signal) error { return store.Increase(s.ID) },
		ActionDecrease:  func(s Signal) error { return store.Decrease(s.ID) },
		ActionRemove:    func(s Signal) error { return store.Remove(s.ID) },
	}
	return r
}

// Dispatch applies sig and, when it changed the cart, re-projects the new
// snapshot before returning. Malformed signals and ids that are no longer in
// the cart are ignored and reported as applied=false with a nil error; only
// storage failures are returned.
func (r *Router) Dispatch(sig Signal) (applied bool, err error) {
	sig.ID = strings.TrimSpace(sig.ID)

	h, ok := r.table[sig.Action]
	if !ok || sig.ID == "" {
		r.log.Debug("cart signal ignored",
			slog.String("action", string(sig.Action)),
			slog.String("id", sig.ID),
			slog.Any("err", ErrMalformedSignal))
		return false, nil
	}

	err = h(sig)
	switch {
	case errors.Is(err, ErrMalformedSignal), errors.Is(err, domain.ErrInvalidItem):
		r.log.Debug("cart signal ignored",
			slog.String("action", string(sig.Action)),
			slog.String("id", sig.ID),
			slog.Any("err", err))
		return false, nil
	case errors.Is(err, domain.ErrItemNotFound):
		r.log.Debug("cart item already gone",
			slog.String("action", string(sig.Action)),
			slog.String("id", sig.ID))
		return false, nil
	case err != nil:
		return false, fmt.Errorf("dispatch %s: %w", sig.Action, err)
	}

	if r.projector != nil {
		r.projector.Project(r.store.Snapshot())
	}
	return true, nil
}

func (r *Router) add(sig Signal) error {
	p := sig.Product
	if p == nil {
		return fmt.Errorf("%w: no product display", ErrMalformedSignal)
	}

	name := strings.TrimSpace(p.Name)
	image := strings.TrimSpace(p.Image)
	if name == "" || image == "" {
		return fmt.Errorf("%w: product display missing name or image", ErrMalformedSignal)
	}

	price, err := domain.ParsePrice(p.PriceText)
	if err != nil {
		return fmt.Errorf("%w: price %q", ErrMalformedSignal, p.PriceText)
	}

	return r.store.Add(sig.ID, name, price, image)
}
