package app

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/shopspring/decimal"
)

const DefaultStorageKey = "cart"

// Store is the single owner of the canonical cart. Every mutation reloads
// the persisted cart, applies the change and writes the whole cart back
// before returning, so other readers of the same storage never observe a
// state older than the last completed mutation.
type Store struct {
	storage  Storage
	key      string
	notifier Notifier
	log      *slog.Logger

	mu   sync.Mutex
	cart domain.Cart
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     DefaultStorageKey,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load()
	return s
}

// Load rereads persisted storage. A missing or malformed value yields an
// empty cart.
func (s *Store) Load() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = s.read()
	return s.cart.Clone()
}

// Snapshot returns a copy of the current cart without touching storage.
func (s *Store) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

func (s *Store) Add(id, name string, price decimal.Decimal, image string) error {
	if strings.TrimSpace(id) == "" || price.IsNegative() {
		return domain.ErrInvalidItem
	}

	err := s.mutate("add", func(c domain.Cart) (domain.Cart, error) {
		return c.WithAdded(domain.LineItem{ID: id, Name: name, Price: price, Image: image}), nil
	})
	if err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.ItemAdded(name)
	}
	return nil
}

func (s *Store) Increase(id string) error {
	return s.mutate("increase", func(c domain.Cart) (domain.Cart, error) {
		return c.WithIncreased(id)
	})
}

func (s *Store) Decrease(id string) error {
	return s.mutate("decrease", func(c domain.Cart) (domain.Cart, error) {
		return c.WithDecreased(id)
	})
}

func (s *Store) Remove(id string) error {
	return s.mutate("remove", func(c domain.Cart) (domain.Cart, error) {
		return c.WithRemoved(id)
	})
}

func (s *Store) Clear() error {
	return s.mutate("clear", func(domain.Cart) (domain.Cart, error) {
		return domain.Cart{}, nil
	})
}

func (s *Store) mutate(op string, fn func(domain.Cart) (domain.Cart, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.read()
	s.cart = current

	next, err := fn(current)
	if err != nil {
		return err
	}

	if err := s.write(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cart = next
	return nil
}

func (s *Store) read() domain.Cart {
	raw, ok, err := s.storage.GetItem(s.key)
	if err != nil {
		s.log.Warn("cart storage read failed, using empty cart",
			slog.String("key", s.key), slog.Any("err", err))
		return domain.Cart{}
	}
	if !ok {
		return domain.Cart{}
	}

	cart, err := Decode(raw)
	if err != nil {
		s.log.Warn("cart storage malformed, using empty cart",
			slog.String("key", s.key), slog.Any("err", err))
		return domain.Cart{}
	}
	return cart
}

func (s *Store) write(cart domain.Cart) error {
	raw, err := Encode(cart)
	if err != nil {
		return err
	}
	if err := s.storage.SetItem(s.key, raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
