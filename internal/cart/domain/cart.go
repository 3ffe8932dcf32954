package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("invalid item")
)

// LineItem is one distinct product in the cart. Name, Price and Image are
// captured when the product is first added and are never refreshed.
type LineItem struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Image    string
	Quantity int
}

func (it LineItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Cart keeps line items in insertion order, unique by ID.
type Cart struct {
	Items []LineItem
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Count is the number of units across all line items.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (c Cart) Find(id string) (LineItem, bool) {
	if i := c.index(id); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

// Validate reports the first violated cart invariant.
func (c Cart) Validate() error {
	seen := make(map[string]struct{}, len(c.Items))
	for i, it := range c.Items {
		if strings.TrimSpace(it.ID) == "" {
			return fmt.Errorf("item %d: %w: empty id", i, ErrInvalidItem)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("item %s: %w: quantity %d", it.ID, ErrInvalidItem, it.Quantity)
		}
		if it.Price.IsNegative() {
			return fmt.Errorf("item %s: %w: negative price", it.ID, ErrInvalidItem)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("item %s: %w: duplicate id", it.ID, ErrInvalidItem)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

// WithAdded returns a copy of c where the item with item.ID has one more
// unit, appending it with quantity 1 when absent. item.Quantity is ignored.
func (c Cart) WithAdded(item LineItem) Cart {
	next := c.Clone()
	if i := next.index(item.ID); i >= 0 {
		next.Items[i].Quantity++
		return next
	}
	item.Quantity = 1
	next.Items = append(next.Items, item)
	return next
}

func (c Cart) WithIncreased(id string) (Cart, error) {
	i := c.index(id)
	if i < 0 {
		return c, ErrItemNotFound
	}
	next := c.Clone()
	next.Items[i].Quantity++
	return next, nil
}

// WithDecreased drops one unit, removing the line item when it would reach zero.
func (c Cart) WithDecreased(id string) (Cart, error) {
	i := c.index(id)
	if i < 0 {
		return c, ErrItemNotFound
	}
	if c.Items[i].Quantity <= 1 {
		return c.without(i), nil
	}
	next := c.Clone()
	next.Items[i].Quantity--
	return next, nil
}

func (c Cart) WithRemoved(id string) (Cart, error) {
	i := c.index(id)
	if i < 0 {
		return c, ErrItemNotFound
	}
	return c.without(i), nil
}

func (c Cart) without(i int) Cart {
	items := make([]LineItem, 0, len(c.Items)-1)
	items = append(items, c.Items[:i]...)
	items = append(items, c.Items[i+1:]...)
	return Cart{Items: items}
}

func (c Cart) index(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
