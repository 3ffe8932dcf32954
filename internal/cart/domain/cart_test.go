package domain

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price int64) LineItem {
	return LineItem{ID: id, Name: "Product " + id, Price: decimal.NewFromInt(price), Image: id + ".jpg"}
}

func TestWithAdded(t *testing.T) {
	t.Run("new id -> appended with quantity 1", func(t *testing.T) {
		c := Cart{}.WithAdded(item("p1", 500))

		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
		assert.Equal(t, 1, c.Count())
		assert.True(t, c.Total().Equal(decimal.NewFromInt(500)))
	})

	t.Run("existing id -> quantity incremented, snapshot kept", func(t *testing.T) {
		c := Cart{}.WithAdded(item("p1", 500))
		changed := item("p1", 999)
		changed.Name = "Renamed"

		c = c.WithAdded(changed)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.Equal(t, "Product p1", c.Items[0].Name)
		assert.True(t, c.Items[0].Price.Equal(decimal.NewFromInt(500)))
	})

	t.Run("caller quantity ignored", func(t *testing.T) {
		it := item("p1", 10)
		it.Quantity = 7
		c := Cart{}.WithAdded(it)
		assert.Equal(t, 1, c.Items[0].Quantity)
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		c := Cart{}.WithAdded(item("b", 1)).WithAdded(item("a", 1)).WithAdded(item("b", 1))
		require.Len(t, c.Items, 2)
		assert.Equal(t, "b", c.Items[0].ID)
		assert.Equal(t, "a", c.Items[1].ID)
	})

	t.Run("receiver untouched", func(t *testing.T) {
		orig := Cart{}.WithAdded(item("p1", 10))
		_ = orig.WithAdded(item("p1", 10))
		assert.Equal(t, 1, orig.Items[0].Quantity)
	})
}

func TestQuantityChanges(t *testing.T) {
	base := Cart{}.WithAdded(item("p1", 500)).WithAdded(item("p2", 300))

	t.Run("increase -> +1", func(t *testing.T) {
		c, err := base.WithIncreased("p1")
		require.NoError(t, err)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.Equal(t, 1, base.Items[0].Quantity)
	})

	t.Run("decrease at 2 -> 1", func(t *testing.T) {
		c, _ := base.WithIncreased("p2")
		c, err := c.WithDecreased("p2")
		require.NoError(t, err)
		assert.Equal(t, 1, c.Items[1].Quantity)
	})

	t.Run("decrease at 1 -> removed", func(t *testing.T) {
		c, err := base.WithDecreased("p1")
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, "p2", c.Items[0].ID)
	})

	t.Run("remove -> gone regardless of quantity", func(t *testing.T) {
		c, _ := base.WithIncreased("p2")
		c, _ = c.WithIncreased("p2")
		c, err := c.WithRemoved("p2")
		require.NoError(t, err)
		_, ok := c.Find("p2")
		assert.False(t, ok)
	})

	t.Run("unknown id -> ErrItemNotFound, cart unchanged", func(t *testing.T) {
		for _, op := range []func(string) (Cart, error){base.WithIncreased, base.WithDecreased, base.WithRemoved} {
			c, err := op("nope")
			assert.ErrorIs(t, err, ErrItemNotFound)
			assert.Equal(t, base, c)
		}
	})
}

func TestAddThenRemoveRestoresCart(t *testing.T) {
	base := Cart{}.WithAdded(item("p1", 500))

	c, err := base.WithAdded(item("p9", 50)).WithRemoved("p9")
	require.NoError(t, err)
	assert.Equal(t, base, c)
}

func TestTotals(t *testing.T) {
	c := Cart{}.WithAdded(item("p1", 500)).WithAdded(item("p1", 500))
	c = c.WithAdded(LineItem{ID: "p2", Name: "Lantern", Price: decimal.RequireFromString("1250.50")})

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, "2250.5", c.Total().String())
	assert.Equal(t, "1000", c.Items[0].Subtotal().String())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cart Cart
	}{
		{"empty id", Cart{Items: []LineItem{{ID: " ", Quantity: 1}}}},
		{"zero quantity", Cart{Items: []LineItem{{ID: "p1", Quantity: 0}}}},
		{"negative price", Cart{Items: []LineItem{{ID: "p1", Quantity: 1, Price: decimal.NewFromInt(-1)}}}},
		{"duplicate id", Cart{Items: []LineItem{{ID: "p1", Quantity: 1}, {ID: "p1", Quantity: 2}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name+" -> ErrInvalidItem", func(t *testing.T) {
			assert.ErrorIs(t, tc.cart.Validate(), ErrInvalidItem)
		})
	}

	t.Run("empty cart -> ok", func(t *testing.T) {
		assert.NoError(t, Cart{}.Validate())
	})
}

// Random operation sequences must never break the cart invariants.
func TestInvariantsHoldUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d"}

	c := Cart{}
	for i := 0; i < 2000; i++ {
		id := ids[rng.Intn(len(ids))]
		before := c.Count()

		switch rng.Intn(4) {
		case 0:
			c = c.WithAdded(item(id, int64(rng.Intn(1000))))
			require.Equal(t, before+1, c.Count())
		case 1:
			next, err := c.WithIncreased(id)
			if err == nil {
				require.Equal(t, before+1, next.Count())
			}
			c = next
		case 2:
			next, err := c.WithDecreased(id)
			if err == nil {
				require.Equal(t, before-1, next.Count())
			}
			c = next
		case 3:
			next, err := c.WithRemoved(id)
			if err == nil {
				require.Less(t, next.Count(), before)
			}
			c = next
		}

		require.NoError(t, c.Validate())
		require.False(t, c.Total().IsNegative())
	}
}
