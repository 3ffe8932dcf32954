package projection

import (
	"fmt"

	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
)

// Renderer derives view models from a cart snapshot. It holds no cart state;
// the same snapshot always yields the same views.
type Renderer struct {
	format Formatter
}

func NewRenderer(format Formatter) *Renderer {
	return &Renderer{format: format}
}

func (r *Renderer) Formatter() Formatter {
	return r.format
}

func (r *Renderer) HeaderBadge(cart domain.Cart) Badge {
	return Badge{Count: cart.Count()}
}

func (r *Renderer) CartTable(cart domain.Cart) CartTable {
	if cart.IsEmpty() {
		return CartTable{
			PlaceholderVisible: true,
			Rows:               []TableRow{},
			Total:              r.format.Money(cart.Total()),
		}
	}

	rows := make([]TableRow, 0, len(cart.Items))
	for _, it := range cart.Items {
		rows = append(rows, TableRow{
			ID:        it.ID,
			Name:      it.Name,
			Image:     it.Image,
			UnitPrice: r.format.Money(it.Price),
			Quantity:  it.Quantity,
			Subtotal:  r.format.Money(it.Subtotal()),
		})
	}

	return CartTable{
		TableVisible: true,
		Rows:         rows,
		Total:        r.format.Money(cart.Total()),
	}
}

func (r *Renderer) CheckoutSummary(cart domain.Cart) CheckoutSummary {
	if cart.IsEmpty() {
		return CheckoutSummary{
			PlaceholderVisible: true,
			Lines:              []SummaryLine{},
			Total:              r.format.Money(cart.Total()),
			SubmitDisabled:     true,
		}
	}

	lines := make([]SummaryLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, SummaryLine{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Label:     fmt.Sprintf("%s ×%d", it.Name, it.Quantity),
			LineTotal: r.format.Money(it.Subtotal()),
		})
	}

	return CheckoutSummary{
		Lines: lines,
		Total: r.format.Money(cart.Total()),
	}
}

func (r *Renderer) Project(cart domain.Cart) Views {
	return Views{
		Badge:   r.HeaderBadge(cart),
		Table:   r.CartTable(cart),
		Summary: r.CheckoutSummary(cart),
	}
}
