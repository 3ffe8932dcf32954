package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

//go:embed products.json
var defaultProducts []byte

type productRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	OldPrice    decimal.Decimal `json:"old_price"`
}

// ProductRepo serves a fixed product list loaded once at startup.
type ProductRepo struct {
	products []domain.Product
	byID     map[string]domain.Product
}

func NewDefaultProductRepo() (*ProductRepo, error) {
	return NewProductRepo(defaultProducts)
}

// NewProductRepoFromFile loads the catalog from path, falling back to the
// embedded catalog when path is empty.
func NewProductRepoFromFile(path string) (*ProductRepo, error) {
	if path == "" {
		return NewDefaultProductRepo()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return NewProductRepo(raw)
}

func NewProductRepo(raw []byte) (*ProductRepo, error) {
	var records []productRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	r := &ProductRepo{
		products: make([]domain.Product, 0, len(records)),
		byID:     make(map[string]domain.Product, len(records)),
	}
	for i, rec := range records {
		if rec.ID == "" || rec.Name == "" {
			return nil, fmt.Errorf("catalog item %d: id and name are required", i)
		}
		if _, dup := r.byID[rec.ID]; dup {
			return nil, fmt.Errorf("catalog item %d: duplicate id %s", i, rec.ID)
		}
		p := domain.Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Category:    rec.Category,
			Description: rec.Description,
			Image:       rec.Image,
			Price:       rec.Price,
			OldPrice:    rec.OldPrice,
		}
		r.products = append(r.products, p)
		r.byID[p.ID] = p
	}
	return r, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	out := make([]domain.Product, 0, limit)
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range r.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}
