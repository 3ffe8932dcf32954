package app

import (
	"context"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, category string, limit int) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}
