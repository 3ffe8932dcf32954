package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const CategoryAll = "all"

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, strings.TrimSpace(id))
}

// ListProducts returns the showcase for one category; an empty category or
// "all" lists everything.
func (s *Service) ListProducts(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category == CategoryAll {
		category = ""
	}
	return s.repo.List(ctx, category, limit)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
