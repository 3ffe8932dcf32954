package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront-cart/internal/order/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	clock Clock
	ids   IDGenerator
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type uuidGenerator struct{}

// NewID returns a short, upper-case order number derived from a random UUID.
func (uuidGenerator) NewID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func NewService(clock Clock, ids IDGenerator) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	if ids == nil {
		ids = uuidGenerator{}
	}
	return &Service{clock: clock, ids: ids}
}

// CreateOrder builds the confirmation record, computing every line total and
// the grand total from the requested items.
func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	orderItems := make([]domain.OrderItem, 0, len(req.Items))
	total := decimal.Zero

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		if item.UnitAmount.IsNegative() {
			return domain.Order{}, fmt.Errorf("item %d: unit amount cannot be negative, got %s", i, item.UnitAmount)
		}

		lineTotal := item.UnitAmount.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			UnitAmount:      item.UnitAmount,
			Quantity:        item.Quantity,
			LineTotalAmount: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return domain.Order{
		ID:            s.ids.NewID(),
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   total,
		OrderItems:    orderItems,
		CreatedAt:     s.clock.Now(),
	}, nil
}
