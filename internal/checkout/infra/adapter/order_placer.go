package adapter

import (
	"context"

	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/storefront-cart/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront-cart/internal/order/domain"
)

type OrderServicePlacer struct {
	svc *orderapp.Service
}

func NewOrderServicePlacer(svc *orderapp.Service) *OrderServicePlacer {
	return &OrderServicePlacer{svc: svc}
}

func (p *OrderServicePlacer) PlaceOrder(ctx context.Context, billing checkoutdomain.Billing, items []checkoutapp.CartItem) (checkoutdomain.Confirmation, error) {
	reqItems := make([]orderdomain.OrderItemRequest, 0, len(items))
	for _, it := range items {
		reqItems = append(reqItems, orderdomain.OrderItemRequest{
			ProductID:  it.ProductID,
			Name:       it.Name,
			UnitAmount: it.UnitPrice,
			Quantity:   it.Quantity,
		})
	}

	order, err := p.svc.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		FullName:      billing.FullName,
		Email:         billing.Email,
		Phone:         billing.Phone,
		Address:       billing.Address,
		PaymentMethod: billing.Payment,
		Items:         reqItems,
	})
	if err != nil {
		return checkoutdomain.Confirmation{}, err
	}

	lines := make([]checkoutdomain.ConfirmationLine, 0, len(order.OrderItems))
	for _, it := range order.OrderItems {
		lines = append(lines, checkoutdomain.ConfirmationLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitAmount,
			LineTotal: it.LineTotalAmount,
		})
	}

	return checkoutdomain.Confirmation{
		OrderNumber: order.ID,
		Billing: checkoutdomain.Billing{
			FullName: order.FullName,
			Email:    order.Email,
			Phone:    order.Phone,
			Address:  order.Address,
			Payment:  order.PaymentMethod,
		},
		Lines:       lines,
		Total:       order.TotalAmount,
		ConfirmedAt: order.CreatedAt,
	}, nil
}
