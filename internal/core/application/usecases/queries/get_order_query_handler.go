package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// GetOrderQueryHandler returns an order to its customer or to the owner of its shop.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	shops  ports.ShopRepository
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates the handler.
func NewGetOrderQueryHandler(orders ports.OrderRepository, shops ports.ShopRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, shops: shops, policy: services.NewAccessPolicy()}
}

// Handle returns the order when the requester placed it or owns its shop,
// ErrForbidden otherwise.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = authorizeOrderRead(ctx, h.shops, h.policy, query.Requester(), o); err != nil {
		return nil, err
	}
	return o, nil
}
