package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// ListCustomerOrdersQueryHandler lists the orders of the requesting customer.
type ListCustomerOrdersQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewListCustomerOrdersQueryHandler creates the handler.
func NewListCustomerOrdersQueryHandler(orders ports.OrderRepository) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{orders: orders, policy: services.NewAccessPolicy()}
}

// Handle returns the orders newest first. Only customers have orders of their own.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context, query ListCustomerOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.RequireCustomer(query.Requester()); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListByCustomer(ctx, query.Requester().UserID, query.Filter())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}

// ListShopOrdersQueryHandler lists the orders of a shop for its owner.
type ListShopOrdersQueryHandler struct {
	orders ports.OrderRepository
	shops  ports.ShopRepository
	policy services.AccessPolicy
}

// NewListShopOrdersQueryHandler creates the handler.
func NewListShopOrdersQueryHandler(orders ports.OrderRepository, shops ports.ShopRepository) ListShopOrdersQueryHandler {
	return ListShopOrdersQueryHandler{orders: orders, shops: shops, policy: services.NewAccessPolicy()}
}

// Handle returns ErrForbidden unless the requester owns the shop.
func (h ListShopOrdersQueryHandler) Handle(
	ctx context.Context, query ListShopOrdersQuery,
) (ListShopOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShopOrdersQueryResponse{}, err
	}
	if _, err := ownedShop(ctx, h.shops, h.policy, query.Requester(), query.ShopID()); err != nil {
		return ListShopOrdersQueryResponse{}, err
	}

	orders, err := h.orders.ListByShop(ctx, query.ShopID(), query.Filter())
	if err != nil {
		return ListShopOrdersQueryResponse{}, err
	}
	totals, err := h.orders.StatusTotals(ctx, query.ShopID())
	if err != nil {
		return ListShopOrdersQueryResponse{}, err
	}

	resp := ListShopOrdersQueryResponse{Orders: orders}
	if resp.Orders == nil {
		resp.Orders = make([]*order.Order, 0)
	}
	for _, t := range totals {
		resp.Counts.Add(t.Status, t.Count)
	}
	return resp, nil
}
