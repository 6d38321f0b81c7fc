package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler places a Pending order and bumps the shop's order counter.
//
// The insert and the counter increment are two separate store operations. A
// failed increment does not fail the order; it is logged and repaired later by
// the counter reconciliation job.
type CreateOrderCommandHandler struct {
	orders ports.OrderRepository
	shops  ports.ShopRepository
	policy services.AccessPolicy
	clock  kernel.Clock
	logger *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler that places orders in one
// unit of work and bumps the shop counter afterwards.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	shops ports.ShopRepository,
	clock kernel.Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders: orders,
		shops:  shops,
		policy: services.NewAccessPolicy(),
		clock:  clock,
		logger: loggerOrDefault(logger, "create_order"),
	}
}

// Handle returns the id of the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := h.policy.RequireCustomer(cmd.Requester()); err != nil {
		return kernel.UUID{}, err
	}

	shop, err := h.shops.Get(ctx, cmd.ShopID())
	if err != nil {
		return kernel.UUID{}, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.Requester().UserID, shop.ID(), cmd.Details(), h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.orders.Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = h.shops.IncrementTotalOrders(ctx, shop.ID()); err != nil {
		h.logger.WarnContext(ctx, "shop counter increment failed",
			"shop_id", shop.ID().String(), "order_id", o.ID().String(), "error", err)
	}

	return o.ID(), nil
}
