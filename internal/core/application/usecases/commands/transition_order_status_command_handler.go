package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// TransitionOrderStatusCommandHandler moves an order along the status graph.
//
// No in-process lock is taken. The write is a compare-and-swap on the status
// read at the start of the call, so of two concurrent transitions from the same
// status exactly one succeeds and the other gets a ConflictError.
type TransitionOrderStatusCommandHandler struct {
	orders ports.OrderRepository
	shops  ports.ShopRepository
	policy services.AccessPolicy
	clock  kernel.Clock
}

// NewTransitionOrderStatusCommandHandler creates the handler.
func NewTransitionOrderStatusCommandHandler(
	orders ports.OrderRepository, shops ports.ShopRepository, clock kernel.Clock,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		orders: orders,
		shops:  shops,
		policy: services.NewAccessPolicy(),
		clock:  clock,
	}
}

// Handle returns the order as written.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = authorizeOrderAccess(ctx, h.policy, h.shops, cmd.Requester(), o); err != nil {
		return nil, err
	}

	from := o.Status()
	if err = o.TransitionTo(cmd.Next(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = h.orders.UpdateStatus(ctx, o.ID(), from, o.Status(), o.UpdatedAt()); err != nil {
		return nil, err
	}

	return o, nil
}

// authorizeOrderAccess loads the order's shop for shop owners and applies the access policy.
// A shop that no longer exists grants nobody owner access.
func authorizeOrderAccess(
	ctx context.Context, policy services.AccessPolicy, shops ports.ShopRepository, r kernel.Requester, o *order.Order,
) error {
	var s *shop.Shop
	if r.IsShopOwner() {
		loaded, err := shops.Get(ctx, o.ShopID())
		switch {
		case err == nil:
			s = loaded
		case !errors.Is(err, errs.ErrObjectNotFound):
			return err
		}
	}
	return policy.CanAccessOrder(r, o, s)
}
