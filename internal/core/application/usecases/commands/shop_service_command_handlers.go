package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/services"
)

// ShopServiceCommandHandler runs catalog mutations. Each call locks the shop row,
// mutates the catalog and writes it back in one unit of work.
type ShopServiceCommandHandler struct {
	uowFactory ShopUoWFactory
	policy     services.AccessPolicy
	clock      kernel.Clock
}

// NewShopServiceCommandHandler creates the handler.
func NewShopServiceCommandHandler(uowFactory ShopUoWFactory, clock kernel.Clock) ShopServiceCommandHandler {
	return ShopServiceCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		clock:      clock,
	}
}

// HandleAdd returns the new catalog entry.
func (h *ShopServiceCommandHandler) HandleAdd(ctx context.Context, cmd AddShopServiceCommand) (shop.ServiceItem, error) {
	if err := cmd.Validate(); err != nil {
		return shop.ServiceItem{}, err
	}

	var added shop.ServiceItem
	_, err := mutateShop(ctx, h.uowFactory, h.policy, cmd.Requester(), cmd.ShopID(), func(s *shop.Shop) error {
		var err error
		added, err = s.AddService(kernel.NewUUID(), cmd.Draft(), h.clock.Now())
		return err
	})
	if err != nil {
		return shop.ServiceItem{}, err
	}
	return added, nil
}

// HandleUpdate returns the catalog entry as written.
func (h *ShopServiceCommandHandler) HandleUpdate(
	ctx context.Context, cmd UpdateShopServiceCommand,
) (shop.ServiceItem, error) {
	if err := cmd.Validate(); err != nil {
		return shop.ServiceItem{}, err
	}

	var updated shop.ServiceItem
	_, err := mutateShop(ctx, h.uowFactory, h.policy, cmd.Requester(), cmd.ShopID(), func(s *shop.Shop) error {
		var err error
		updated, err = s.UpdateService(cmd.ServiceID(), cmd.Update(), h.clock.Now())
		return err
	})
	if err != nil {
		return shop.ServiceItem{}, err
	}
	return updated, nil
}

// HandleRemove deletes a catalog entry. The last entry of a shop cannot be
// removed.
func (h *ShopServiceCommandHandler) HandleRemove(ctx context.Context, cmd RemoveShopServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateShop(ctx, h.uowFactory, h.policy, cmd.Requester(), cmd.ShopID(), func(s *shop.Shop) error {
		return s.RemoveService(cmd.ServiceID(), h.clock.Now())
	})
	return err
}
