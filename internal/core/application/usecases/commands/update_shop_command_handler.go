package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// UpdateShopCommandHandler applies a patch under a row lock and re-syncs the geo index.
type UpdateShopCommandHandler struct {
	uowFactory ShopUoWFactory
	geo        ports.ShopGeoIndex
	policy     services.AccessPolicy
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewUpdateShopCommandHandler creates the handler. geo may be nil.
func NewUpdateShopCommandHandler(
	uowFactory ShopUoWFactory, geo ports.ShopGeoIndex, clock kernel.Clock, logger *slog.Logger,
) UpdateShopCommandHandler {
	return UpdateShopCommandHandler{
		uowFactory: uowFactory,
		geo:        geo,
		policy:     services.NewAccessPolicy(),
		clock:      clock,
		logger:     loggerOrDefault(logger, "update_shop"),
	}
}

// Handle returns the shop as written.
func (h *UpdateShopCommandHandler) Handle(ctx context.Context, cmd UpdateShopCommand) (*shop.Shop, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.RequireShopOwner(cmd.Requester()); err != nil {
		return nil, err
	}

	s, err := mutateShop(ctx, h.uowFactory, h.policy, cmd.Requester(), cmd.ShopID(), func(s *shop.Shop) error {
		return s.Apply(cmd.Patch(), h.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	syncGeoIndex(ctx, h.geo, h.logger, s)
	return s, nil
}

// mutateShop runs mutate on a row-locked shop owned by the requester and
// writes the result, all in one transaction.
func mutateShop(
	ctx context.Context,
	uowFactory ShopUoWFactory,
	policy services.AccessPolicy,
	requester kernel.Requester,
	shopID kernel.UUID,
	mutate func(s *shop.Shop) error,
) (*shop.Shop, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShopRepository()
	s, err := repo.GetForUpdate(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if err = policy.RequireShopOwnership(requester, s); err != nil {
		return nil, err
	}

	if err = mutate(s); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
