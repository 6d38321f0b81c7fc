package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// CreateShopCommandHandler creates a shop and indexes its location.
type CreateShopCommandHandler struct {
	uowFactory ShopUoWFactory
	geo        ports.ShopGeoIndex
	policy     services.AccessPolicy
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewCreateShopCommandHandler builds the handler. geo may be nil when no geo index is configured.
func NewCreateShopCommandHandler(
	uowFactory ShopUoWFactory, geo ports.ShopGeoIndex, clock kernel.Clock, logger *slog.Logger,
) CreateShopCommandHandler {
	return CreateShopCommandHandler{
		uowFactory: uowFactory,
		geo:        geo,
		policy:     services.NewAccessPolicy(),
		clock:      clock,
		logger:     loggerOrDefault(logger, "create_shop"),
	}
}

// Handle returns the id of the new shop. A name already used by another shop
// yields a ConflictError from the repository.
func (h *CreateShopCommandHandler) Handle(ctx context.Context, cmd CreateShopCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := h.policy.RequireShopOwner(cmd.Requester()); err != nil {
		return kernel.UUID{}, err
	}

	s, err := shop.NewShop(kernel.NewUUID(), cmd.Requester().UserID, cmd.Profile(), cmd.Services(), h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShopRepository().Add(ctx, s); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	syncGeoIndex(ctx, h.geo, h.logger, s)
	return s.ID(), nil
}
