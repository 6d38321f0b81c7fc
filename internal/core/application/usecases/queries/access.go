package queries

import (
	"context"
	"errors"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ownedShop loads a shop and requires the requester to own it.
func ownedShop(
	ctx context.Context, shops ports.ShopRepository, policy services.AccessPolicy, r kernel.Requester, shopID kernel.UUID,
) (*shop.Shop, error) {
	if err := policy.RequireShopOwner(r); err != nil {
		return nil, err
	}
	s, err := shops.Get(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if err = policy.RequireShopOwnership(r, s); err != nil {
		return nil, err
	}
	return s, nil
}

// authorizeOrderRead applies the order access policy, loading the order's shop for shop owners.
func authorizeOrderRead(
	ctx context.Context, shops ports.ShopRepository, policy services.AccessPolicy, r kernel.Requester, o *order.Order,
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

func loggerOrDefault(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
