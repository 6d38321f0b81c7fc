package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/ports"
)

// syncGeoIndex mirrors the shop's discoverability into the optional geo index.
// Failures are logged; the shop write is already committed and the
// reconciliation job rebuilds the index.
func syncGeoIndex(ctx context.Context, geo ports.ShopGeoIndex, logger *slog.Logger, s *shop.Shop) {
	if geo == nil {
		return
	}

	var err error
	if s.IsActive() {
		err = geo.Put(ctx, s.ID(), s.Location())
	} else {
		err = geo.Remove(ctx, s.ID())
	}
	if err != nil {
		logger.WarnContext(ctx, "geo index sync failed", "shop_id", s.ID().String(), "error", err)
	}
}

func loggerOrDefault(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
