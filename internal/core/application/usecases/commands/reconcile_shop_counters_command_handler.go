package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
)

// ReconcileResult reports what a reconciliation run repaired.
type ReconcileResult struct {
	CountersFixed int
	ShopsIndexed  int
}

// ReconcileShopCountersCommandHandler repairs drift left by best-effort writes:
// shop order counters whose increment failed, and a geo index that missed a sync.
type ReconcileShopCountersCommandHandler struct {
	shops  ports.ShopRepository
	geo    ports.ShopGeoIndex
	logger *slog.Logger
}

// NewReconcileShopCountersCommandHandler creates the handler. geo may be nil,
// in which case only the counters are repaired.
func NewReconcileShopCountersCommandHandler(
	shops ports.ShopRepository, geo ports.ShopGeoIndex, logger *slog.Logger,
) ReconcileShopCountersCommandHandler {
	return ReconcileShopCountersCommandHandler{
		shops:  shops,
		geo:    geo,
		logger: loggerOrDefault(logger, "reconcile_shop_counters"),
	}
}

// Handle recomputes every shop counter from the orders table and, when a geo
// index is configured, rebuilds it from the active shops.
func (h *ReconcileShopCountersCommandHandler) Handle(ctx context.Context) (ReconcileResult, error) {
	fixed, err := h.shops.ReconcileTotalOrders(ctx)
	if err != nil {
		return ReconcileResult{}, err
	}
	if fixed > 0 {
		h.logger.InfoContext(ctx, "shop counters repaired", "count", fixed)
	}

	result := ReconcileResult{CountersFixed: fixed}
	if h.geo == nil {
		return result, nil
	}

	active, err := h.shops.ListActive(ctx)
	if err != nil {
		return result, err
	}
	points := make(map[kernel.UUID]kernel.GeoPoint, len(active))
	for _, s := range active {
		points[s.ID()] = s.Location()
	}
	if err = h.geo.Replace(ctx, points); err != nil {
		return result, err
	}
	result.ShopsIndexed = len(points)

	return result, nil
}
