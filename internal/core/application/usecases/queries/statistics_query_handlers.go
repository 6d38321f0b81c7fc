package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// GetShopStatsQueryHandler aggregates in the store (grouped by status) and folds
// the totals with StatisticsCalculator.
type GetShopStatsQueryHandler struct {
	orders ports.OrderRepository
	shops  ports.ShopRepository
	policy services.AccessPolicy
	calc   services.StatisticsCalculator
}

// NewGetShopStatsQueryHandler creates the handler.
func NewGetShopStatsQueryHandler(orders ports.OrderRepository, shops ports.ShopRepository) GetShopStatsQueryHandler {
	return GetShopStatsQueryHandler{
		orders: orders,
		shops:  shops,
		policy: services.NewAccessPolicy(),
		calc:   services.NewStatisticsCalculator(),
	}
}

// Handle returns ErrForbidden unless the requester owns the shop.
func (h GetShopStatsQueryHandler) Handle(ctx context.Context, query GetShopStatsQuery) (services.ShopStats, error) {
	if err := query.Validate(); err != nil {
		return services.ShopStats{}, err
	}
	if _, err := ownedShop(ctx, h.shops, h.policy, query.Requester(), query.ShopID()); err != nil {
		return services.ShopStats{}, err
	}

	totals, err := h.orders.StatusTotals(ctx, query.ShopID())
	if err != nil {
		return services.ShopStats{}, err
	}
	return h.calc.ShopStats(totals), nil
}

// GetDashboardStatsQueryHandler aggregates revenue and order counts across the
// shops of the requester.
type GetDashboardStatsQueryHandler struct {
	orders ports.OrderRepository
	shops  ports.ShopRepository
	policy services.AccessPolicy
	calc   services.StatisticsCalculator
	clock  kernel.Clock
}

// NewGetDashboardStatsQueryHandler creates the handler.
func NewGetDashboardStatsQueryHandler(
	orders ports.OrderRepository, shops ports.ShopRepository, clock kernel.Clock,
) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{
		orders: orders,
		shops:  shops,
		policy: services.NewAccessPolicy(),
		calc:   services.NewStatisticsCalculator(),
		clock:  clock,
	}
}

// Handle builds the overview for the window of the query.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context, query GetDashboardStatsQuery,
) (services.DashboardStats, error) {
	if err := query.Validate(); err != nil {
		return services.DashboardStats{}, err
	}
	if _, err := ownedShop(ctx, h.shops, h.policy, query.Requester(), query.ShopID()); err != nil {
		return services.DashboardStats{}, err
	}

	now := h.clock.Now()
	from, to := query.Window().Range(now)
	orders, err := h.orders.ListByShopCreatedBetween(ctx, query.ShopID(), from, to)
	if err != nil {
		return services.DashboardStats{}, err
	}
	return h.calc.Dashboard(orders, query.Window(), now), nil
}
