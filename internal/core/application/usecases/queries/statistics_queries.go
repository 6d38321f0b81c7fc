package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetShopStatsQueryIsNotConstructed = errors.New(
		"GetShopStatsQuery must be created via NewGetShopStatsQuery constructor",
	)
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetShopStatsQuery reads the lifetime order summary of an owned shop.
type GetShopStatsQuery struct {
	requester kernel.Requester
	shopID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopStatsQuery creates a query for the order statistics of one shop.
func NewGetShopStatsQuery(requester kernel.Requester, shopID kernel.UUID) (GetShopStatsQuery, error) {
	if err := errors.Join(requester.Validate(), shopID.Validate()); err != nil {
		return GetShopStatsQuery{}, err
	}
	return GetShopStatsQuery{requester: requester, shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewGetShopStatsQuery.
// Returns ErrGetShopStatsQueryIsNotConstructed if validation fails.
func (q GetShopStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopStatsQueryIsNotConstructed)
}

// Requester returns who issued the query.
func (q GetShopStatsQuery) Requester() kernel.Requester {
	return q.requester
}

// ShopID returns the shop the query targets.
func (q GetShopStatsQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetDashboardStatsQuery reads the dashboard of an owned shop over a window.
type GetDashboardStatsQuery struct {
	requester kernel.Requester
	shopID    kernel.UUID
	window    services.Window

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery parses window; an empty window selects a week.
func NewGetDashboardStatsQuery(
	requester kernel.Requester, shopID kernel.UUID, window string,
) (GetDashboardStatsQuery, error) {
	w, windowErr := services.WindowFromString(window)
	if err := errors.Join(requester.Validate(), shopID.Validate(), windowErr); err != nil {
		return GetDashboardStatsQuery{}, err
	}
	return GetDashboardStatsQuery{
		requester: requester,
		shopID:    shopID,
		window:    w,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through NewGetDashboardStatsQuery.
// Returns ErrGetDashboardStatsQueryIsNotConstructed if validation fails.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// Requester returns who issued the query.
func (q GetDashboardStatsQuery) Requester() kernel.Requester {
	return q.requester
}

// ShopID returns the shop the query targets.
func (q GetDashboardStatsQuery) ShopID() kernel.UUID {
	return q.shopID
}

// Window returns the reporting window.
func (q GetDashboardStatsQuery) Window() services.Window {
	return q.window
}
