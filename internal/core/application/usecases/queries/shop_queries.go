package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetShopQueryIsNotConstructed = errors.New(
		"GetShopQuery must be created via NewGetShopQuery constructor",
	)
	ErrListActiveShopsQueryIsNotConstructed = errors.New(
		"ListActiveShopsQuery must be created via NewListActiveShopsQuery constructor",
	)
	ErrFindNearbyShopsQueryIsNotConstructed = errors.New(
		"FindNearbyShopsQuery must be created via NewFindNearbyShopsQuery constructor",
	)
)

// GetShopQuery reads one shop. Any authenticated requester may read any shop.
type GetShopQuery struct {
	requester kernel.Requester
	shopID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopQuery creates a query to read one shop.
func NewGetShopQuery(requester kernel.Requester, shopID kernel.UUID) (GetShopQuery, error) {
	if err := errors.Join(requester.Validate(), shopID.Validate()); err != nil {
		return GetShopQuery{}, err
	}
	return GetShopQuery{requester: requester, shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewGetShopQuery.
// Returns ErrGetShopQueryIsNotConstructed if validation fails.
func (q GetShopQuery) Validate() error {
	return q.guard.Validate(ErrGetShopQueryIsNotConstructed)
}

// ShopID returns the shop the query targets.
func (q GetShopQuery) ShopID() kernel.UUID {
	return q.shopID
}

// ListActiveShopsQuery is the public shop listing.
type ListActiveShopsQuery struct {
	guard guard.ConstructorGuard
}

// NewListActiveShopsQuery creates a query for every active shop.
func NewListActiveShopsQuery() ListActiveShopsQuery {
	return ListActiveShopsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through NewListActiveShopsQuery.
// Returns ErrListActiveShopsQueryIsNotConstructed if validation fails.
func (q ListActiveShopsQuery) Validate() error {
	return q.guard.Validate(ErrListActiveShopsQueryIsNotConstructed)
}

// FindNearbyShopsQuery searches active shops around a point.
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(-73.98, 40.75)
//	query, err := NewFindNearbyShopsQuery(origin, 5)
//	if err != nil {
//	    return err
//	}
//	nearby, err := handler.Handle(ctx, query)
//	for _, n := range nearby {
//	    fmt.Printf("%s %.2f km\n", n.Shop.Name(), n.DistanceKm)
//	}
type FindNearbyShopsQuery struct {
	origin   kernel.GeoPoint
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewFindNearbyShopsQuery creates a query for active shops around origin.
//
// Parameters:
//   - origin: point distances are measured from
//   - radiusKm: positive search radius, at most MaxNearbyRadiusKm
//
// Returns:
//   - FindNearbyShopsQuery: the query
//   - error: ValueIsOutOfRangeError for a radius outside the accepted range
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(52.52, 13.405)
//	query, err := queries.NewFindNearbyShopsQuery(origin, 5)
func NewFindNearbyShopsQuery(origin kernel.GeoPoint, radiusKm float64) (FindNearbyShopsQuery, error) {
	if err := errors.Join(origin.Validate(), services.ValidateRadius(radiusKm)); err != nil {
		return FindNearbyShopsQuery{}, err
	}
	return FindNearbyShopsQuery{origin: origin, radiusKm: radiusKm, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewFindNearbyShopsQuery.
// Returns ErrFindNearbyShopsQueryIsNotConstructed if validation fails.
func (q FindNearbyShopsQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyShopsQueryIsNotConstructed)
}

// Origin returns the point distances are measured from.
func (q FindNearbyShopsQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// RadiusKm returns the search radius in kilometres.
func (q FindNearbyShopsQuery) RadiusKm() float64 {
	return q.radiusKm
}
