package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shop aggregates.
type ShopRepository interface {
	// Add inserts a new shop. A duplicate name is reported as errs.ConflictError.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Update overwrites the owner-editable state of a shop. totalOrders is not written.
	// A duplicate name is reported as errs.ConflictError.
	Update(ctx context.Context, aggregate *shop.Shop) error

	// Get retrieves a shop by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)

	// GetForUpdate is Get with a row lock held until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shop.Shop, error)

	// GetMany returns the shops among ids that exist, in no particular order.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*shop.Shop, error)

	// ListActive returns every active shop ordered by name.
	ListActive(ctx context.Context) ([]*shop.Shop, error)

	// FindActiveWithin returns active shops whose location is within radiusKm of point.
	// The result is a candidate set; distances are recomputed by the caller.
	FindActiveWithin(ctx context.Context, point kernel.GeoPoint, radiusKm float64) ([]*shop.Shop, error)

	// IncrementTotalOrders atomically adds one to the shop's order counter.
	IncrementTotalOrders(ctx context.Context, id kernel.UUID) error

	// ReconcileTotalOrders rewrites every counter that differs from the actual
	// number of orders referencing the shop, and returns how many were fixed.
	ReconcileTotalOrders(ctx context.Context) (int, error)
}

// ShopGeoIndex is an optional secondary index of active shop locations.
type ShopGeoIndex interface {
	Put(ctx context.Context, id kernel.UUID, point kernel.GeoPoint) error
	Remove(ctx context.Context, id kernel.UUID) error

	// Search returns the ids of indexed shops within radiusKm of point.
	Search(ctx context.Context, point kernel.GeoPoint, radiusKm float64) ([]kernel.UUID, error)

	// Replace drops the index content and indexes points instead.
	Replace(ctx context.Context, points map[kernel.UUID]kernel.GeoPoint) error
}
