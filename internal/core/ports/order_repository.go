// Package ports defines the persistence contracts of the laundry marketplace.
// These interfaces establish contracts between the core and the outbound
// adapters (postgres, memory, redis), so handlers can be tested with mocks.
package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; the only mutation after insert is UpdateStatus.
type OrderRepository interface {
	// Add inserts a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByCustomer returns the customer's orders matching filter,
	// newest first with ties broken by id.
	ListByCustomer(ctx context.Context, customerID kernel.UUID, filter order.Filter) ([]*order.Order, error)

	// ListByShop returns the shop's orders matching filter, in the same order as ListByCustomer.
	ListByShop(ctx context.Context, shopID kernel.UUID, filter order.Filter) ([]*order.Order, error)

	// ListByShopCreatedBetween returns the shop's orders with createdAt in [from, to].
	ListByShopCreatedBetween(ctx context.Context, shopID kernel.UUID, from, to time.Time) ([]*order.Order, error)

	// UpdateStatus is a compare-and-swap: the status is set to next only if it is
	// still from. No other column but updated_at changes.
	//
	// Returns errs.ConflictError when no row matched (the status moved on, or the
	// order vanished).
	UpdateStatus(ctx context.Context, id kernel.UUID, from, next order.Status, updatedAt time.Time) error

	// StatusTotals groups the shop's orders by status, with count and summed amount.
	StatusTotals(ctx context.Context, shopID kernel.UUID) ([]services.StatusTotal, error)
}
