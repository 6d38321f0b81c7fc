package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository.
type OrderRepository struct {
	view
}

// Add stores a copy of the order. The referenced shop must exist.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	c, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	return r.write(ctx, func() error {
		if _, exists := r.order(c.ID()); exists {
			return errs.NewConflictError("orderId")
		}
		if _, exists := r.shop(c.ShopID()); !exists {
			return errs.NewObjectNotFoundError("shopId", c.ShopID().String())
		}
		r.putOrder(c)
		return nil
	})
}

// Get returns a copy of the order, or ObjectNotFoundError.
func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var out *order.Order
	err := r.read(ctx, func() error {
		o, ok := r.order(id)
		if !ok {
			return errs.NewObjectNotFoundError("orderId", id.String())
		}
		var err error
		out, err = cloneOrder(o)
		return err
	})
	return out, err
}

// ListByCustomer returns the orders of a customer, newest first.
func (r *OrderRepository) ListByCustomer(
	ctx context.Context, customerID kernel.UUID, filter order.Filter,
) ([]*order.Order, error) {
	return r.list(ctx, newestFirst, func(o *order.Order) bool {
		return o.CustomerID().IsEqual(customerID) && filter.Matches(o.Status())
	})
}

// ListByShop returns the orders of a shop, newest first.
func (r *OrderRepository) ListByShop(ctx context.Context, shopID kernel.UUID, filter order.Filter) ([]*order.Order, error) {
	return r.list(ctx, newestFirst, func(o *order.Order) bool {
		return o.ShopID().IsEqual(shopID) && filter.Matches(o.Status())
	})
}

// ListByShopCreatedBetween returns the orders created between from and to
// inclusive, oldest first.
func (r *OrderRepository) ListByShopCreatedBetween(
	ctx context.Context, shopID kernel.UUID, from, to time.Time,
) ([]*order.Order, error) {
	return r.list(ctx, oldestFirst, func(o *order.Order) bool {
		return o.ShopID().IsEqual(shopID) && !o.CreatedAt().Before(from) && !o.CreatedAt().After(to)
	})
}

// UpdateStatus swaps the status under the write lock, so of two concurrent
// callers expecting the same current status exactly one succeeds.
func (r *OrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, from, next order.Status, updatedAt time.Time,
) error {
	return r.write(ctx, func() error {
		current, ok := r.order(id)
		if !ok || current.Status() != from {
			return errs.NewConflictErrorWithCause("status",
				fmt.Errorf("order %s is no longer %s", id.String(), from.String()))
		}
		swapped, err := cloneOrderWithStatus(current, next, updatedAt.UTC())
		if err != nil {
			return err
		}
		r.putOrder(swapped)
		return nil
	})
}

// StatusTotals sums order count and total amount per status.
func (r *OrderRepository) StatusTotals(ctx context.Context, shopID kernel.UUID) ([]services.StatusTotal, error) {
	var totals []services.StatusTotal
	err := r.read(ctx, func() error {
		byStatus := make(map[order.Status]*services.StatusTotal)
		for _, o := range r.allOrders() {
			if !o.ShopID().IsEqual(shopID) {
				continue
			}
			t, ok := byStatus[o.Status()]
			if !ok {
				t = &services.StatusTotal{Status: o.Status(), Amount: kernel.ZeroMoney()}
				byStatus[o.Status()] = t
			}
			t.Count++
			t.Amount = t.Amount.Add(o.TotalAmount())
		}
		totals = make([]services.StatusTotal, 0, len(byStatus))
		for _, status := range order.AllStatuses() {
			if t, ok := byStatus[status]; ok {
				totals = append(totals, *t)
			}
		}
		return nil
	})
	return totals, err
}

func (r *OrderRepository) list(
	ctx context.Context, less func(a, b *order.Order) int, keep func(*order.Order) bool,
) ([]*order.Order, error) {
	var out []*order.Order
	err := r.read(ctx, func() error {
		out = make([]*order.Order, 0)
		for _, o := range r.allOrders() {
			if !keep(o) {
				continue
			}
			c, err := cloneOrder(o)
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, less)
	return out, nil
}

func oldestFirst(a, b *order.Order) int {
	if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
		return c
	}
	return compareIDs(a.ID(), b.ID())
}

func newestFirst(a, b *order.Order) int {
	return oldestFirst(b, a)
}

// compareIDs orders identifiers the way postgres orders uuid columns.
func compareIDs(a, b kernel.UUID) int {
	ab, bb := a.Bytes(), b.Bytes()
	return slices.Compare(ab[:], bb[:])
}
