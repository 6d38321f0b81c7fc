package memory

import (
	"context"
	"slices"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/errs"
)

// proximitySlackKm matches the postgres driver: candidates are slightly
// over-selected and the caller applies the exact radius.
const proximitySlackKm = 1e-6

// ShopRepository implements ports.ShopRepository.
type ShopRepository struct {
	view
}

// Add stores a copy of the shop and seeds its counter. Names are unique.
func (r *ShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	c, err := cloneShop(aggregate, aggregate.TotalOrders())
	if err != nil {
		return err
	}

	return r.write(ctx, func() error {
		if _, exists := r.shop(c.ID()); exists {
			return errs.NewConflictError("shopId")
		}
		if r.nameTaken(c.Name(), c.ID()) {
			return errs.NewConflictError("name")
		}
		r.putShop(c)
		r.addToCounter(c.ID(), c.TotalOrders())
		return nil
	})
}

// Update replaces the stored shop. The counter is kept as stored.
func (r *ShopRepository) Update(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	c, err := cloneShop(aggregate, 0)
	if err != nil {
		return err
	}

	return r.write(ctx, func() error {
		if _, exists := r.shop(c.ID()); !exists {
			return errs.NewObjectNotFoundError("shopId", c.ID().String())
		}
		if r.nameTaken(c.Name(), c.ID()) {
			return errs.NewConflictError("name")
		}
		r.putShop(c)
		return nil
	})
}

// Get returns a copy of the shop with the current counter.
func (r *ShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	var out *shop.Shop
	err := r.read(ctx, func() error {
		s, ok, err := r.loadShop(id)
		if err != nil {
			return err
		}
		if !ok {
			return errs.NewObjectNotFoundError("shopId", id.String())
		}
		out = s
		return nil
	})
	return out, err
}

// GetForUpdate is Get; a unit of work already excludes every other one.
func (r *ShopRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	return r.Get(ctx, id)
}

// GetMany returns the shops that exist among ids. Missing ids are skipped.
func (r *ShopRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*shop.Shop, error) {
	var out []*shop.Shop
	err := r.read(ctx, func() error {
		out = make([]*shop.Shop, 0, len(ids))
		for _, id := range ids {
			s, ok, err := r.loadShop(id)
			if err != nil {
				return err
			}
			if ok {
				out = append(out, s)
			}
		}
		return nil
	})
	return out, err
}

// ListActive returns the active shops sorted by name.
func (r *ShopRepository) ListActive(ctx context.Context) ([]*shop.Shop, error) {
	out, err := r.filter(ctx, func(s *shop.Shop) bool { return s.IsActive() })
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b *shop.Shop) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out, nil
}

// FindActiveWithin scans every active shop and keeps those within radiusKm.
func (r *ShopRepository) FindActiveWithin(
	ctx context.Context, point kernel.GeoPoint, radiusKm float64,
) ([]*shop.Shop, error) {
	return r.filter(ctx, func(s *shop.Shop) bool {
		if !s.IsActive() {
			return false
		}
		loc := s.Location()
		return kernel.Haversine(point.Lon(), point.Lat(), loc.Lon(), loc.Lat()) <= radiusKm+proximitySlackKm
	})
}

// IncrementTotalOrders bumps the counter of an existing shop.
func (r *ShopRepository) IncrementTotalOrders(ctx context.Context, id kernel.UUID) error {
	return r.write(ctx, func() error {
		if _, exists := r.shop(id); !exists {
			return errs.NewObjectNotFoundError("shopId", id.String())
		}
		r.addToCounter(id, 1)
		return nil
	})
}

// ReconcileTotalOrders resets every counter to the number of stored orders and
// returns how many shops changed.
func (r *ShopRepository) ReconcileTotalOrders(ctx context.Context) (int, error) {
	fixed := 0
	err := r.write(ctx, func() error {
		actual := make(map[kernel.UUID]int)
		for _, o := range r.allOrders() {
			actual[o.ShopID()]++
		}
		for _, s := range r.allShops() {
			if diff := actual[s.ID()] - r.counter(s.ID()); diff != 0 {
				r.addToCounter(s.ID(), diff)
				fixed++
			}
		}
		return nil
	})
	return fixed, err
}

func (r *ShopRepository) nameTaken(name string, self kernel.UUID) bool {
	for _, s := range r.allShops() {
		if s.Name() == name && !s.ID().IsEqual(self) {
			return true
		}
	}
	return false
}

func (r *ShopRepository) filter(ctx context.Context, keep func(*shop.Shop) bool) ([]*shop.Shop, error) {
	var out []*shop.Shop
	err := r.read(ctx, func() error {
		out = make([]*shop.Shop, 0)
		for _, s := range r.allShops() {
			if !keep(s) {
				continue
			}
			c, err := cloneShop(s, r.counter(s.ID()))
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		return nil
	})
	return out, err
}
