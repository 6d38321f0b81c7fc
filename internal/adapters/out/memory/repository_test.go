package memory_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"laundry/internal/adapters/out/memory"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	store := memory.NewStore()
	s := newShop(t, "Bubbles", -73.98, 40.75)
	require.NoError(t, store.ShopRepository().Add(t.Context(), s))
	o := newOrder(t, kernel.NewUUID(), s.ID(), baseTime)
	repo := store.OrderRepository()
	require.NoError(t, repo.Add(t.Context(), o))

	got, err := repo.Get(t.Context(), o.ID())
	require.NoError(t, err)
	require.NoError(t, got.TransitionTo(order.Accepted, baseTime.Add(time.Minute)))

	again, err := repo.Get(t.Context(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, again.Status())
}

func TestOrderRepository_AddRequiresShop(t *testing.T) {
	repo := memory.NewStore().OrderRepository()

	err := repo.Add(t.Context(), newOrder(t, kernel.NewUUID(), kernel.NewUUID(), baseTime))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_ListOrdering(t *testing.T) {
	store := memory.NewStore()
	s := newShop(t, "Bubbles", -73.98, 40.75)
	require.NoError(t, store.ShopRepository().Add(t.Context(), s))
	repo := store.OrderRepository()
	customerID := kernel.NewUUID()

	older := newOrder(t, customerID, s.ID(), baseTime.Add(-time.Hour))
	newer := newOrder(t, customerID, s.ID(), baseTime)
	require.NoError(t, repo.Add(t.Context(), older))
	require.NoError(t, repo.Add(t.Context(), newer))

	byCustomer, err := repo.ListByCustomer(t.Context(), customerID, order.Filter{})
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)
	assert.Equal(t, newer.ID(), byCustomer[0].ID())

	window, err := repo.ListByShopCreatedBetween(t.Context(), s.ID(), baseTime.Add(-2*time.Hour), baseTime)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, older.ID(), window[0].ID())

	none, err := repo.ListByShop(t.Context(), s.ID(), order.FilterOf(order.Delivered))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOrderRepository_UpdateStatusIsCompareAndSwap(t *testing.T) {
	store := memory.NewStore()
	s := newShop(t, "Bubbles", -73.98, 40.75)
	require.NoError(t, store.ShopRepository().Add(t.Context(), s))
	repo := store.OrderRepository()
	o := newOrder(t, kernel.NewUUID(), s.ID(), baseTime)
	require.NoError(t, repo.Add(t.Context(), o))

	const workers = 32
	var (
		wg        sync.WaitGroup
		wins      atomic.Int32
		conflicts atomic.Int32
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := order.Accepted
			if i%2 == 1 {
				next = order.Cancelled
			}
			err := repo.UpdateStatus(t.Context(), o.ID(), order.Pending, next, baseTime.Add(time.Minute))
			switch {
			case err == nil:
				wins.Add(1)
			case assert.ErrorIs(t, err, errs.ErrConflict):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(workers-1), conflicts.Load())
}

func TestOrderRepository_StatusTotals(t *testing.T) {
	store := memory.NewStore()
	s := newShop(t, "Bubbles", -73.98, 40.75)
	require.NoError(t, store.ShopRepository().Add(t.Context(), s))
	repo := store.OrderRepository()
	for range 3 {
		require.NoError(t, repo.Add(t.Context(), newOrder(t, kernel.NewUUID(), s.ID(), baseTime)))
	}
	done := newOrder(t, kernel.NewUUID(), s.ID(), baseTime)
	require.NoError(t, repo.Add(t.Context(), done))
	require.NoError(t, repo.UpdateStatus(t.Context(), done.ID(), order.Pending, order.Accepted, baseTime))

	totals, err := repo.StatusTotals(t.Context(), s.ID())

	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, order.Pending, totals[0].Status)
	assert.Equal(t, 3, totals[0].Count)
	assert.Equal(t, "75.00", totals[0].Amount.String())
	assert.Equal(t, order.Accepted, totals[1].Status)
}

func TestShopRepository_NameIsUnique(t *testing.T) {
	repo := memory.NewStore().ShopRepository()
	require.NoError(t, repo.Add(t.Context(), newShop(t, "Bubbles", -73.98, 40.75)))

	err := repo.Add(t.Context(), newShop(t, "Bubbles", -73.90, 40.70))

	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestShopRepository_ConcurrentIncrements(t *testing.T) {
	repo := memory.NewStore().ShopRepository()
	s := newShop(t, "Bubbles", -73.98, 40.75)
	require.NoError(t, repo.Add(t.Context(), s))

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.IncrementTotalOrders(t.Context(), s.ID()))
		}()
	}
	wg.Wait()

	got, err := repo.Get(t.Context(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, 100, got.TotalOrders())
}

func TestShopRepository_FindActiveWithinAndListActive(t *testing.T) {
	repo := memory.NewStore().ShopRepository()
	near := newShop(t, "Near", -73.98, 40.76)
	far := newShop(t, "Far", -73.50, 41.20)
	paused := newShop(t, "Paused", -73.98, 40.75)
	maintenance := shop.Maintenance
	require.NoError(t, paused.Apply(shop.Patch{Status: &maintenance}, baseTime))
	for _, s := range []*shop.Shop{near, far, paused} {
		require.NoError(t, repo.Add(t.Context(), s))
	}

	within, err := repo.FindActiveWithin(t.Context(), point(t, -73.98, 40.75), 2)
	require.NoError(t, err)
	require.Len(t, within, 1)
	assert.Equal(t, near.ID(), within[0].ID())

	active, err := repo.ListActive(t.Context())
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Far", active[0].Name())
	assert.Equal(t, "Near", active[1].Name())
}

func TestShopRepository_Reconcile(t *testing.T) {
	store := memory.NewStore()
	shops := store.ShopRepository()
	s := newShop(t, "Bubbles", -73.98, 40.75)
	require.NoError(t, shops.Add(t.Context(), s))
	for range 2 {
		require.NoError(t, store.OrderRepository().Add(t.Context(), newOrder(t, kernel.NewUUID(), s.ID(), baseTime)))
	}

	fixed, err := shops.ReconcileTotalOrders(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	got, err := shops.Get(t.Context(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalOrders())

	fixed, err = shops.ReconcileTotalOrders(t.Context())
	require.NoError(t, err)
	assert.Zero(t, fixed)
}
