package memory_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/memory"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitPublishesStagedWrites(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	s := newShop(t, "Bubbles", -73.98, 40.75)

	uow := factory.Create()
	require.NoError(t, uow.Begin(t.Context()))
	require.NoError(t, uow.ShopRepository().Add(t.Context(), s))

	_, err := uow.ShopRepository().Get(t.Context(), s.ID())
	require.NoError(t, err, "staged writes are visible inside the unit of work")
	_, err = store.ShopRepository().Get(t.Context(), s.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound, "staged writes are invisible outside")

	require.NoError(t, uow.Commit(t.Context()))

	_, err = store.ShopRepository().Get(t.Context(), s.ID())
	require.NoError(t, err)
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()
	s := newShop(t, "Bubbles", -73.98, 40.75)

	require.NoError(t, uow.Begin(t.Context()))
	require.NoError(t, uow.ShopRepository().Add(t.Context(), s))
	require.NoError(t, uow.Rollback(t.Context()))

	_, err := store.ShopRepository().Get(t.Context(), s.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, uow.Rollback(t.Context()), memory.ErrNoTransaction)
	require.ErrorIs(t, uow.Commit(t.Context()), memory.ErrNoTransaction)
}

func TestUnitOfWork_UpdateKeepsConcurrentCounter(t *testing.T) {
	store := memory.NewStore()
	s := newShop(t, "Bubbles", -73.98, 40.75)
	require.NoError(t, store.ShopRepository().Add(t.Context(), s))

	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(t.Context()))
	locked, err := uow.ShopRepository().GetForUpdate(t.Context(), s.ID())
	require.NoError(t, err)

	require.NoError(t, store.ShopRepository().IncrementTotalOrders(t.Context(), s.ID()))

	name := "Bubbles Deluxe"
	require.NoError(t, locked.Apply(shop.Patch{Name: &name}, baseTime.Add(time.Hour)))
	require.NoError(t, uow.ShopRepository().Update(t.Context(), locked))
	require.NoError(t, uow.Commit(t.Context()))

	got, err := store.ShopRepository().Get(t.Context(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, "Bubbles Deluxe", got.Name())
	assert.Equal(t, 1, got.TotalOrders())
}

func TestUnitOfWork_BeginWaitsForOpenUnit(t *testing.T) {
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	first := factory.Create()
	require.NoError(t, first.Begin(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	second := factory.Create()
	require.ErrorIs(t, second.Begin(ctx), context.DeadlineExceeded)

	require.NoError(t, first.Commit(t.Context()))
	require.NoError(t, second.Begin(t.Context()))
	require.NoError(t, second.Rollback(t.Context()))
}
