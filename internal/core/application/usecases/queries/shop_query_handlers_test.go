package queries_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shopAt(t *testing.T, name string, lon, lat float64) *shop.Shop {
	t.Helper()
	loc, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	profile := shopProfile(t, name)
	profile.Location = loc
	s, err := shop.NewShop(kernel.NewUUID(), kernel.NewUUID(), profile,
		[]shop.ServiceDraft{{ServiceType: "wash_fold", Price: money(t, 10)}}, testNow)
	require.NoError(t, err)
	return s
}

func TestGetShopQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := newShop(t, kernel.NewUUID())
	shops := new(MockShopRepository)
	shops.On("Get", ctx, s.ID()).Return(s, nil).Once()

	query, err := queries.NewGetShopQuery(requester(t, kernel.Customer), s.ID())
	require.NoError(t, err)
	got, err := queries.NewGetShopQueryHandler(shops).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestListActiveShopsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	shops := new(MockShopRepository)
	shops.On("ListActive", ctx).Return(nil, nil).Once()

	got, err := queries.NewListActiveShopsQueryHandler(shops).Handle(ctx, queries.NewListActiveShopsQuery())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListActiveShopsQueryHandler_Handle_NotConstructed(t *testing.T) {
	_, err := queries.NewListActiveShopsQueryHandler(new(MockShopRepository)).
		Handle(t.Context(), queries.ListActiveShopsQuery{})
	require.ErrorIs(t, err, queries.ErrListActiveShopsQueryIsNotConstructed)
}

func TestNewFindNearbyShopsQuery_RejectsRadius(t *testing.T) {
	origin, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)

	for _, radius := range []float64{0, -1} {
		_, err = queries.NewFindNearbyShopsQuery(origin, radius)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	}
}

func TestFindNearbyShopsQueryHandler_Handle_StoreProximity(t *testing.T) {
	ctx := t.Context()
	origin, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	near := shopAt(t, "Near", 0.01, 0)  // ~1.11 km
	far := shopAt(t, "Far", 0.03, 0)    // ~3.34 km
	outside := shopAt(t, "Out", 0.1, 0) // ~11.1 km, a loose candidate

	shops := new(MockShopRepository)
	shops.On("FindActiveWithin", ctx, origin, 5.0).Return([]*shop.Shop{far, outside, near}, nil).Once()

	query, err := queries.NewFindNearbyShopsQuery(origin, 5)
	require.NoError(t, err)
	got, err := queries.NewFindNearbyShopsQueryHandler(shops, nil, nil).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Near", got[0].Shop.Name())
	assert.Equal(t, "Far", got[1].Shop.Name())
	assert.InDelta(t, 1.1119, got[0].DistanceKm, 1e-3)
	assert.LessOrEqual(t, got[0].DistanceKm, got[1].DistanceKm)
}

func TestFindNearbyShopsQueryHandler_Handle_GeoIndex(t *testing.T) {
	ctx := t.Context()
	origin, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	near := shopAt(t, "Near", 0, 0.01)

	shops := new(MockShopRepository)
	geo := new(MockGeoIndex)
	geo.On("Search", ctx, origin, 2.0).Return([]kernel.UUID{near.ID()}, nil).Once()
	shops.On("GetMany", ctx, []kernel.UUID{near.ID()}).Return([]*shop.Shop{near}, nil).Once()

	query, err := queries.NewFindNearbyShopsQuery(origin, 2)
	require.NoError(t, err)
	got, err := queries.NewFindNearbyShopsQueryHandler(shops, geo, nil).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, got, 1)
	shops.AssertNotCalled(t, "FindActiveWithin", mock.Anything, mock.Anything, mock.Anything)
}

func TestFindNearbyShopsQueryHandler_Handle_GeoIndexFailureFallsBack(t *testing.T) {
	ctx := t.Context()
	origin, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	near := shopAt(t, "Near", 0, 0.01)

	shops := new(MockShopRepository)
	geo := new(MockGeoIndex)
	geo.On("Search", ctx, origin, 2.0).Return(nil, errors.New("redis down")).Once()
	shops.On("FindActiveWithin", ctx, origin, 2.0).Return([]*shop.Shop{near}, nil).Once()

	query, err := queries.NewFindNearbyShopsQuery(origin, 2)
	require.NoError(t, err)
	got, err := queries.NewFindNearbyShopsQueryHandler(shops, geo, nil).Handle(ctx, query)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	shops.AssertExpectations(t)
}

func TestListShopServicesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := newShop(t, kernel.NewUUID())
	shops := new(MockShopRepository)
	shops.On("Get", ctx, s.ID()).Return(s, nil).Once()

	query, err := queries.NewListShopServicesQuery(requester(t, kernel.Customer), s.ID())
	require.NoError(t, err)
	got, err := queries.NewListShopServicesQueryHandler(shops).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "wash_fold", got[0].ServiceType())
}
