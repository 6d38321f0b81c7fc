package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func money(t *testing.T, v float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(v)
	require.NoError(t, err)
	return m
}

func newShopAt(t *testing.T, ownerID kernel.UUID, name string, lon, lat float64) *shop.Shop {
	t.Helper()
	loc, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	s, err := shop.NewShop(kernel.NewUUID(), ownerID, shop.Profile{
		Name:            name,
		Address:         kernel.Address{Street: "1 Main St", City: "Town"},
		Location:        loc,
		ServiceRadiusKm: 10,
		Contact:         shop.ContactInfo{Email: "shop@example.com"},
	}, []shop.ServiceDraft{{ServiceType: "wash_fold", Price: money(t, 10)}}, testNow)
	require.NoError(t, err)
	return s
}

type itemSpec struct {
	serviceType string
	count       int
}

func restoreOrder(
	t *testing.T, customerID, shopID kernel.UUID, status order.Status, amount float64, createdAt time.Time, items ...itemSpec,
) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []itemSpec{{"wash_fold", 1}}
	}
	lines := make([]order.Item, 0, len(items))
	for _, it := range items {
		item, err := order.NewItem(it.serviceType, it.count)
		require.NoError(t, err)
		lines = append(lines, item)
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, shopID, order.Details{
		Items:       lines,
		PickupDate:  createdAt.Add(24 * time.Hour),
		TotalAmount: money(t, amount),
	}, status, createdAt, createdAt)
	require.NoError(t, err)
	return o
}
