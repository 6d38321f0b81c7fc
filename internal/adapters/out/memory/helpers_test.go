package memory_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func money(t *testing.T, v float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(v)
	require.NoError(t, err)
	return m
}

func point(t *testing.T, lon, lat float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	return p
}

func profile(t *testing.T, name string, lon, lat float64) shop.Profile {
	t.Helper()
	return shop.Profile{
		Name:            name,
		Address:         kernel.Address{Street: "1 Main St", City: "New York"},
		Location:        point(t, lon, lat),
		ServiceRadiusKm: 5,
		Contact:         shop.ContactInfo{Phone: "+1 555 0100"},
	}
}

func newShop(t *testing.T, name string, lon, lat float64) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop(kernel.NewUUID(), kernel.NewUUID(), profile(t, name, lon, lat),
		[]shop.ServiceDraft{{ServiceType: "wash_fold", Price: money(t, 12.5)}}, baseTime)
	require.NoError(t, err)
	return s
}

func newOrder(t *testing.T, customerID, shopID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := order.NewItem("wash_fold", 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, shopID, order.Details{
		Items:       []order.Item{item},
		PickupDate:  createdAt.Add(24 * time.Hour),
		TotalAmount: money(t, 25),
	}, createdAt)
	require.NoError(t, err)
	return o
}
