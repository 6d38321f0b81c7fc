package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/model/ticket"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(
	ctx context.Context, customerID kernel.UUID, filter order.Filter,
) ([]*order.Order, error) {
	args := m.Called(ctx, customerID, filter)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) ListByShop(
	ctx context.Context, shopID kernel.UUID, filter order.Filter,
) ([]*order.Order, error) {
	args := m.Called(ctx, shopID, filter)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) ListByShopCreatedBetween(
	ctx context.Context, shopID kernel.UUID, from, to time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, shopID, from, to)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, from, next order.Status, updatedAt time.Time,
) error {
	args := m.Called(ctx, id, from, next, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) StatusTotals(ctx context.Context, shopID kernel.UUID) ([]services.StatusTotal, error) {
	args := m.Called(ctx, shopID)
	totals, _ := args.Get(0).([]services.StatusTotal)
	return totals, args.Error(1)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Add(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Update(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shop.Shop)
	return s, args.Error(1)
}

func (m *MockShopRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shop.Shop)
	return s, args.Error(1)
}

func (m *MockShopRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*shop.Shop, error) {
	args := m.Called(ctx, ids)
	list, _ := args.Get(0).([]*shop.Shop)
	return list, args.Error(1)
}

func (m *MockShopRepository) ListActive(ctx context.Context) ([]*shop.Shop, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*shop.Shop)
	return list, args.Error(1)
}

func (m *MockShopRepository) FindActiveWithin(
	ctx context.Context, point kernel.GeoPoint, radiusKm float64,
) ([]*shop.Shop, error) {
	args := m.Called(ctx, point, radiusKm)
	list, _ := args.Get(0).([]*shop.Shop)
	return list, args.Error(1)
}

func (m *MockShopRepository) IncrementTotalOrders(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShopRepository) ReconcileTotalOrders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTicketRepository struct{ mock.Mock }

func (m *MockTicketRepository) Add(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*ticket.Ticket)
	return t, args.Error(1)
}

func (m *MockTicketRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*ticket.Ticket, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*ticket.Ticket)
	return list, args.Error(1)
}

type MockGeoIndex struct{ mock.Mock }

func (m *MockGeoIndex) Put(ctx context.Context, id kernel.UUID, point kernel.GeoPoint) error {
	args := m.Called(ctx, id, point)
	return args.Error(0)
}

func (m *MockGeoIndex) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGeoIndex) Search(ctx context.Context, point kernel.GeoPoint, radiusKm float64) ([]kernel.UUID, error) {
	args := m.Called(ctx, point, radiusKm)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

func (m *MockGeoIndex) Replace(ctx context.Context, points map[kernel.UUID]kernel.GeoPoint) error {
	args := m.Called(ctx, points)
	return args.Error(0)
}

func requester(t *testing.T, role kernel.Role) kernel.Requester {
	t.Helper()
	r, err := kernel.NewRequester(kernel.NewUUID(), role)
	require.NoError(t, err)
	return r
}

func money(t *testing.T, v float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(v)
	require.NoError(t, err)
	return m
}

func shopProfile(t *testing.T, name string) shop.Profile {
	t.Helper()
	loc, err := kernel.NewGeoPoint(-73.98, 40.75)
	require.NoError(t, err)
	return shop.Profile{
		Name:            name,
		Address:         kernel.Address{Street: "1 Main St", City: "New York"},
		Location:        loc,
		ServiceRadiusKm: 5,
		Contact:         shop.ContactInfo{Phone: "+1 555 0100"},
	}
}

func newShop(t *testing.T, ownerID kernel.UUID) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop(kernel.NewUUID(), ownerID, shopProfile(t, "Bubbles"),
		[]shop.ServiceDraft{{ServiceType: "wash_fold", Price: money(t, 12.5)}}, testNow)
	require.NoError(t, err)
	return s
}

func newOrder(t *testing.T, customerID, shopID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem("wash_fold", 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, shopID, order.Details{
		Items:       []order.Item{item},
		PickupDate:  testNow.Add(24 * time.Hour),
		TotalAmount: money(t, 25),
	}, status, testNow.Add(-time.Hour), testNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}
