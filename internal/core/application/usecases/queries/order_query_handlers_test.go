package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customer := requester(t, kernel.Customer)
	owner := requester(t, kernel.ShopOwner)
	s := newShop(t, owner.UserID)
	o := newOrder(t, customer.UserID, s.ID(), order.Accepted)

	tests := []struct {
		name    string
		r       kernel.Requester
		wantErr error
	}{
		{name: "customer of the order", r: customer},
		{name: "owner of the shop", r: owner},
		{name: "another customer", r: requester(t, kernel.Customer), wantErr: errs.ErrForbidden},
		{name: "another owner", r: requester(t, kernel.ShopOwner), wantErr: errs.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrderRepository)
			shops := new(MockShopRepository)
			orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			shops.On("Get", ctx, s.ID()).Return(s, nil).Maybe()

			query, err := queries.NewGetOrderQuery(tt.r, o.ID())
			require.NoError(t, err)

			got, err := queries.NewGetOrderQueryHandler(orders, shops).Handle(ctx, query)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, o.ID(), got.ID())
		})
	}
}

func TestGetOrderQueryHandler_Handle_ShopGone(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Pending)
	orders := new(MockOrderRepository)
	shops := new(MockShopRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	shops.On("Get", ctx, o.ShopID()).Return(nil, errs.NewObjectNotFoundError("shopId", o.ShopID())).Once()

	query, err := queries.NewGetOrderQuery(requester(t, kernel.ShopOwner), o.ID())
	require.NoError(t, err)

	_, err = queries.NewGetOrderQueryHandler(orders, shops).Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestListCustomerOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customer := requester(t, kernel.Customer)
	filter, err := order.NewFilter("active", nil)
	require.NoError(t, err)
	o := newOrder(t, customer.UserID, kernel.NewUUID(), order.Pending)

	orders := new(MockOrderRepository)
	orders.On("ListByCustomer", ctx, customer.UserID, filter).Return([]*order.Order{o}, nil).Once()

	query, err := queries.NewListCustomerOrdersQuery(customer, filter)
	require.NoError(t, err)
	got, err := queries.NewListCustomerOrdersQueryHandler(orders).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, got, 1)
	orders.AssertExpectations(t)
}

func TestListCustomerOrdersQueryHandler_Handle_EmptyIsNotNil(t *testing.T) {
	ctx := t.Context()
	customer := requester(t, kernel.Customer)
	orders := new(MockOrderRepository)
	orders.On("ListByCustomer", ctx, customer.UserID, order.Filter{}).Return(nil, nil).Once()

	query, err := queries.NewListCustomerOrdersQuery(customer, order.Filter{})
	require.NoError(t, err)
	got, err := queries.NewListCustomerOrdersQueryHandler(orders).Handle(ctx, query)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCustomerOrdersQueryHandler_Handle_ShopOwnerIsForbidden(t *testing.T) {
	query, err := queries.NewListCustomerOrdersQuery(requester(t, kernel.ShopOwner), order.Filter{})
	require.NoError(t, err)

	_, err = queries.NewListCustomerOrdersQueryHandler(new(MockOrderRepository)).Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestListShopOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	owner := requester(t, kernel.ShopOwner)
	s := newShop(t, owner.UserID)
	filter := order.FilterOf(order.Completed)
	ready := newOrder(t, kernel.NewUUID(), s.ID(), order.Completed)

	orders := new(MockOrderRepository)
	shops := new(MockShopRepository)
	shops.On("Get", ctx, s.ID()).Return(s, nil).Once()
	orders.On("ListByShop", ctx, s.ID(), filter).Return([]*order.Order{ready}, nil).Once()
	orders.On("StatusTotals", ctx, s.ID()).Return([]services.StatusTotal{
		{Status: order.Pending, Count: 2, Amount: money(t, 20)},
		{Status: order.Accepted, Count: 1, Amount: money(t, 5)},
		{Status: order.InProgress, Count: 3, Amount: money(t, 30)},
		{Status: order.Completed, Count: 1, Amount: money(t, 25)},
		{Status: order.Delivered, Count: 4, Amount: money(t, 40)},
		{Status: order.Cancelled, Count: 1, Amount: money(t, 10)},
	}, nil).Once()

	query, err := queries.NewListShopOrdersQuery(owner, s.ID(), filter)
	require.NoError(t, err)
	got, err := queries.NewListShopOrdersQueryHandler(orders, shops).Handle(ctx, query)

	require.NoError(t, err)
	assert.Len(t, got.Orders, 1)
	assert.Equal(t, order.GroupCounts{New: 2, Processing: 4, Ready: 1, History: 5}, got.Counts)
}

func TestListShopOrdersQueryHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	s := newShop(t, kernel.NewUUID())
	orders := new(MockOrderRepository)
	shops := new(MockShopRepository)
	shops.On("Get", ctx, s.ID()).Return(s, nil).Once()

	query, err := queries.NewListShopOrdersQuery(requester(t, kernel.ShopOwner), s.ID(), order.Filter{})
	require.NoError(t, err)
	_, err = queries.NewListShopOrdersQueryHandler(orders, shops).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrForbidden)
	orders.AssertNotCalled(t, "ListByShop", mock.Anything, mock.Anything, mock.Anything)
}

func TestListShopOrdersQueryHandler_Handle_UnknownShop(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	shops := new(MockShopRepository)
	shops.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("shopId", id)).Once()

	query, err := queries.NewListShopOrdersQuery(requester(t, kernel.ShopOwner), id, order.Filter{})
	require.NoError(t, err)
	_, err = queries.NewListShopOrdersQueryHandler(new(MockOrderRepository), shops).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
