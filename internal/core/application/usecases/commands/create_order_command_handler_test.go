package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, r kernel.Requester, shopID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(r, shopID,
		[]commands.ItemInput{{ServiceType: "wash_fold", Count: 3}},
		testNow.Add(24*time.Hour), nil, "no starch", money(t, 37.5))
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := requester(t, kernel.Customer)
	s := newShop(t, kernel.NewUUID())
	cmd := newCreateOrderCommand(t, customer, s.ID())

	orders := new(MockOrderRepository)
	shops := new(MockShopRepository)
	var added *order.Order
	mock.InOrder(
		shops.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		shops.On("IncrementTotalOrders", ctx, s.ID()).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(orders, shops, kernel.FixedClock(testNow), nil)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, added.ID(), id)
	assert.Equal(t, order.Pending, added.Status())
	assert.Equal(t, customer.UserID, added.CustomerID())
	assert.Equal(t, testNow, added.CreatedAt())
	assert.Equal(t, added.CreatedAt(), added.UpdatedAt())
	orders.AssertExpectations(t)
	shops.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ShopOwnerIsForbidden(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, requester(t, kernel.ShopOwner), kernel.NewUUID())

	orders := new(MockOrderRepository)
	shops := new(MockShopRepository)

	h := commands.NewCreateOrderCommandHandler(orders, shops, kernel.FixedClock(testNow), nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnknownShop(t *testing.T) {
	ctx := t.Context()
	shopID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, requester(t, kernel.Customer), shopID)

	orders := new(MockOrderRepository)
	shops := new(MockShopRepository)
	shops.On("Get", ctx, shopID).Return(nil, errs.NewObjectNotFoundError("shopId", shopID.String())).Once()

	h := commands.NewCreateOrderCommandHandler(orders, shops, kernel.FixedClock(testNow), nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	s := newShop(t, kernel.NewUUID())
	cmd := newCreateOrderCommand(t, requester(t, kernel.Customer), s.ID())

	orders := new(MockOrderRepository)
	shops := new(MockShopRepository)
	shops.On("Get", ctx, s.ID()).Return(s, nil).Once()
	orders.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()

	h := commands.NewCreateOrderCommandHandler(orders, shops, kernel.FixedClock(testNow), nil)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	shops.AssertNotCalled(t, "IncrementTotalOrders", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_IncrementFailureKeepsOrder(t *testing.T) {
	ctx := t.Context()
	s := newShop(t, kernel.NewUUID())
	cmd := newCreateOrderCommand(t, requester(t, kernel.Customer), s.ID())

	orders := new(MockOrderRepository)
	shops := new(MockShopRepository)
	shops.On("Get", ctx, s.ID()).Return(s, nil).Once()
	orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	shops.On("IncrementTotalOrders", ctx, s.ID()).Return(errors.New("connection reset")).Once()

	h := commands.NewCreateOrderCommandHandler(orders, shops, kernel.FixedClock(testNow), nil)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NoError(t, id.Validate())
	shops.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderRepository), new(MockShopRepository), nil, nil)
	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
