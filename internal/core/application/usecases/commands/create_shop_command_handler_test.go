package commands_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateShopCommand(t *testing.T, r kernel.Requester, drafts ...shop.ServiceDraft) commands.CreateShopCommand {
	t.Helper()
	if len(drafts) == 0 {
		drafts = []shop.ServiceDraft{{ServiceType: "wash_fold", Price: money(t, 10)}}
	}
	cmd, err := commands.NewCreateShopCommand(r, shopProfile(t, "Bubbles"), drafts)
	require.NoError(t, err)
	return cmd
}

func TestCreateShopCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := requester(t, kernel.ShopOwner)
	cmd := newCreateShopCommand(t, owner)

	repo := new(MockShopRepository)
	uow := new(MockShopUoW)
	geo := new(MockGeoIndex)
	var added *shop.Shop
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*shop.Shop")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*shop.Shop) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	geo.On("Put", ctx, mock.Anything, cmd.Profile().Location).Return(nil).Once()

	factory := new(MockShopUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShopCommandHandler(factory, geo, kernel.FixedClock(testNow), nil)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, added.ID(), id)
	assert.Equal(t, owner.UserID, added.OwnerID())
	assert.Equal(t, shop.Active, added.Status())
	assert.Zero(t, added.TotalOrders())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	geo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShopCommandHandler_Handle_CustomerIsForbidden(t *testing.T) {
	factory := new(MockShopUoWFactory)
	h := commands.NewCreateShopCommandHandler(factory, nil, kernel.FixedClock(testNow), nil)

	_, err := h.Handle(t.Context(), newCreateShopCommand(t, requester(t, kernel.Customer)))

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShopCommandHandler_Handle_EmptyCatalog(t *testing.T) {
	cmd, err := commands.NewCreateShopCommand(requester(t, kernel.ShopOwner), shopProfile(t, "Bubbles"), nil)
	require.NoError(t, err)

	factory := new(MockShopUoWFactory)
	h := commands.NewCreateShopCommandHandler(factory, nil, kernel.FixedClock(testNow), nil)
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrInvalidInput)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShopCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShopCommand(t, requester(t, kernel.ShopOwner))

	repo := new(MockShopRepository)
	uow := new(MockShopUoW)
	geo := new(MockGeoIndex)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("name")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockShopUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShopCommandHandler(factory, geo, kernel.FixedClock(testNow), nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	geo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateShopCommandHandler_Handle_GeoIndexFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShopCommand(t, requester(t, kernel.ShopOwner))

	repo := new(MockShopRepository)
	uow := new(MockShopUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShopRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	geo := new(MockGeoIndex)
	geo.On("Put", ctx, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	factory := new(MockShopUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShopCommandHandler(factory, geo, kernel.FixedClock(testNow), nil)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	geo.AssertExpectations(t)
}
