package commands_test

import (
	"testing"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/ports"
	"stockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ids := []kernel.ID{kernel.MustNewID(1), kernel.MustNewID(2)}
	cmd, err := commands.NewDeleteOrdersCommand(ids)
	require.NoError(t, err)

	pending := storedOrder(t, 1, order.StatusPending)
	cancelled := storedOrder(t, 2, order.StatusCancelled)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByIDs", ctx, ids, ports.FetchActiveOnly).Return([]*order.Order{pending, cancelled}, nil).Once(),
		repo.On("Update", ctx, pending).Return(nil).Once(),
		repo.On("Update", ctx, cancelled).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrdersCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, pending.IsDeleted())
	assert.True(t, cancelled.IsDeleted())
	assert.Equal(t, order.StatusPending, pending.Status()) // deletion never touches status
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteOrdersCommandHandler_Handle_InFlightOrderFailsBatch(t *testing.T) {
	ctx := t.Context()
	ids := []kernel.ID{kernel.MustNewID(1), kernel.MustNewID(2)}
	cmd, err := commands.NewDeleteOrdersCommand(ids)
	require.NoError(t, err)

	pending := storedOrder(t, 1, order.StatusPending)
	delivering := storedOrder(t, 2, order.StatusDelivering)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByIDs", ctx, ids, ports.FetchActiveOnly).Return([]*order.Order{pending, delivering}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrdersCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	assert.False(t, delivering.IsDeleted())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrdersCommandHandler_Handle_AlreadyDeletedIDIsMissing(t *testing.T) {
	ctx := t.Context()
	ids := []kernel.ID{kernel.MustNewID(1), kernel.MustNewID(2)}
	cmd, err := commands.NewDeleteOrdersCommand(ids)
	require.NoError(t, err)

	// id 2 is soft-deleted, so the active view does not return it.
	pending := storedOrder(t, 1, order.StatusPending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByIDs", ctx, ids, ports.FetchActiveOnly).Return([]*order.Order{pending}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrdersCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, pending.IsDeleted())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteOrdersCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	h := commands.NewDeleteOrdersCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewDeleteOrdersCommand constructor")
}
