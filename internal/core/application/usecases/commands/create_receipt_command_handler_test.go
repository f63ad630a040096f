package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Update(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Get(
	ctx context.Context,
	id kernel.ID,
	mode ports.FetchMode,
) (*receipt.Receipt, error) {
	args := m.Called(ctx, id, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.ID,
	mode ports.FetchMode,
) ([]*receipt.Receipt, error) {
	args := m.Called(ctx, ids, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*receipt.Receipt), args.Error(1)
}

type MockReceiptUoW struct{ mock.Mock }

func (m *MockReceiptUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReceiptUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReceiptUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReceiptUoW) ReceiptRepository() ports.ReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiptRepository)
}

type MockReceiptUoWFactory struct{ mock.Mock }

func (m *MockReceiptUoWFactory) Create() commands.ReceiptUoW {
	args := m.Called()
	return args.Get(0).(commands.ReceiptUoW)
}

// storedReceipt builds a receipt fixture the way the repository would hand it
// back: identity assigned, active, in the given status.
func storedReceipt(t *testing.T, id int64, status receipt.Status) *receipt.Receipt {
	t.Helper()
	line, err := receipt.NewLine(kernel.MustNewID(7), 2, decimal.NewFromInt(150))
	require.NoError(t, err)
	r, err := receipt.RestoreReceipt(kernel.MustNewID(id), status, []receipt.Line{line}, time.Now(), nil)
	require.NoError(t, err)
	return r
}

// deletedReceipt builds a soft-deleted receipt fixture in the given status.
func deletedReceipt(t *testing.T, id int64, status receipt.Status) *receipt.Receipt {
	t.Helper()
	line, err := receipt.NewLine(kernel.MustNewID(7), 2, decimal.NewFromInt(150))
	require.NoError(t, err)
	deletedAt := time.Now()
	r, err := receipt.RestoreReceipt(kernel.MustNewID(id), status, []receipt.Line{line}, time.Now(), &deletedAt)
	require.NoError(t, err)
	return r
}

func TestCreateReceiptCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateReceiptCommand("", testLineInputs())
	require.NoError(t, err)

	repo := new(MockReceiptRepository)
	uow := new(MockReceiptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReceiptRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*receipt.Receipt")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReceiptCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, receipt.StatusWorking, created.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateReceiptCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateReceiptCommand{} // not constructed properly
	factory := new(MockReceiptUoWFactory)

	h := commands.NewCreateReceiptCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewCreateReceiptCommand constructor")
}

func TestCreateReceiptCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateReceiptCommand("", testLineInputs())
	require.NoError(t, err)

	repo := new(MockReceiptRepository)
	uow := new(MockReceiptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReceiptRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*receipt.Receipt")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReceiptCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
