package services_test

import (
	"testing"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/services"
	"stockflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	line, err := order.NewLine(kernel.MustNewID(1), 1, decimal.NewFromInt(10))
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.MustNewID(id), status, []order.Line{line}, time.Now(), nil, nil)
	require.NoError(t, err)
	return o
}

func TestVerifyBatchComplete(t *testing.T) {
	t.Run("all requested ids loaded", func(t *testing.T) {
		requested := []kernel.ID{kernel.MustNewID(1), kernel.MustNewID(2)}
		loaded := []*order.Order{
			makeOrder(t, 1, order.StatusPending),
			makeOrder(t, 2, order.StatusPending),
		}

		require.NoError(t, services.VerifyBatchComplete(requested, loaded))
	})

	t.Run("missing ids are named in the error", func(t *testing.T) {
		requested := []kernel.ID{kernel.MustNewID(1), kernel.MustNewID(2), kernel.MustNewID(3)}
		loaded := []*order.Order{makeOrder(t, 2, order.StatusPending)}

		err := services.VerifyBatchComplete(requested, loaded)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "1")
		assert.Contains(t, err.Error(), "3")
	})

	t.Run("empty load with non-empty request fails", func(t *testing.T) {
		requested := []kernel.ID{kernel.MustNewID(9)}

		err := services.VerifyBatchComplete(requested, []*order.Order{})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGuardEach(t *testing.T) {
	now := time.Now()

	t.Run("applies the guard to every subject", func(t *testing.T) {
		subjects := []*order.Order{
			makeOrder(t, 1, order.StatusPending),
			makeOrder(t, 2, order.StatusCancelled),
		}

		err := services.GuardEach(subjects, func(o *order.Order) error {
			return o.Delete(now)
		})

		require.NoError(t, err)
		for _, o := range subjects {
			assert.True(t, o.IsDeleted())
		}
	})

	t.Run("stops at the first rejection", func(t *testing.T) {
		subjects := []*order.Order{
			makeOrder(t, 1, order.StatusPending),
			makeOrder(t, 2, order.StatusDelivering), // blocks deletion
			makeOrder(t, 3, order.StatusPending),
		}

		err := services.GuardEach(subjects, func(o *order.Order) error {
			return o.Delete(now)
		})

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.False(t, subjects[2].IsDeleted(), "guard must stop before later subjects")
	})
}
