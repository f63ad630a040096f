package orderrepo_test

import (
	"testing"
	"time"

	"stockflow/internal/adapters/out/postgres/orderrepo"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/ports"
	"stockflow/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// newMockedRepository wires the repository to a sqlmock-backed GORM
// connection. Read paths only; writes are covered by the integration suite.
func newMockedRepository(t *testing.T) (*orderrepo.GormOrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return orderrepo.NewGormOrderRepository(db, new(MockAggregateTracker)), dbMock
}

func orderColumns() []string {
	return []string{"id", "status", "last_status_changed_at", "deleted_at", "finished_by"}
}

func lineColumns() []string {
	return []string{"id", "order_id", "product_variant_id", "quantity", "unit_price"}
}

func TestGet_ActiveOrder(t *testing.T) {
	repo, dbMock := newMockedRepository(t)
	now := time.Now()

	dbMock.ExpectQuery(`SELECT \* FROM "orders" WHERE deleted_at IS NULL AND id = \$1`).
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(int64(42), "pending", now, nil, nil))
	dbMock.ExpectQuery(`SELECT \* FROM "order_lines" WHERE "order_lines"\."order_id" = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(lineColumns()).
			AddRow(int64(1), int64(42), int64(7), 2, "150"))

	got, err := repo.Get(t.Context(), kernel.MustNewID(42), ports.FetchActiveOnly)
	require.NoError(t, err)
	assert.Equal(t, kernel.MustNewID(42), got.ID())
	assert.Equal(t, order.StatusPending, got.Status())
	require.Len(t, got.Lines(), 1)
	assert.Equal(t, 2, got.Lines()[0].Quantity())
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, dbMock := newMockedRepository(t)

	dbMock.ExpectQuery(`SELECT \* FROM "orders" WHERE deleted_at IS NULL AND id = \$1`).
		WithArgs(int64(404), 1).
		WillReturnRows(sqlmock.NewRows(orderColumns()))

	_, err := repo.Get(t.Context(), kernel.MustNewID(404), ports.FetchActiveOnly)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGet_DeletedViewFiltersOnDeletedAt(t *testing.T) {
	repo, dbMock := newMockedRepository(t)
	now := time.Now()
	deletedAt := now.Add(-time.Hour)

	dbMock.ExpectQuery(`SELECT \* FROM "orders" WHERE deleted_at IS NOT NULL AND id = \$1`).
		WithArgs(int64(7), 1).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(int64(7), "cancelled", now, deletedAt, nil))
	dbMock.ExpectQuery(`SELECT \* FROM "order_lines" WHERE "order_lines"\."order_id" = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(lineColumns()).
			AddRow(int64(1), int64(7), int64(9), 1, "80"))

	got, err := repo.Get(t.Context(), kernel.MustNewID(7), ports.FetchDeletedOnly)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted())
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetByIDs_ReturnsFoundSubset(t *testing.T) {
	repo, dbMock := newMockedRepository(t)
	now := time.Now()

	// id 3 is absent; the repository reports what it found, completeness is
	// the caller's check.
	dbMock.ExpectQuery(`SELECT \* FROM "orders" WHERE deleted_at IS NULL AND id IN \(\$1,\$2,\$3\) ORDER BY id`).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(int64(1), "pending", now, nil, nil).
			AddRow(int64(2), "delivering", now, nil, nil))
	dbMock.ExpectQuery(`SELECT \* FROM "order_lines" WHERE "order_lines"\."order_id" IN \(\$1,\$2\)`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(lineColumns()).
			AddRow(int64(10), int64(1), int64(7), 2, "150").
			AddRow(int64(11), int64(2), int64(8), 1, "60"))

	ids := []kernel.ID{kernel.MustNewID(1), kernel.MustNewID(2), kernel.MustNewID(3)}
	got, err := repo.GetByIDs(t.Context(), ids, ports.FetchActiveOnly)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, order.StatusPending, got[0].Status())
	assert.Equal(t, order.StatusDelivering, got[1].Status())
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetAllPendingBefore_FiltersByStatusCutoffAndDeletion(t *testing.T) {
	repo, dbMock := newMockedRepository(t)
	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	dbMock.ExpectQuery(`SELECT \* FROM "orders" WHERE \(status = \$1 AND last_status_changed_at < \$2 AND deleted_at IS NULL\) ORDER BY id`).
		WithArgs("pending", cutoff).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(int64(5), "pending", cutoff.Add(-time.Hour), nil, nil))
	dbMock.ExpectQuery(`SELECT \* FROM "order_lines" WHERE "order_lines"\."order_id" = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(lineColumns()).
			AddRow(int64(20), int64(5), int64(7), 3, "40"))

	got, err := repo.GetAllPendingBefore(t.Context(), cutoff)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, kernel.MustNewID(5), got[0].ID())
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGet_ZeroID(t *testing.T) {
	repo, _ := newMockedRepository(t)

	_, err := repo.Get(t.Context(), kernel.ID{}, ports.FetchActiveOnly)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}
