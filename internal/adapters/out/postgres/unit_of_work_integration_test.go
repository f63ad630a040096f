package postgres_test

import (
	"context"
	"testing"
	"time"

	"stockflow/internal/adapters/out/postgres"
	"stockflow/internal/adapters/out/postgres/orderrepo"
	"stockflow/internal/adapters/out/postgres/receiptrepo"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the transactional all-or-nothing
// behavior bulk commands rely on.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.LineDTO{},
		&receiptrepo.ReceiptDTO{}, &receiptrepo.LineDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_lines, receipts, receipt_lines RESTART IDENTITY CASCADE").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	line, err := order.NewLine(kernel.MustNewID(7), 2, decimal.NewFromInt(150))
	suite.Require().NoError(err)
	o, err := order.NewOrder([]order.Line{line}, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	first := suite.newOrder()
	second := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.EqualValues(2, count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	first := suite.newOrder()
	second := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, second))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterPartialBatch_LeavesNothingBehind() {
	ctx := context.Background()

	// seed one order outside the transaction
	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.Begin(ctx))
	seeded := suite.newOrder()
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, seeded))
	suite.Require().NoError(seedUow.Commit(ctx))

	// mutate it inside a transaction that is then rolled back
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()
	loaded, err := repo.Get(ctx, seeded.ID(), ports.FetchActiveOnly)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.StatusDeposit50, kernel.NewActorID(), time.Now()))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Rollback(ctx))

	verifyUow := suite.factory.Create()
	stored, err := verifyUow.OrderRepository().Get(ctx, seeded.ID(), ports.FetchActiveOnly)
	suite.Require().NoError(err)
	suite.Equal(order.StatusPending, stored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReceiptRepository_SharesTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	line, err := receipt.NewLine(kernel.MustNewID(3), 10, decimal.NewFromInt(12))
	suite.Require().NoError(err)
	r, err := receipt.NewReceipt([]receipt.Line{line}, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ReceiptRepository().Add(ctx, r))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&receiptrepo.ReceiptDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
