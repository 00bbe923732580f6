package postgres_test

import (
	"context"
	"testing"
	"time"

	"serados/internal/adapters/out/postgres"
	"serados/internal/adapters/out/postgres/orderrepo"
	"serados/internal/core/domain/model/kernel"
	"serados/internal/core/domain/model/order"
	"serados/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the
// GORM-based unit of work against a real PostgreSQL instance.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MakesChangesVisible() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx)) // deferred cleanup is a no-op

	verifier := suite.factory.Create()
	retrieved, err := verifier.OrderRepository().GetByRef(ctx, testOrder.ID().String())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	verifier := suite.factory.Create()
	_, err := verifier.OrderRepository().GetByRef(ctx, testOrder.ID().String())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUnitsOfWork_AreIsolated() {
	ctx := context.Background()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(first.OrderRepository().Add(ctx, testOrder))

	// A second unit of work must not see the uncommitted order.
	second := suite.factory.Create()
	_, err := second.OrderRepository().GetByRef(ctx, testOrder.ID().String())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(first.Commit(ctx))

	retrieved, err := second.OrderRepository().GetByRef(ctx, testOrder.ID().String())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewItem(1, "Coffee", 220, 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewOrderID(time.Now()),
		"Ram", "9812345678", "Pokhara", "Main St", "15 minutes",
		[]order.Item{item},
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
