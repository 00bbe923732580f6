package orderrepo_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"serados/internal/adapters/out/postgres/orderrepo"
	"serados/internal/core/domain/model/kernel"
	"serados/internal/core/domain/model/order"
	"serados/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.OrderID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior against a real database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsSequence() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Ram", "Pokhara")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Equal(1, testOrder.Seq())
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByRef_BothReferenceForms() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Ram", "Pokhara")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Run("by order id", func() {
		retrieved, err := suite.repository.GetByRef(ctx, testOrder.ID().String())
		suite.Require().NoError(err)
		suite.True(retrieved.IsEqual(testOrder))
		suite.Equal("Ram", retrieved.CustomerName())
		suite.Equal(440.0, retrieved.TotalAmount())
		suite.Equal(order.Received, retrieved.Status())
		suite.Len(retrieved.History(), 1)
	})

	suite.Run("by numeric sequence", func() {
		retrieved, err := suite.repository.GetByRef(ctx, strconv.Itoa(testOrder.Seq()))
		suite.Require().NoError(err)
		suite.True(retrieved.IsEqual(testOrder))
	})

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByRef_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByRef(ctx, "SER1700000000000999")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndHistory() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Ram", "Pokhara")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Preparing, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.GetByRef(ctx, testOrder.ID().String())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrieved.Status())
	suite.Require().Len(retrieved.History(), 2)
	suite.Equal(order.Received, retrieved.History()[0].Status)
	suite.Equal(order.Preparing, retrieved.History()[1].Status)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost := suite.createTestOrder("Ram", "Pokhara")

	err := suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_NewestFirstWithLimit() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderID"), mock.Anything).Times(3)
	first := suite.createTestOrder("Ram", "Pokhara")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	second := suite.createTestOrder("Sita", "Kathmandu")
	suite.Require().NoError(suite.repository.Add(ctx, second))
	third := suite.createTestOrder("Hari", "Pokhara")
	suite.Require().NoError(suite.repository.Add(ctx, third))

	listed, err := suite.repository.List(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 2)
	suite.True(listed[0].IsEqual(third))
	suite.True(listed[1].IsEqual(second))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStats_Rollup() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderID"), mock.Anything).Times(3)

	first := suite.createTestOrder("Ram", "Pokhara")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder("Sita", "Kathmandu")
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(second.ChangeStatus(order.Ready, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, second))

	stats, err := suite.repository.Stats(ctx)
	suite.Require().NoError(err)

	suite.Equal(2, stats.TotalOrders)
	suite.Equal(880.0, stats.TotalRevenue)
	suite.Equal(440.0, stats.AvgOrderValue)
	suite.Equal(map[string]int{"received": 1, "ready": 1}, stats.StatusCounts)
	suite.Equal(map[string]int{"Pokhara": 1, "Kathmandu": 1}, stats.CityCounts)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStats_EmptyStore() {
	stats, err := suite.repository.Stats(context.Background())
	suite.Require().NoError(err)

	suite.Zero(stats.TotalOrders)
	suite.Zero(stats.TotalRevenue)
	suite.Zero(stats.AvgOrderValue)
	suite.Empty(stats.StatusCounts)
	suite.Empty(stats.CityCounts)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDailyRevenue_NewestDayFirst() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderID"), mock.Anything).Times(3)

	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderAt("Ram", "Pokhara", yesterday)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderAt("Sita", "Pokhara", today)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrderAt("Hari", "Pokhara", today)))

	rollup, err := suite.repository.DailyRevenue(ctx, 30)
	suite.Require().NoError(err)
	suite.Require().Len(rollup, 2)

	suite.Equal("2026-08-30", rollup[0].Day)
	suite.Equal(2, rollup[0].Orders)
	suite.Equal(880.0, rollup[0].Revenue)

	suite.Equal("2026-08-29", rollup[1].Day)
	suite.Equal(1, rollup[1].Orders)
	suite.Equal(440.0, rollup[1].Revenue)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(customerName, city string) *order.Order {
	return suite.createTestOrderAt(customerName, city, time.Now())
}

// createTestOrderAt creates a test order with the given order date.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderAt(
	customerName, city string, orderDate time.Time,
) *order.Order {
	item, err := order.NewItem(1, "Coffee", 220, 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewOrderID(orderDate),
		customerName, "9812345678", city, "Main St", "15 minutes",
		[]order.Item{item},
		orderDate,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
