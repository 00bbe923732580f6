package cmd

import (
	"fmt"
	"log/slog"

	serverhttp "serados/internal/adapters/in/http"
	"serados/internal/adapters/out/jsonfile"
	"serados/internal/adapters/out/menufile"
	"serados/internal/adapters/out/postgres"
	"serados/internal/adapters/out/postgres/orderrepo"
	"serados/internal/core/application/usecases/commands"
	"serados/internal/core/application/usecases/queries"
	"serados/internal/core/domain/model/kernel"
	"serados/internal/core/ports"
	"serados/internal/jobs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs for the selected store
// backend. It is the only place that knows which backend is in use; everything
// downstream depends on the ports.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orderRepo   ports.OrderRepository
	uowFactory  ports.UnitOfWorkFactory
	menuCatalog ports.MenuCatalog

	gormDB *gorm.DB
}

// NewCompositionRoot builds the object graph for the configured backend.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{config: config, logger: logger}

	menuCatalog, err := menufile.NewCatalog(config.MenuFile)
	if err != nil {
		return nil, fmt.Errorf("menu catalog: %w", err)
	}
	root.menuCatalog = menuCatalog

	switch config.StoreBackend {
	case StoreBackendPostgres:
		if err = root.initPostgres(); err != nil {
			return nil, err
		}
	case StoreBackendFile, "":
		if err = root.initFileStore(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.StoreBackend)
	}

	return root, nil
}

func (c *CompositionRoot) initFileStore() error {
	store, err := jsonfile.NewStore(c.config.OrdersFile)
	if err != nil {
		return fmt.Errorf("order store: %w", err)
	}

	repo, err := jsonfile.NewOrderRepository(store)
	if err != nil {
		return fmt.Errorf("order repository: %w", err)
	}

	uowFactory, err := jsonfile.NewUnitOfWorkFactory(store)
	if err != nil {
		return fmt.Errorf("unit of work factory: %w", err)
	}

	c.orderRepo = repo
	c.uowFactory = uowFactory
	return nil
}

func (c *CompositionRoot) initPostgres() error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.config.DBHost, c.config.DBPort, c.config.DBUser,
		c.config.DBPassword, c.config.DBName, c.config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	c.gormDB = db
	c.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	return nil
}

// noopTracker satisfies the repository's aggregate tracking outside a unit of
// work, where read-side repositories have nothing to track against.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.OrderID, any) {}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(commands.NewOrderUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(commands.NewOrderUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateHTTPServer() *serverhttp.Server {
	return serverhttp.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		queries.NewGetOrderQueryHandler(c.orderRepo),
		queries.NewListOrdersQueryHandler(c.orderRepo),
		c.CreateGetOrderStatsQueryHandler(),
		queries.NewGetDailyRevenueQueryHandler(c.orderRepo),
		queries.NewExportOrdersQueryHandler(c.orderRepo),
		queries.NewTrackOrderQueryHandler(c.orderRepo),
		queries.NewTrackOrderDetailsQueryHandler(c.orderRepo),
		c.menuCatalog,
	)
}

// CreateJobManager wires the background jobs, or returns nil when no stats
// report schedule is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.config.StatsReportCron == "" {
		return nil
	}
	return jobs.NewJobManager(c.CreateGetOrderStatsQueryHandler(), c.config.StatsReportCron, c.logger)
}

// Close releases backend resources.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}

	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
