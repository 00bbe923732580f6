package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"serados/internal/core/domain/model/kernel"
	"serados/internal/core/domain/model/order"
	"serados/internal/core/ports"
	"serados/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates modified
// within the owning unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database and assigns the generated numeric
// sequence back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0 // let the database assign the sequence
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("add order", err)
	}

	if err := aggregate.AssignSeq(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ?", dto.OrderID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreFailureError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.OrderID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByRef retrieves an order by customer-facing identifier or numeric
// sequence, both supplied in string form.
func (r *GormOrderRepository) GetByRef(ctx context.Context, ref string) (*order.Order, error) {
	query := r.db.WithContext(ctx)
	if seq, err := strconv.Atoi(ref); err == nil {
		query = query.Where("id = ?", seq)
	} else {
		query = query.Where("order_id = ?", ref)
	}

	var dto OrderDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", ref)
		}
		return nil, errs.NewStoreFailureError("get order", err)
	}

	return toDomain(dto)
}

// List retrieves up to limit orders, most recent first.
func (r *GormOrderRepository) List(ctx context.Context, limit int) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreFailureError("list orders", err)
	}

	aggregates := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

// Stats computes the order/revenue rollup with aggregate queries; the order
// book never travels to the application just to be counted.
func (r *GormOrderRepository) Stats(ctx context.Context) (ports.OrderStats, error) {
	stats := ports.OrderStats{
		StatusCounts: map[string]int{},
		CityCounts:   map[string]int{},
	}

	var totals struct {
		TotalOrders  int
		TotalRevenue float64
	}
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&totals).Error
	if err != nil {
		return ports.OrderStats{}, errs.NewStoreFailureError("compute order totals", err)
	}

	stats.TotalOrders = totals.TotalOrders
	stats.TotalRevenue = totals.TotalRevenue
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	var statusRows []struct {
		Status string
		Count  int
	}
	err = r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return ports.OrderStats{}, errs.NewStoreFailureError("compute status counts", err)
	}
	for _, row := range statusRows {
		stats.StatusCounts[row.Status] = row.Count
	}

	var cityRows []struct {
		City  string
		Count int
	}
	err = r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("city, COUNT(*) AS count").
		Group("city").
		Scan(&cityRows).Error
	if err != nil {
		return ports.OrderStats{}, errs.NewStoreFailureError("compute city counts", err)
	}
	for _, row := range cityRows {
		stats.CityCounts[row.City] = row.Count
	}

	return stats, nil
}

// DailyRevenue computes per-day revenue rollups, newest day first.
func (r *GormOrderRepository) DailyRevenue(ctx context.Context, limit int) ([]ports.DailyRevenue, error) {
	query := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("TO_CHAR(order_date, 'YYYY-MM-DD') AS day, COUNT(*) AS orders, SUM(total_amount) AS revenue").
		Group("day").
		Order("day DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rollup []ports.DailyRevenue
	if err := query.Scan(&rollup).Error; err != nil {
		return nil, errs.NewStoreFailureError("compute daily revenue", err)
	}

	return rollup, nil
}
