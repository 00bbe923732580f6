package jsonfile

import (
	"context"
	"sort"
	"strconv"

	"serados/internal/core/domain/model/order"
	"serados/internal/core/ports"
	"serados/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the flat-file store.
//
// A repository bound to a unit of work operates on the transaction's staged
// order book; a standalone repository takes the store mutex per call and
// rewrites the file immediately on mutation. Both paths see a consistent
// snapshot of the order book for the duration of one operation.
type OrderRepository struct {
	store *Store
	uow   *UnitOfWork
}

// NewOrderRepository creates a standalone repository over the store.
// Each call is its own critical section.
func NewOrderRepository(store *Store) (*OrderRepository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &OrderRepository{store: store}, nil
}

// begin takes the order book for the duration of one operation and returns it
// with a release function. Inside a transaction the staged order book is
// returned and release is a no-op; the unit of work owns the mutex.
func (r *OrderRepository) begin() ([]orderRecord, func(), error) {
	if r.uow != nil {
		if !r.uow.active {
			return nil, nil, errs.NewStoreFailureError("use transaction", errNoActiveTx)
		}
		return r.uow.records, func() {}, nil
	}

	r.store.mu.Lock()
	records, err := r.store.load()
	if err != nil {
		r.store.mu.Unlock()
		return nil, nil, err
	}
	return records, r.store.mu.Unlock, nil
}

// stage records the mutated order book. Inside a transaction the records stay
// staged until Commit; standalone they are written to the file immediately.
func (r *OrderRepository) stage(records []orderRecord) error {
	if r.uow != nil {
		r.uow.records = records
		return nil
	}
	return r.store.save(records)
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	records, release, err := r.begin()
	if err != nil {
		return err
	}
	defer release()

	nextSeq := 0
	for _, record := range records {
		if record.OrderID == aggregate.ID().String() {
			return errs.NewValueIsInvalidError("orderId already exists")
		}
		if record.ID > nextSeq {
			nextSeq = record.ID
		}
	}

	if err = aggregate.AssignSeq(nextSeq + 1); err != nil {
		return err
	}

	return r.stage(append(records, recordFromDomain(aggregate)))
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	records, release, err := r.begin()
	if err != nil {
		return err
	}
	defer release()

	for i, record := range records {
		if record.OrderID == aggregate.ID().String() {
			updated := recordFromDomain(aggregate)
			updated.ID = record.ID
			records[i] = updated
			return r.stage(records)
		}
	}

	return errs.NewObjectNotFoundError("order", aggregate.ID().String())
}

func (r *OrderRepository) GetByRef(_ context.Context, ref string) (*order.Order, error) {
	records, release, err := r.begin()
	if err != nil {
		return nil, err
	}
	defer release()

	for _, record := range records {
		if record.OrderID == ref || strconv.Itoa(record.ID) == ref {
			return recordToDomain(record)
		}
	}

	return nil, errs.NewObjectNotFoundError("order", ref)
}

func (r *OrderRepository) List(_ context.Context, limit int) ([]*order.Order, error) {
	records, release, err := r.begin()
	if err != nil {
		return nil, err
	}
	defer release()

	sorted := append([]orderRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	aggregates := make([]*order.Order, 0, len(sorted))
	for _, record := range sorted {
		aggregate, err := recordToDomain(record)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

func (r *OrderRepository) Stats(_ context.Context) (ports.OrderStats, error) {
	records, release, err := r.begin()
	if err != nil {
		return ports.OrderStats{}, err
	}
	defer release()

	stats := ports.OrderStats{
		StatusCounts: map[string]int{},
		CityCounts:   map[string]int{},
	}

	for _, record := range records {
		stats.TotalOrders++
		stats.TotalRevenue += record.TotalAmount
		stats.StatusCounts[record.Status]++
		stats.CityCounts[record.City]++
	}

	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	return stats, nil
}

func (r *OrderRepository) DailyRevenue(_ context.Context, limit int) ([]ports.DailyRevenue, error) {
	records, release, err := r.begin()
	if err != nil {
		return nil, err
	}
	defer release()

	byDay := map[string]*ports.DailyRevenue{}
	for _, record := range records {
		day := record.OrderDate.Format("2006-01-02")
		row, ok := byDay[day]
		if !ok {
			row = &ports.DailyRevenue{Day: day}
			byDay[day] = row
		}
		row.Orders++
		row.Revenue += record.TotalAmount
	}

	rollup := make([]ports.DailyRevenue, 0, len(byDay))
	for _, row := range byDay {
		rollup = append(rollup, *row)
	}

	sort.Slice(rollup, func(i, j int) bool {
		return rollup[i].Day > rollup[j].Day
	})

	if limit > 0 && limit < len(rollup) {
		rollup = rollup[:limit]
	}

	return rollup, nil
}
