package jobs

import (
	"context"
	"log/slog"

	"serados/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsReportJob periodically logs the aggregate order statistics.
type StatsReportJob struct {
	handler  queries.GetOrderStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatsReportJob creates a job that logs the order rollup on the given
// five-field cron schedule.
func NewStatsReportJob(
	handler queries.GetOrderStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *StatsReportJob {
	return &StatsReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "stats_report_job"),
	}
}

// Start begins the stats report job on its configured schedule.
func (j *StatsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order stats report",
			"total_orders", stats.TotalOrders,
			"total_revenue", stats.TotalRevenue,
			"avg_order_value", stats.AvgOrderValue,
			"status_counts", stats.StatusCounts,
			"city_counts", stats.CityCounts,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the stats report job.
func (j *StatsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}
