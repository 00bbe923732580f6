// Package jobs provides scheduled background tasks for the café ordering
// system, implemented as cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatsReportJob - periodically logs the aggregate order/revenue rollup so
// operators can watch the order book from the logs without polling the API.
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The report schedule is a standard five-field cron expression supplied by
// configuration. The job is a pure read: it never caches or serves API
// responses, so stats stay recomputed per request.
package jobs
