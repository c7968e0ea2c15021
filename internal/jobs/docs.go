// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, with a seconds field) and are
// started and stopped together through JobManager.
//
// # Available Jobs
//
//  1. OrderBacklogReportJob - counts orders per status, logs the counts and publishes
//     them as the backlog gauge.
//  2. IdempotencyPurgeJob - drops expired Idempotency-Key bindings from the in-process
//     store. Redis expires keys on its own, so the job is not scheduled in that case.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(schedules, listOrdersHandler, serverMetrics, purger, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick runs as usual. Failed job starts stop any
// jobs already running.
package jobs
