package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/queries"
)

// Schedules holds cron expressions with a leading seconds field.
type Schedules struct {
	BacklogReport    string
	IdempotencyPurge string
}

type job interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  job
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs []namedJob
}

// NewJobManager creates the backlog report job and, when purger is not nil, the
// idempotency purge job.
func NewJobManager(
	schedules Schedules,
	listOrdersHandler queries.ListOrdersQueryHandler,
	recorder BacklogRecorder,
	purger ExpiredKeyPurger,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	jm.jobs = append(jm.jobs, namedJob{
		name: "order backlog report",
		job:  NewOrderBacklogReportJob(schedules.BacklogReport, listOrdersHandler, recorder, logger),
	})
	if purger != nil {
		jm.jobs = append(jm.jobs, namedJob{
			name: "idempotency purge",
			job:  NewIdempotencyPurgeJob(schedules.IdempotencyPurge, purger, logger),
		})
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, nj := range jm.jobs {
		nj.job.Stop()
	}
}

// Len reports how many jobs are managed.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
