package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// ExpiredKeyPurger drops idempotency bindings whose TTL has passed.
type ExpiredKeyPurger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// IdempotencyPurgeJob periodically drops expired idempotency bindings.
type IdempotencyPurgeJob struct {
	schedule string
	purger   ExpiredKeyPurger
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewIdempotencyPurgeJob creates the job; schedule is a cron spec with seconds.
func NewIdempotencyPurgeJob(schedule string, purger ExpiredKeyPurger, logger *slog.Logger) *IdempotencyPurgeJob {
	return &IdempotencyPurgeJob{
		schedule: schedule,
		purger:   purger,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "idempotency_purge_job"),
	}
}

// Start registers the purge on the schedule and starts the scheduler.
func (j *IdempotencyPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		purged, err := j.purger.PurgeExpired(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Idempotency purge failed", "error", err)
			return
		}
		if purged > 0 {
			j.logger.DebugContext(ctx, "Expired idempotency keys purged", "count", purged)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Idempotency purge job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *IdempotencyPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Idempotency purge job stopped")
}
