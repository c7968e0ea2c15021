package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// BacklogRecorder receives the number of orders currently in a status.
type BacklogRecorder interface {
	SetBacklog(status string, n int)
}

// OrderBacklogReportJob periodically reports how many orders wait in each status.
type OrderBacklogReportJob struct {
	schedule string
	handler  queries.ListOrdersQueryHandler
	recorder BacklogRecorder
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogReportJob creates the job; schedule is a cron spec with seconds.
func NewOrderBacklogReportJob(
	schedule string,
	handler queries.ListOrdersQueryHandler,
	recorder BacklogRecorder,
	logger *slog.Logger,
) *OrderBacklogReportJob {
	return &OrderBacklogReportJob{
		schedule: schedule,
		handler:  handler,
		recorder: recorder,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_report_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
func (j *OrderBacklogReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order backlog report failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog report job started", "schedule", j.schedule)
	return nil
}

// Run takes one backlog snapshot. Every status is reported, including empty ones.
func (j *OrderBacklogReportJob) Run(ctx context.Context) (map[order.Status]int, error) {
	query, err := queries.NewListOrdersQuery("")
	if err != nil {
		return nil, err
	}

	views, err := j.handler.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(order.Statuses()))
	for _, status := range order.Statuses() {
		counts[status] = 0
	}
	for _, view := range views {
		counts[view.Status]++
	}

	attrs := make([]any, 0, 2*len(counts)+2)
	attrs = append(attrs, "total", len(views))
	for _, status := range order.Statuses() {
		j.recorder.SetBacklog(status.String(), counts[status])
		attrs = append(attrs, status.String(), counts[status])
	}
	j.logger.InfoContext(ctx, "Order backlog", attrs...)

	return counts, nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderBacklogReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog report job stopped")
}
