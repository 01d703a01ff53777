package cron

import (
	"context"
	"time"

	"github.com/fc-hr/worklog-backend-go/internal/domain/worklog"
)

// WorklogJobs wires the daily punch aggregation into the scheduler.
type WorklogJobs struct {
	worklogService worklog.WorklogService
	interval       time.Duration
}

func NewWorklogJobs(worklogService worklog.WorklogService, interval time.Duration) *WorklogJobs {
	return &WorklogJobs{
		worklogService: worklogService,
		interval:       interval,
	}
}

func (j *WorklogJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("aggregate_daily_worklog", j.interval, j.AggregateToday)
}

// AggregateToday recomputes today's summary partition from today's raw
// punches. Reruns are idempotent, so the short interval only bounds how stale
// the summaries can get.
func (j *WorklogJobs) AggregateToday(ctx context.Context) error {
	return j.worklogService.Aggregate(ctx, time.Now())
}
