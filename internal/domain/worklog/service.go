package worklog

import (
	"context"
	"time"
)

// WorklogService defines business logic for punch aggregation and statistics
type WorklogService interface {
	// Aggregate recomputes the daily summary partition for a date from its raw
	// punches. A missing raw partition is a no-op. Safe to rerun; the summary
	// partition is fully replaced each time.
	Aggregate(ctx context.Context, date time.Time) error

	// GetByDate returns all raw punch records for a date, empty when the
	// partition does not exist.
	GetByDate(ctx context.Context, date time.Time) ([]RawPunch, error)

	// GetWorkStats merges summary totals and raw per-day history over an
	// inclusive date range into one record per employee.
	GetWorkStats(ctx context.Context, req WorkStatsRequest) ([]WorkStats, error)

	// EditClockIn corrects the clock-in string on a raw record. The affected
	// date's summary stays stale until the next aggregation run.
	EditClockIn(ctx context.Context, req EditClockRequest) (EditClockResponse, error)

	// EditClockOut corrects the clock-out string on a raw record.
	EditClockOut(ctx context.Context, req EditClockRequest) (EditClockResponse, error)
}
