package worklog

import (
	"context"
)

// ClockField selects which side of a punch pair a correction targets.
type ClockField string

const (
	ClockFieldIn  ClockField = "clock_in"
	ClockFieldOut ClockField = "clock_out"
)

// WorklogRepository is the date-partitioned record store. Partitions are
// schemaless day-scoped collections addressed by name; a partition for a date
// with no ingested data simply does not exist.
type WorklogRepository interface {
	// PartitionExists reports whether a partition has been created.
	PartitionExists(ctx context.Context, partition string) (bool, error)

	// ListPartitions enumerates partition names starting with prefix.
	// Ordering is storage-defined and must not be relied on.
	ListPartitions(ctx context.Context, prefix string) ([]string, error)

	// GetRawPunches reads every raw punch record in a raw partition.
	GetRawPunches(ctx context.Context, partition string) ([]RawPunch, error)

	// GetDailySummaries reads every summary record in a summary partition.
	GetDailySummaries(ctx context.Context, partition string) ([]DailySummary, error)

	// ReplaceDailySummaries atomically replaces the full contents of a summary
	// partition, creating the partition if needed.
	ReplaceDailySummaries(ctx context.Context, partition string, summaries []DailySummary) error

	// UpdateRawClock rewrites one clock field on an employee's raw records in
	// a partition. Returns false when no record matched.
	UpdateRawClock(ctx context.Context, partition, employeeID string, field ClockField, value string) (bool, error)
}
