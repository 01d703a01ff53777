package worklog

import (
	"time"
)

const (
	// MaxDailyHours caps an employee's summarized hours for a single day.
	MaxDailyHours = 10.0
	// CompletedThresholdHours is the minimum capped total for a day to count as completed.
	CompletedThresholdHours = 8.0
)

// RawPunch is one ingested clock-in/clock-out pair for an employee on one day.
// Records are written by the upload pipeline and are read-only here, except
// for manual clock corrections.
type RawPunch struct {
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	ClockIn    string    `json:"clockIn"`  // "HH:MM:SS"
	ClockOut   string    `json:"clockOut"` // "HH:MM:SS"
	UploadDate time.Time `json:"uploadDate"`
	SourceFile string    `json:"sourceFile"`
}

// DailySummary is the aggregated result for one employee on one day.
// At most one summary exists per employee per partition; the aggregation job
// replaces the whole partition on every run.
type DailySummary struct {
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	WorkHours  float64   `json:"workHours"` // capped at MaxDailyHours
	Completed  bool      `json:"completed"` // WorkHours >= CompletedThresholdHours
	UploadDate time.Time `json:"uploadDate"`
	SourceFile string    `json:"sourceFile"`
}

// LogEntry is one per-day line of an employee's work history, recomputed on
// the fly from raw punches. Hours here are not capped; the cap only applies
// when the aggregation job writes summaries.
type LogEntry struct {
	Date      string  `json:"date"` // "YYYY-MM-DD"
	ClockIn   string  `json:"clockIn"`
	ClockOut  string  `json:"clockOut"`
	WorkHours float64 `json:"workHours"`
	Completed bool    `json:"completed"`
}

// WorkStats is the merged per-employee view over a date range. DaysWorked and
// TotalWorkHours come exclusively from summary partitions; LogHistory comes
// exclusively from raw partitions.
type WorkStats struct {
	EmployeeID     string     `json:"employeeId"`
	Name           string     `json:"name"`
	DaysWorked     int        `json:"daysWorked"`
	TotalWorkHours float64    `json:"totalWorkHours"`
	LogHistory     []LogEntry `json:"logHistory"`
}
