package worklog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Every calendar day maps to two storage partitions: one holding raw punches
// and one holding the derived daily summaries. The names below are a durable
// contract with already-stored data; zero-padding and field order must not
// change.
const (
	RawPartitionPrefix     = "raw_log_"
	SummaryPartitionPrefix = "log_"
)

// RawPartitionName returns the raw punch partition for a date: raw_log_DD_MM_YYYY.
func RawPartitionName(date time.Time) string {
	return fmt.Sprintf("%s%02d_%02d_%04d", RawPartitionPrefix, date.Day(), int(date.Month()), date.Year())
}

// SummaryPartitionName returns the daily summary partition for a date: log_DD_MM_YYYY.
func SummaryPartitionName(date time.Time) string {
	return fmt.Sprintf("%s%02d_%02d_%04d", SummaryPartitionPrefix, date.Day(), int(date.Month()), date.Year())
}

// DateFromRawPartitionName parses raw_log_DD_MM_YYYY back into a date.
// Names that do not match exactly (wrong token count, bad padding, impossible
// dates) report ok=false so range scans skip unrelated partitions instead of
// failing on them.
func DateFromRawPartitionName(name string) (time.Time, bool) {
	tokens := strings.Split(name, "_")
	if len(tokens) != 5 || tokens[0] != "raw" || tokens[1] != "log" {
		return time.Time{}, false
	}
	return dateFromTokens(tokens[2], tokens[3], tokens[4])
}

// DateFromSummaryPartitionName parses log_DD_MM_YYYY back into a date.
func DateFromSummaryPartitionName(name string) (time.Time, bool) {
	tokens := strings.Split(name, "_")
	if len(tokens) != 4 || tokens[0] != "log" {
		return time.Time{}, false
	}
	return dateFromTokens(tokens[1], tokens[2], tokens[3])
}

func dateFromTokens(dd, mm, yyyy string) (time.Time, bool) {
	if len(dd) != 2 || len(mm) != 2 || len(yyyy) != 4 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dd)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(mm)
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yyyy)
	if err != nil {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32_13_2024 would roll over), so a
	// round-trip mismatch means the tokens were not a real calendar date.
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, false
	}
	return date, true
}
