package clock

import (
	"errors"
	"fmt"
	"time"
)

// TimeOfDayLayout is the wall-clock format used by ingested punch records.
const TimeOfDayLayout = "15:04:05"

// ErrMalformedTime is returned when a clock string is not a valid "HH:MM:SS" value.
var ErrMalformedTime = errors.New("malformed clock time")

// ParseTimeOfDay parses an "HH:MM:SS" string. The date component of the
// returned time is the zero reference date; only the time of day is meaningful.
func ParseTimeOfDay(s string) (time.Time, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return t, nil
}

// HoursBetween returns clockOut minus clockIn as fractional hours.
// An overnight pair (clockOut before clockIn) yields a negative value;
// that case is not modeled and is deliberately left uncorrected.
func HoursBetween(clockIn, clockOut string) (float64, error) {
	in, err := ParseTimeOfDay(clockIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseTimeOfDay(clockOut)
	if err != nil {
		return 0, err
	}
	return out.Sub(in).Hours(), nil
}

// IsValidTimeOfDay reports whether s is a well-formed "HH:MM:SS" string.
func IsValidTimeOfDay(s string) bool {
	_, err := time.Parse(TimeOfDayLayout, s)
	return err == nil
}
