package report

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeFormat marks a time-of-day value that is not a well-formed
// HH:MM or HH:MM:SS clock time.
var ErrInvalidTimeFormat = errors.New("invalid time format")

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay parses an HH:MM or HH:MM:SS string. The returned time
// carries only the clock component (the date part is the zero date).
func ParseTimeOfDay(value string) (time.Time, error) {
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
}

// ComputeHours returns the hours worked between two times of day. An end
// time earlier than the start time means the shift crosses midnight, so
// 24 hours are added. Identical start and end yield 0 hours, not 24: a
// degenerate shift is recorded as zero duration.
//
// The result keeps full precision; callers round for display only, and the
// aggregation sums unrounded values to avoid compounding rounding error.
func ComputeHours(startTime, endTime string) (float64, error) {
	start, err := ParseTimeOfDay(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseTimeOfDay(endTime)
	if err != nil {
		return 0, err
	}

	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours += 24
	}

	return hours, nil
}
