package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		hours     float64
	}{
		{"day shift", "08:00:00", "16:00:00", 8},
		{"overnight shift", "22:00:00", "06:00:00", 8},
		{"almost full day", "00:00:00", "23:59:00", 23.983333333333334},
		{"identical times", "09:00:00", "09:00:00", 0},
		{"fractional hours", "08:15:00", "16:45:00", 8.5},
		{"minutes only layout", "22:30", "07:00", 8.5},
		{"one minute before wrap", "00:01:00", "00:00:00", 23.983333333333334},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hours, err := ComputeHours(tc.startTime, tc.endTime)
			require.NoError(t, err)
			require.InDelta(t, tc.hours, hours, 1e-9)
		})
	}
}

func TestComputeHoursInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
	}{
		{"empty start", "", "16:00:00"},
		{"empty end", "08:00:00", ""},
		{"not a time", "morning", "16:00:00"},
		{"hour out of range", "25:00:00", "16:00:00"},
		{"minute out of range", "08:00:00", "16:61:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeHours(tc.startTime, tc.endTime)
			require.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestParseTimeOfDayAcceptsBothLayouts(t *testing.T) {
	withSeconds, err := ParseTimeOfDay("08:30:15")
	require.NoError(t, err)
	require.Equal(t, "08:30:15", withSeconds.Format("15:04:05"))

	withoutSeconds, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	require.Equal(t, "08:30:00", withoutSeconds.Format("15:04:05"))
}
