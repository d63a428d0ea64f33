package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthPeriod(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		start string
		end   string
	}{
		{"thirty-one days", 2024, 3, "2024-03-01", "2024-03-31"},
		{"thirty days", 2024, 4, "2024-04-01", "2024-04-30"},
		{"february leap year", 2024, 2, "2024-02-01", "2024-02-29"},
		{"february common year", 2023, 2, "2023-02-01", "2023-02-28"},
		{"december stays in its year", 2024, 12, "2024-12-01", "2024-12-31"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			period, err := MonthPeriod(tc.year, tc.month)
			require.NoError(t, err)
			require.Equal(t, tc.start, period.Start)
			require.Equal(t, tc.end, period.End)
		})
	}
}

func TestMonthPeriodInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := MonthPeriod(2024, month)
		require.ErrorIs(t, err, ErrInvalidPeriod)
	}
}

func TestDayPeriod(t *testing.T) {
	day := time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC)

	period := DayPeriod(day)

	require.Equal(t, "2024-03-15", period.Start)
	require.Equal(t, "2024-03-15", period.End)
}

func TestPeriodContainsIncludesBoundaries(t *testing.T) {
	period, err := MonthPeriod(2024, 3)
	require.NoError(t, err)

	require.True(t, period.Contains("2024-03-01"))
	require.True(t, period.Contains("2024-03-15"))
	require.True(t, period.Contains("2024-03-31"))
	require.False(t, period.Contains("2024-02-29"))
	require.False(t, period.Contains("2024-04-01"))
	require.False(t, period.Contains("2023-03-15"))
}
