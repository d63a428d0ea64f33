package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTimeOfDay(t *testing.T) {
	normalized, err := NormalizeTimeOfDay("startTime", "08:30")
	require.NoError(t, err)
	require.Equal(t, "08:30:00", normalized)

	normalized, err = NormalizeTimeOfDay("startTime", "23:59:59")
	require.NoError(t, err)
	require.Equal(t, "23:59:59", normalized)
}

func TestNormalizeTimeOfDayRejectsInvalid(t *testing.T) {
	for _, value := range []string{"", "8 o'clock", "24:00", "12:60", "12:00:61"} {
		_, err := NormalizeTimeOfDay("endTime", value)
		require.Error(t, err, value)
		require.Contains(t, err.Error(), "endTime")
	}
}
