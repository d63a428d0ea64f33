package utils

import (
	"fmt"

	"github.com/articard-dev/guard-journal/backend/internal/report"
)

// NormalizeTimeOfDay validates an HH:MM or HH:MM:SS clock value and
// returns it in the canonical HH:MM:SS form used by storage.
func NormalizeTimeOfDay(field string, value string) (string, error) {
	t, err := report.ParseTimeOfDay(value)
	if err != nil {
		return "", fmt.Errorf("%s must be a valid HH:MM time", field)
	}
	return t.Format("15:04:05"), nil
}
