package report

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod marks a structurally impossible report period, such as
// month 13. This is the only input problem that fails a whole report.
var ErrInvalidPeriod = errors.New("invalid report period")

const dateLayout = "2006-01-02"

// Period is an inclusive range of calendar dates. Start and End are ISO
// yyyy-mm-dd strings, the same representation shifts carry, so membership
// is a plain lexicographic comparison.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MonthPeriod covers a calendar month from the 1st to its last day.
// Month is 1-based; December rolls the end of the range into the next year.
func MonthPeriod(year int, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return Period{
		Start: first.Format(dateLayout),
		End:   last.Format(dateLayout),
	}, nil
}

// DayPeriod covers a single calendar date, for the daily dashboard view.
func DayPeriod(day time.Time) Period {
	date := day.Format(dateLayout)
	return Period{Start: date, End: date}
}

// Contains reports whether the given yyyy-mm-dd date falls within the
// period, boundary dates included.
func (p Period) Contains(date string) bool {
	return date >= p.Start && date <= p.End
}
