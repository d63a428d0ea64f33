package report

import (
	"log/slog"
	"sort"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Filter returns the shifts whose date falls within the period, sorted by
// date ascending. The sort is stable, so shifts on the same date keep the
// order of the input collection. The input is never mutated.
func Filter(shifts []*domain.Shift, period Period) []*domain.Shift {
	filtered := make([]*domain.Shift, 0, len(shifts))
	for _, shift := range shifts {
		if period.Contains(shift.Date) {
			filtered = append(filtered, shift)
		}
	}

	// ISO dates compare lexicographically in date order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date < filtered[j].Date
	})

	return filtered
}

// Aggregate folds the shifts of a period into a single statistics record.
// The result depends only on the input collection and the period.
//
// Data-quality problems in individual records never fail the whole report:
// a shift with a malformed start or end time contributes 0 hours but still
// counts as a shift, and a theft incident with a missing, unparsable or
// negative amount contributes 0 to the amount totals but still counts as a
// theft incident. Both cases are logged so the records can be repaired.
func Aggregate(shifts []*domain.Shift, period Period) *domain.MonthlyStatistics {
	stats := &domain.MonthlyStatistics{
		TotalTheftAmount:     decimal.Zero,
		PreventedTheftAmount: decimal.Zero,
		Guards:               make([]domain.NameCount, 0),
		Objects:              make([]domain.NameCount, 0),
	}

	guardIndex := make(map[string]int)
	objectIndex := make(map[string]int)

	for _, shift := range Filter(shifts, period) {
		hours, err := ComputeHours(shift.StartTime, shift.EndTime)
		if err != nil {
			slog.Warn("shift has a malformed time, counting 0 hours", "shiftID", shift.ID, "error", err)
		} else {
			stats.TotalHours += hours
		}
		stats.TotalShifts++

		if i, seen := guardIndex[shift.GuardName]; seen {
			stats.Guards[i].Shifts++
		} else {
			guardIndex[shift.GuardName] = len(stats.Guards)
			stats.Guards = append(stats.Guards, domain.NameCount{Name: shift.GuardName, Shifts: 1})
		}

		if i, seen := objectIndex[shift.ObjectName]; seen {
			stats.Objects[i].Shifts++
		} else {
			objectIndex[shift.ObjectName] = len(stats.Objects)
			stats.Objects = append(stats.Objects, domain.NameCount{Name: shift.ObjectName, Shifts: 1})
		}

		for i := range shift.Incidents {
			incident := &shift.Incidents[i]
			stats.TotalIncidents++

			if incident.Type != domain.IncidentTypeTheft {
				continue
			}
			stats.TheftIncidentCount++

			amount := theftAmount(shift.ID, incident)
			if incident.TheftPrevented {
				stats.PreventedTheftAmount = stats.PreventedTheftAmount.Add(amount)
				stats.PreventedTheftCount++
			} else {
				stats.TotalTheftAmount = stats.TotalTheftAmount.Add(amount)
			}
		}
	}

	return stats
}

// theftAmount parses a theft incident's amount, degrading to zero on
// missing, unparsable or negative values.
func theftAmount(shiftID string, incident *domain.Incident) decimal.Decimal {
	if incident.Amount == "" {
		slog.Warn("theft incident has no amount, counting 0", "shiftID", shiftID, "incidentID", incident.ID)
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(incident.Amount)
	if err != nil {
		slog.Warn("theft incident has an unparsable amount, counting 0", "shiftID", shiftID, "incidentID", incident.ID, "amount", incident.Amount)
		return decimal.Zero
	}
	if amount.IsNegative() {
		slog.Warn("theft incident has a negative amount, counting 0", "shiftID", shiftID, "incidentID", incident.ID, "amount", incident.Amount)
		return decimal.Zero
	}

	return amount
}
