package report

import (
	"fmt"
	"testing"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func marchPeriod(t *testing.T) Period {
	t.Helper()
	period, err := MonthPeriod(2024, 3)
	require.NoError(t, err)
	return period
}

func testShift(id, date, guard, object, start, end string, incidents ...domain.Incident) *domain.Shift {
	return &domain.Shift{
		ID:         id,
		Date:       date,
		GuardName:  guard,
		ObjectName: object,
		StartTime:  start,
		EndTime:    end,
		Incidents:  incidents,
	}
}

func theft(id, amount string, prevented bool) domain.Incident {
	return domain.Incident{
		ID:             id,
		Type:           domain.IncidentTypeTheft,
		Description:    "attempted theft of goods",
		Amount:         amount,
		TheftPrevented: prevented,
	}
}

func TestFilterSelectsAndSortsByDate(t *testing.T) {
	shifts := []*domain.Shift{
		testShift("s3", "2024-03-20", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00"),
		testShift("s1", "2024-02-29", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00"),
		testShift("s2", "2024-03-05", "Kristjan Kask", "Mall", "08:00:00", "16:00:00"),
		testShift("s4", "2024-04-01", "Kristjan Kask", "Mall", "08:00:00", "16:00:00"),
	}

	filtered := Filter(shifts, marchPeriod(t))

	require.Len(t, filtered, 2)
	require.Equal(t, "s2", filtered[0].ID)
	require.Equal(t, "s3", filtered[1].ID)
}

func TestFilterKeepsInputOrderOnEqualDates(t *testing.T) {
	shifts := []*domain.Shift{
		testShift("first", "2024-03-10", "A", "X", "08:00:00", "16:00:00"),
		testShift("second", "2024-03-10", "B", "Y", "08:00:00", "16:00:00"),
		testShift("third", "2024-03-10", "C", "Z", "08:00:00", "16:00:00"),
	}

	filtered := Filter(shifts, marchPeriod(t))

	require.Len(t, filtered, 3)
	require.Equal(t, "first", filtered[0].ID)
	require.Equal(t, "second", filtered[1].ID)
	require.Equal(t, "third", filtered[2].ID)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, marchPeriod(t))

	require.Equal(t, 0, stats.TotalShifts)
	require.Equal(t, float64(0), stats.TotalHours)
	require.Equal(t, 0, stats.TotalIncidents)
	require.Equal(t, 0, stats.TheftIncidentCount)
	require.Equal(t, 0, stats.PreventedTheftCount)
	require.True(t, stats.TotalTheftAmount.IsZero())
	require.True(t, stats.PreventedTheftAmount.IsZero())
	require.Empty(t, stats.Guards)
	require.Empty(t, stats.Objects)
}

func TestAggregateHoursAndShiftCounts(t *testing.T) {
	shifts := []*domain.Shift{
		testShift("s1", "2024-03-01", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00"),
		testShift("s2", "2024-03-02", "Marek Tamm", "Warehouse", "22:00:00", "06:00:00"),
		testShift("s3", "2024-03-03", "Kristjan Kask", "Mall", "09:30:00", "18:00:00"),
	}

	stats := Aggregate(shifts, marchPeriod(t))

	require.Equal(t, 3, stats.TotalShifts)
	require.InDelta(t, 24.5, stats.TotalHours, 1e-9)
}

func TestAggregateTheftAmountPartition(t *testing.T) {
	shifts := []*domain.Shift{
		testShift("s1", "2024-03-01", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00",
			theft("i1", "120.50", false),
			theft("i2", "45.00", true),
			domain.Incident{ID: "i3", Type: domain.IncidentTypeGeneral, Description: "broken window"},
		),
		testShift("s2", "2024-03-02", "Kristjan Kask", "Mall", "08:00:00", "16:00:00",
			theft("i4", "30.25", true),
		),
	}

	stats := Aggregate(shifts, marchPeriod(t))

	require.Equal(t, 4, stats.TotalIncidents)
	require.Equal(t, 3, stats.TheftIncidentCount)
	require.Equal(t, 2, stats.PreventedTheftCount)
	require.True(t, stats.TotalTheftAmount.Equal(decimal.RequireFromString("120.50")), stats.TotalTheftAmount.String())
	require.True(t, stats.PreventedTheftAmount.Equal(decimal.RequireFromString("75.25")), stats.PreventedTheftAmount.String())
}

func TestAggregateGuardsAndObjectsFirstSeenOrder(t *testing.T) {
	shifts := []*domain.Shift{
		testShift("s1", "2024-03-01", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00"),
		testShift("s2", "2024-03-02", "Kristjan Kask", "Mall", "08:00:00", "16:00:00"),
		testShift("s3", "2024-03-03", "Marek Tamm", "Mall", "08:00:00", "16:00:00"),
		testShift("s4", "2024-03-04", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00"),
	}

	stats := Aggregate(shifts, marchPeriod(t))

	require.Equal(t, []domain.NameCount{
		{Name: "Marek Tamm", Shifts: 3},
		{Name: "Kristjan Kask", Shifts: 1},
	}, stats.Guards)
	require.Equal(t, []domain.NameCount{
		{Name: "Warehouse", Shifts: 2},
		{Name: "Mall", Shifts: 2},
	}, stats.Objects)
}

func TestAggregateMalformedTimeCountsShiftWithZeroHours(t *testing.T) {
	shifts := []*domain.Shift{
		testShift("good", "2024-03-01", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00"),
		testShift("bad", "2024-03-02", "Marek Tamm", "Warehouse", "not-a-time", "16:00:00"),
	}

	stats := Aggregate(shifts, marchPeriod(t))

	require.Equal(t, 2, stats.TotalShifts)
	require.InDelta(t, 8, stats.TotalHours, 1e-9)
	require.Equal(t, []domain.NameCount{{Name: "Marek Tamm", Shifts: 2}}, stats.Guards)
}

func TestAggregateBadAmountCountsTheftWithZeroAmount(t *testing.T) {
	shifts := []*domain.Shift{
		testShift("s1", "2024-03-01", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00",
			theft("missing", "", false),
			theft("unparsable", "ten euros", false),
			theft("negative", "-5.00", true),
			theft("good", "12.00", false),
		),
	}

	stats := Aggregate(shifts, marchPeriod(t))

	require.Equal(t, 4, stats.TheftIncidentCount)
	require.Equal(t, 1, stats.PreventedTheftCount)
	require.True(t, stats.TotalTheftAmount.Equal(decimal.RequireFromString("12.00")), stats.TotalTheftAmount.String())
	require.True(t, stats.PreventedTheftAmount.IsZero())
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	shifts := []*domain.Shift{
		testShift("s1", "2024-03-03", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00", theft("i1", "10.00", false)),
		testShift("s2", "2024-03-01", "Kristjan Kask", "Mall", "22:00:00", "06:00:00", theft("i2", "20.00", true)),
		testShift("s3", "2024-03-02", "Marek Tamm", "Mall", "12:00:00", "20:00:00"),
	}
	reversed := []*domain.Shift{shifts[2], shifts[1], shifts[0]}

	a := Aggregate(shifts, marchPeriod(t))
	b := Aggregate(reversed, marchPeriod(t))

	require.Equal(t, a.TotalShifts, b.TotalShifts)
	require.InDelta(t, a.TotalHours, b.TotalHours, 1e-9)
	require.Equal(t, a.TotalIncidents, b.TotalIncidents)
	require.Equal(t, a.TheftIncidentCount, b.TheftIncidentCount)
	require.True(t, a.TotalTheftAmount.Equal(b.TotalTheftAmount))
	require.True(t, a.PreventedTheftAmount.Equal(b.PreventedTheftAmount))
	require.ElementsMatch(t, a.Guards, b.Guards)
	require.ElementsMatch(t, a.Objects, b.Objects)
}

func TestAggregateRecomputesAfterRemoval(t *testing.T) {
	shift := testShift("s1", "2024-03-01", "Marek Tamm", "Warehouse", "08:00:00", "16:00:00",
		theft("i1", "100.00", false),
		theft("i2", "50.00", false),
	)

	before := Aggregate([]*domain.Shift{shift}, marchPeriod(t))
	require.Equal(t, 2, before.TheftIncidentCount)
	require.True(t, before.TotalTheftAmount.Equal(decimal.RequireFromString("150.00")))

	shift.Incidents = shift.Incidents[:1]

	after := Aggregate([]*domain.Shift{shift}, marchPeriod(t))
	require.Equal(t, 1, after.TheftIncidentCount)
	require.True(t, after.TotalTheftAmount.Equal(decimal.RequireFromString("100.00")))
}

func TestAggregateIncidentCountMatchesSum(t *testing.T) {
	shifts := make([]*domain.Shift, 0, 5)
	want := 0
	for i := 0; i < 5; i++ {
		incidents := make([]domain.Incident, i)
		for j := range incidents {
			incidents[j] = domain.Incident{ID: fmt.Sprintf("i%d-%d", i, j), Type: domain.IncidentTypeGeneral, Description: "noise complaint"}
		}
		want += i
		shifts = append(shifts, testShift(fmt.Sprintf("s%d", i), fmt.Sprintf("2024-03-0%d", i+1), "Marek Tamm", "Warehouse", "08:00:00", "16:00:00", incidents...))
	}

	stats := Aggregate(shifts, marchPeriod(t))

	require.Equal(t, want, stats.TotalIncidents)
}
