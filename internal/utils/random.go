package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
	"github.com/google/uuid"
)

var guardNames = []string{
	"Mart Tamm", "Jaan Kask", "Andres Saar", "Priit Sepp", "Toomas Mägi",
	"Kristjan Oja", "Marko Kukk", "Rein Lepik", "Urmas Koppel", "Indrek Vaher",
}

var objectNames = []string{
	"Keskuse Kaubamaja", "Sadama Market", "Lasnamäe Selver", "Ülemiste Keskus",
	"Rocca al Mare", "Kristiine Keskus", "Pärnu Maantee Ladu", "Mustamäe Prisma",
}

var generalDescriptions = []string{
	"Intoxicated person escorted out of the store",
	"Broken bottle cleaned up in aisle three",
	"Alarm triggered by a delivery door left open",
	"Customer dispute at the service desk",
	"Minor medical incident, first aid given",
}

var theftDescriptions = []string{
	"Attempted to leave with unpaid groceries",
	"Concealed cosmetics in a jacket pocket",
	"Removed security tags from clothing",
	"Took alcohol past the registers without paying",
}

func GenerateRandomTimeOfDay() string {
	return fmt.Sprintf("%02d:%02d:00", rand.Intn(24), rand.Intn(60))
}

func GenerateRandomIncident() domain.Incident {
	incident := domain.Incident{
		ID:              uuid.NewString(),
		Type:            domain.IncidentTypeGeneral,
		Description:     generalDescriptions[rand.Intn(len(generalDescriptions))],
		IncidentTime:    GenerateRandomTimeOfDay(),
		G4SPatrolCalled: rand.Intn(4) == 0,
		AmbulanceCalled: rand.Intn(8) == 0,
	}

	if rand.Intn(2) == 0 {
		incident.Type = domain.IncidentTypeTheft
		incident.Description = theftDescriptions[rand.Intn(len(theftDescriptions))]
		if rand.Intn(2) == 0 {
			incident.Gender = domain.GenderMale
		} else {
			incident.Gender = domain.GenderFemale
		}
		incident.Amount = fmt.Sprintf("%d.%02d", rand.Intn(500), rand.Intn(100))
		incident.SpecialToolsUsed = rand.Intn(5) == 0
		outcomes := []domain.TheftOutcome{domain.OutcomeReleased, domain.OutcomePaidAndReleased, domain.OutcomeHandedToPolice}
		incident.Outcome = outcomes[rand.Intn(len(outcomes))]
		incident.TheftPrevented = rand.Intn(3) == 0
	}

	return incident
}

func GenerateRandomShift(year int, month int) *domain.Shift {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := rand.Intn(daysInMonth) + 1

	// day shifts and overnight shifts in roughly equal measure
	startHour := rand.Intn(24)
	endHour := (startHour + 8 + rand.Intn(5)) % 24

	shift := &domain.Shift{
		ID:         uuid.NewString(),
		Date:       fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		ObjectName: objectNames[rand.Intn(len(objectNames))],
		GuardName:  guardNames[rand.Intn(len(guardNames))],
		StartTime:  fmt.Sprintf("%02d:00:00", startHour),
		EndTime:    fmt.Sprintf("%02d:00:00", endHour),
		Incidents:  make([]domain.Incident, 0),
	}

	incidentCount := rand.Intn(3)
	for i := 0; i < incidentCount; i++ {
		shift.Incidents = append(shift.Incidents, GenerateRandomIncident())
	}

	return shift
}

func GenerateRandomShiftTemplate() *domain.ShiftTemplate {
	objectName := objectNames[rand.Intn(len(objectNames))]

	return &domain.ShiftTemplate{
		ID:         uuid.NewString(),
		Name:       fmt.Sprintf("%s %02d-%02d", objectName, rand.Intn(24), rand.Intn(24)),
		ObjectName: objectName,
		GuardName:  guardNames[rand.Intn(len(guardNames))],
		StartTime:  GenerateRandomTimeOfDay(),
		EndTime:    GenerateRandomTimeOfDay(),
	}
}
