package domain

import (
	"time"
)

type IncidentType string

const (
	IncidentTypeGeneral IncidentType = "general"
	IncidentTypeTheft   IncidentType = "theft"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type TheftOutcome string

const (
	OutcomeReleased        TheftOutcome = "released"
	OutcomePaidAndReleased TheftOutcome = "paid_and_released"
	OutcomeHandedToPolice  TheftOutcome = "handed_to_police"
)

// Incident is an event recorded against a shift. The theft-only fields
// (Gender, Amount, SpecialToolsUsed, Outcome, TheftPrevented) are only
// meaningful when Type is theft.
//
// Amount is kept as a string: historical records predate the stricter
// validation on the write path, so parsing happens at aggregation time
// where a bad value can degrade to zero instead of breaking a report.
type Incident struct {
	ID              string       `json:"id"`
	Type            IncidentType `json:"type"`
	Description     string       `json:"description"`
	IncidentTime    string       `json:"incidentTime,omitempty"`
	G4SPatrolCalled bool         `json:"g4sPatrolCalled"`
	AmbulanceCalled bool         `json:"ambulanceCalled"`

	Gender           Gender       `json:"gender,omitempty"`
	Amount           string       `json:"amount,omitempty"`
	SpecialToolsUsed bool         `json:"specialToolsUsed,omitempty"`
	Outcome          TheftOutcome `json:"outcome,omitempty"`
	TheftPrevented   bool         `json:"theftPrevented,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
