package domain

import (
	"time"
)

// Shift is a single guard assignment on one object for one date.
// Date is an ISO yyyy-mm-dd string and StartTime/EndTime are HH:MM:SS
// times of day with no timezone; an end time earlier than the start time
// means the shift runs past midnight into the next day.
type Shift struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	ObjectName string     `json:"objectName"`
	GuardName  string     `json:"guardName"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	Incidents  []Incident `json:"incidents"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Version    int32      `json:"-"`
}
