package domain

import (
	"time"
)

// ShiftTemplate prefills the shift form with a commonly used
// object/guard/time combination.
type ShiftTemplate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ObjectName string    `json:"objectName"`
	GuardName  string    `json:"guardName"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
}
