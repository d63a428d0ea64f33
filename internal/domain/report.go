package domain

import (
	"github.com/shopspring/decimal"
)

// NameCount is one guard or object together with the number of shifts it
// appears on within the report period.
type NameCount struct {
	Name   string `json:"name"`
	Shifts int    `json:"shifts"`
}

// MonthlyStatistics is the derived summary of a report period. It is
// recomputed on every query and never persisted.
//
// TotalHours is the sum of the unrounded per-shift hours; rounding to one
// decimal is left to whoever displays the value. Guards and Objects keep
// first-seen order so a rendered report lists them deterministically.
type MonthlyStatistics struct {
	TotalHours           float64         `json:"totalHours"`
	TotalShifts          int             `json:"totalShifts"`
	TotalIncidents       int             `json:"totalIncidents"`
	TheftIncidentCount   int             `json:"theftIncidentCount"`
	TotalTheftAmount     decimal.Decimal `json:"totalTheftAmount"`
	PreventedTheftAmount decimal.Decimal `json:"preventedTheftAmount"`
	PreventedTheftCount  int             `json:"preventedTheftCount"`
	Guards               []NameCount     `json:"guards"`
	Objects              []NameCount     `json:"objects"`
}

// BatchDeleteResult reports the outcome of a best-effort bulk delete.
// The batch is not a transaction: some shifts may be deleted while others
// fail, and the caller must surface that instead of masking it.
type BatchDeleteResult struct {
	Requested int      `json:"requested"`
	Deleted   int      `json:"deleted"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failedIds,omitempty"`
}
