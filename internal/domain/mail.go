package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

// MonthlyReportMailData is flattened and display-formatted by the API
// before publishing, so the mail worker only substitutes strings into the
// template. Amounts and hours are already rounded here; the unrounded
// values live in MonthlyStatistics.
type MonthlyReportMailData struct {
	Year                 int    `json:"year"`
	Month                int    `json:"month"`
	TotalShifts          int    `json:"totalShifts"`
	TotalHours           string `json:"totalHours"`
	TotalIncidents       int    `json:"totalIncidents"`
	TheftIncidentCount   int    `json:"theftIncidentCount"`
	TotalTheftAmount     string `json:"totalTheftAmount"`
	PreventedTheftCount  int    `json:"preventedTheftCount"`
	PreventedTheftAmount string `json:"preventedTheftAmount"`
	GuardCount           int    `json:"guardCount"`
	ObjectCount          int    `json:"objectCount"`
}
