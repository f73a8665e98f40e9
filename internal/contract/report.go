package contract

import "github.com/Chamion/time-management/internal/domain"

// LogRequest carries one validated append through the log service.
// Date and Time are already normalized (yyyy-mm-dd / hh:mm).
type LogRequest struct {
	Action  domain.Action
	Date    string
	Time    string
	Message string
}

// DayReport is the aggregated view of a single date's events.
// Break time is paid, lunch is not, so PaidMin = WorkMin + BreakMin.
type DayReport struct {
	Date     string
	WorkMin  int
	BreakMin int
	LunchMin int
	PaidMin  int
	State    domain.State
	Status   string
}

// AverageReport is the per-day average over all completed days.
// A day counts as completed once a stop event is observed.
type AverageReport struct {
	DaysLogged  int
	AvgWorkMin  int
	AvgBreakMin int
	AvgLunchMin int
	AvgPaidMin  int
}
