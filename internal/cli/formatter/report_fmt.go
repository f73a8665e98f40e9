package formatter

import (
	"fmt"
	"strings"

	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/domain"
	"github.com/Chamion/time-management/internal/timeutil"
)

// FormatMinutes renders a minute count as "H h M min".
func FormatMinutes(min int) string {
	h, m := timeutil.HoursAndMinutes(min)
	return fmt.Sprintf("%d h %d min", h, m)
}

// FormatDayReport renders a day's aggregated buckets and current state.
func FormatDayReport(r *contract.DayReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("paid time: %s\n", Bold(FormatMinutes(r.PaidMin))))
	b.WriteString(Dim(fmt.Sprintf("of which %s was break-time.", FormatMinutes(r.BreakMin))) + "\n")
	b.WriteString(Dim(fmt.Sprintf("unpaid lunch time: %s.", FormatMinutes(r.LunchMin))) + "\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("currently %s\n", StatePill(r.State)))

	return RenderBox("Today", b.String())
}

// FormatAverageReport renders per-day averages over completed days.
func FormatAverageReport(r *contract.AverageReport) string {
	if r.DaysLogged == 0 {
		return Dim("No days logged.") + "\n"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("days logged: %s\n", Bold(fmt.Sprintf("%d", r.DaysLogged))))
	b.WriteString(fmt.Sprintf("paid time: %s\n", Bold(FormatMinutes(r.AvgPaidMin))))
	b.WriteString(Dim(fmt.Sprintf("of which %s was break-time.", FormatMinutes(r.AvgBreakMin))) + "\n")
	b.WriteString(Dim(fmt.Sprintf("unpaid lunch time: %s.", FormatMinutes(r.AvgLunchMin))) + "\n")

	return RenderBox("Average", b.String())
}

// FormatHistory renders a date's raw event list as a table.
func FormatHistory(date string, events []domain.Event) string {
	if len(events) == 0 {
		return Dim(fmt.Sprintf("No events logged for %s.", date)) + "\n"
	}

	headers := []string{"TIME", "ACTION", "MESSAGE"}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.Time,
			ActionPill(e.Action),
			Dim(e.Message),
		})
	}

	return RenderBox(date, RenderTable(headers, rows))
}
