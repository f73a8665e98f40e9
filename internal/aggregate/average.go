package aggregate

import (
	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/domain"
)

// Average streams the whole log chronologically and averages the three
// buckets over completed days. A day completes when a stop event is
// observed; the accumulator resets on every start, so a day that never
// stops is discarded rather than carried into the next one.
func Average(events []domain.Event) (contract.AverageReport, error) {
	var days int
	totals := map[domain.State]int{}
	today := map[domain.State]int{}
	state := domain.StateNone
	lastDate, lastTime := "", ""

	for _, e := range events {
		if e.Action == domain.ActionStart {
			today = map[domain.State]int{}
		}
		// Segments only exist within one date; the gap from a day's
		// last event to the next day's first is not a duration.
		if lastTime != "" && e.Date == lastDate && state != domain.StateNone {
			min, err := segmentMinutes(lastTime, e.Time)
			if err != nil {
				return contract.AverageReport{}, err
			}
			today[state] += min
		}
		if e.Action == domain.ActionStop {
			days++
			for k, v := range today {
				totals[k] += v
			}
		}
		state = e.Action.State()
		lastDate, lastTime = e.Date, e.Time
	}

	if days == 0 {
		return contract.AverageReport{}, nil
	}

	work, brk, lunch := totals[domain.StateWork]/days, totals[domain.StateBreak]/days, totals[domain.StateLunch]/days
	return contract.AverageReport{
		DaysLogged:  days,
		AvgWorkMin:  work,
		AvgBreakMin: brk,
		AvgLunchMin: lunch,
		AvgPaidMin:  (totals[domain.StateWork] + totals[domain.StateBreak]) / days,
	}, nil
}
