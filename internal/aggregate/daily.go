// Package aggregate holds the pure replay algorithms that turn an
// ordered event log into duration summaries. Nothing here touches
// storage or the wall clock; "now" is always supplied by the caller.
package aggregate

import (
	"fmt"

	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/domain"
	"github.com/Chamion/time-management/internal/timeutil"
)

// DailyStatus replays one date's events, in time order, into three
// cumulative buckets: work, break and lunch minutes. When the last
// event leaves a state active, the open segment is extended to now so
// an in-progress day reports time elapsed so far. Break time is paid,
// lunch is not.
func DailyStatus(date string, events []domain.Event, now string) (contract.DayReport, error) {
	state := domain.StateNone
	lastTime := ""
	buckets := map[domain.State]int{}

	for _, e := range events {
		if state != domain.StateNone {
			min, err := segmentMinutes(lastTime, e.Time)
			if err != nil {
				return contract.DayReport{}, err
			}
			buckets[state] += min
		}
		state = e.Action.State()
		lastTime = e.Time
	}

	if state != domain.StateNone {
		min, err := timeutil.MinutesBetween(lastTime, now)
		if err != nil {
			return contract.DayReport{}, err
		}
		// Replaying a past date with a now before its events must not
		// go negative; the open segment just contributes nothing.
		if min > 0 {
			buckets[state] += min
		}
	}

	work, brk, lunch := buckets[domain.StateWork], buckets[domain.StateBreak], buckets[domain.StateLunch]
	return contract.DayReport{
		Date:     date,
		WorkMin:  work,
		BreakMin: brk,
		LunchMin: lunch,
		PaidMin:  work + brk,
		State:    state,
		Status:   state.Label(),
	}, nil
}

// segmentMinutes measures a closed segment between two stored events.
// Stored sequences are insert-ordered per date, so a negative span
// means the log is corrupt.
func segmentMinutes(from, to string) (int, error) {
	min, err := timeutil.MinutesBetween(from, to)
	if err != nil {
		return 0, err
	}
	if min < 0 {
		return 0, fmt.Errorf("event log out of order: %s follows %s", to, from)
	}
	return min, nil
}
