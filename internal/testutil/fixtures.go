package testutil

import (
	"github.com/Chamion/time-management/internal/domain"
	"github.com/Chamion/time-management/internal/timeutil"
)

// EventOption customizes a fixture event.
type EventOption func(*domain.Event)

func WithMessage(msg string) EventOption {
	return func(e *domain.Event) {
		e.Message = msg
	}
}

func WithDate(date string) EventOption {
	return func(e *domain.Event) {
		e.Date = date
	}
}

// NewTestEvent builds an event on a fixed default date. The ID is left
// zero; the store assigns it on append.
func NewTestEvent(action domain.Action, clock string, opts ...EventOption) *domain.Event {
	e := &domain.Event{
		Action: action,
		Date:   "2026-08-31",
		Time:   clock,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Day builds an ordered event sequence for one date from (action, time)
// pairs, for feeding aggregators directly.
func Day(date string, pairs ...[2]string) []domain.Event {
	events := make([]domain.Event, 0, len(pairs))
	for _, p := range pairs {
		events = append(events, domain.Event{
			Action: domain.Action(p[0]),
			Date:   date,
			Time:   p[1],
		})
	}
	return events
}

// FixedClock returns canned date/time strings for deterministic tests.
type FixedClock struct {
	Date string
	Time string
}

func (c FixedClock) Today() string { return c.Date }
func (c FixedClock) Now() string   { return c.Time }

var _ timeutil.Clock = FixedClock{}
