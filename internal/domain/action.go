package domain

import "fmt"

// Action is the kind of lifecycle transition an event records.
type Action string

const (
	ActionStart  Action = "start"
	ActionStop   Action = "stop"
	ActionLunch  Action = "lunch"
	ActionCoffee Action = "coffee"
	ActionResume Action = "resume"
)

// ValidActions is the canonical set of accepted action strings.
var ValidActions = map[string]bool{
	"start": true, "stop": true, "lunch": true, "coffee": true, "resume": true,
}

// ParseAction converts a raw string into an Action.
func ParseAction(s string) (Action, error) {
	if !ValidActions[s] {
		return "", fmt.Errorf("unknown action %q", s)
	}
	return Action(s), nil
}

// State is the activity in effect between two consecutive events.
type State string

const (
	StateNone  State = "none"
	StateWork  State = "work"
	StateBreak State = "break"
	StateLunch State = "lunch"
)

// State returns the activity entered once the action is recorded.
// A stop closes the day, so it maps to StateNone.
func (a Action) State() State {
	switch a {
	case ActionStart, ActionResume:
		return StateWork
	case ActionLunch:
		return StateLunch
	case ActionCoffee:
		return StateBreak
	default:
		return StateNone
	}
}

// Label returns the human status label for a state.
func (s State) Label() string {
	switch s {
	case StateWork:
		return "working"
	case StateLunch:
		return "on lunch break"
	case StateBreak:
		return "on break"
	default:
		return "not working"
	}
}
