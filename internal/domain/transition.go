package domain

import "errors"

// successors encodes which action may follow which. Activities are
// mutually exclusive states; lunch and coffee may switch into each
// other directly, everything else goes through resume or stop.
var successors = map[Action]map[Action]bool{
	ActionStart:  {ActionStop: true},
	ActionStop:   {ActionStart: true, ActionLunch: true, ActionCoffee: true, ActionResume: true},
	ActionLunch:  {ActionStart: true, ActionCoffee: true, ActionResume: true},
	ActionCoffee: {ActionStart: true, ActionLunch: true, ActionResume: true},
	ActionResume: {ActionLunch: true, ActionCoffee: true},
}

// transitionReasons names the rule broken when a candidate action is
// rejected, keyed by the candidate.
var transitionReasons = map[Action]string{
	ActionStart:  "cannot start work day when already working; to resume after a break, use resume instead",
	ActionStop:   "cannot stop before starting",
	ActionLunch:  "cannot start lunch break when not working",
	ActionCoffee: "cannot start coffee break when not working",
	ActionResume: "cannot resume work when not on a break",
}

// ErrOutOfOrder is returned when a candidate event's time precedes the
// latest event already stored for the same date.
var ErrOutOfOrder = errors.New("cannot insert between already-logged actions")

// TransitionError reports an action that is illegal given the most
// recent stored action.
type TransitionError struct {
	Candidate Action
	Last      *Action
}

func (e *TransitionError) Error() string {
	if reason, ok := transitionReasons[e.Candidate]; ok {
		return reason
	}
	return "invalid action transition"
}

// ValidateTransition checks a candidate action against the most recent
// previously stored action for the same date. last is nil when the date
// has no events yet, in which case only start is legal.
func ValidateTransition(candidate Action, last *Action) error {
	if last == nil {
		if candidate == ActionStart {
			return nil
		}
		return &TransitionError{Candidate: candidate}
	}
	if successors[*last][candidate] {
		return nil
	}
	return &TransitionError{Candidate: candidate, Last: last}
}
