package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allActions = []Action{ActionStart, ActionStop, ActionLunch, ActionCoffee, ActionResume}

func TestValidateTransition_EmptyLog_OnlyStart(t *testing.T) {
	require.NoError(t, ValidateTransition(ActionStart, nil))

	for _, a := range []Action{ActionStop, ActionLunch, ActionCoffee, ActionResume} {
		err := ValidateTransition(a, nil)
		assert.Error(t, err, "action %s must be rejected on an empty log", a)

		var terr *TransitionError
		assert.ErrorAs(t, err, &terr)
	}
}

func TestValidateTransition_Matrix(t *testing.T) {
	allowed := map[Action][]Action{
		ActionStart:  {ActionStop},
		ActionStop:   {ActionStart, ActionLunch, ActionCoffee, ActionResume},
		ActionLunch:  {ActionStart, ActionCoffee, ActionResume},
		ActionCoffee: {ActionStart, ActionLunch, ActionResume},
		ActionResume: {ActionLunch, ActionCoffee},
	}

	for _, last := range allActions {
		ok := map[Action]bool{}
		for _, a := range allowed[last] {
			ok[a] = true
		}
		for _, candidate := range allActions {
			last := last
			err := ValidateTransition(candidate, &last)
			if ok[candidate] {
				assert.NoError(t, err, "%s -> %s should be legal", last, candidate)
			} else {
				assert.Error(t, err, "%s -> %s should be rejected", last, candidate)
			}
		}
	}
}

func TestTransitionError_Messages(t *testing.T) {
	last := ActionStart
	err := ValidateTransition(ActionLunch, &last)
	require.Error(t, err)
	assert.Equal(t, "cannot start lunch break when not working", err.Error())

	err = ValidateTransition(ActionStop, nil)
	require.Error(t, err)
	assert.Equal(t, "cannot stop before starting", err.Error())

	last = ActionResume
	err = ValidateTransition(ActionStop, &last)
	require.Error(t, err)
	assert.Equal(t, "cannot stop before starting", err.Error())

	last = ActionStart
	err = ValidateTransition(ActionStart, &last)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot start work day when already working")
}

func TestActionState(t *testing.T) {
	assert.Equal(t, StateWork, ActionStart.State())
	assert.Equal(t, StateWork, ActionResume.State())
	assert.Equal(t, StateLunch, ActionLunch.State())
	assert.Equal(t, StateBreak, ActionCoffee.State())
	assert.Equal(t, StateNone, ActionStop.State())
}

func TestStateLabel(t *testing.T) {
	assert.Equal(t, "working", StateWork.Label())
	assert.Equal(t, "on lunch break", StateLunch.Label())
	assert.Equal(t, "on break", StateBreak.Label())
	assert.Equal(t, "not working", StateNone.Label())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("coffee")
	require.NoError(t, err)
	assert.Equal(t, ActionCoffee, a)

	_, err = ParseAction("nap")
	assert.Error(t, err)
}

func TestErrOutOfOrder_Message(t *testing.T) {
	assert.True(t, errors.Is(ErrOutOfOrder, ErrOutOfOrder))
	assert.Equal(t, "cannot insert between already-logged actions", ErrOutOfOrder.Error())
}
