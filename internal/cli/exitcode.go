package cli

import (
	"errors"
	"strings"

	"github.com/Chamion/time-management/internal/domain"
	"github.com/Chamion/time-management/internal/timeutil"
)

// Process exit codes, one per failure class so scripts can branch on
// what went wrong.
const (
	ExitOK             = 0
	ExitError          = 1
	ExitUsage          = 2
	ExitUnknownCommand = 4
	ExitBadDate        = 5
	ExitBadTime        = 6
	ExitMissingTime    = 7
	ExitTransition     = 8
	ExitOutOfOrder     = 9
)

// usageError marks flag-parsing failures so they map to ExitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by command execution to the process
// exit code for its failure class.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var uerr *usageError
	var terr *domain.TransitionError
	switch {
	case errors.As(err, &uerr):
		return ExitUsage
	case errors.As(err, &terr):
		return ExitTransition
	case errors.Is(err, domain.ErrOutOfOrder):
		return ExitOutOfOrder
	case errors.Is(err, timeutil.ErrBadDate):
		return ExitBadDate
	case errors.Is(err, timeutil.ErrBadTime):
		return ExitBadTime
	case errors.Is(err, timeutil.ErrMissingTime):
		return ExitMissingTime
	// Cobra reports unknown subcommands with a plain error; there is
	// no hook equivalent to SetFlagErrorFunc for them.
	case strings.Contains(err.Error(), "unknown command"):
		return ExitUnknownCommand
	default:
		return ExitError
	}
}
