package cli

import (
	"github.com/Chamion/time-management/internal/timeutil"
	"github.com/spf13/pflag"
)

// entryFlags are the shared flags of every event-logging command.
type entryFlags struct {
	message  string
	timeFlag string
	dateFlag string
}

// register adds the shared flags to a command's pflag set.
func (f *entryFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.message, "message", "m", "", "Free-text annotation stored with the event")
	fs.StringVarP(&f.timeFlag, "time", "t", "", "Retroactive time (hh:mm)")
	fs.StringVarP(&f.dateFlag, "date", "d", "", "Retroactive date (dd:mm:yyyy), requires --time")
}

// resolve normalizes the retroactive date/time pair, falling back to
// the clock when no explicit values were given. A retroactive date
// without an explicit time is rejected: the clock's current time on a
// past date would be meaningless.
func (f *entryFlags) resolve(clock timeutil.Clock) (date, tod string, err error) {
	if f.dateFlag != "" {
		date, err = timeutil.ParseDate(f.dateFlag)
		if err != nil {
			return "", "", err
		}
		if f.timeFlag == "" {
			return "", "", timeutil.ErrMissingTime
		}
	} else {
		date = clock.Today()
	}

	if f.timeFlag != "" {
		tod, err = timeutil.ParseTime(f.timeFlag)
		if err != nil {
			return "", "", err
		}
	} else {
		tod = clock.Now()
	}

	return date, tod, nil
}
