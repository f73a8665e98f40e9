package cli

import (
	"context"
	"fmt"

	"github.com/Chamion/time-management/internal/cli/formatter"
	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/domain"
	"github.com/spf13/cobra"
)

// actionSpec describes one event-logging subcommand.
type actionSpec struct {
	action  domain.Action
	short   string
	aliases []string
}

var actionSpecs = []actionSpec{
	{action: domain.ActionStart, short: "Start the work day"},
	{action: domain.ActionStop, short: "Stop working for the day"},
	{action: domain.ActionLunch, short: "Go on lunch break (unpaid)"},
	{action: domain.ActionCoffee, short: "Go on coffee break (paid)", aliases: []string{"break"}},
	{action: domain.ActionResume, short: "Resume work after a break", aliases: []string{"continue"}},
}

// newActionCmd builds a subcommand that appends one validated event and
// prints the resulting day report, mirroring the report after every
// successful mutation.
func newActionCmd(app *App, spec actionSpec) *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:     string(spec.action),
		Aliases: spec.aliases,
		Short:   spec.short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, tod, err := flags.resolve(app.Clock)
			if err != nil {
				return err
			}

			report, err := app.Log.Log(context.Background(), contract.LogRequest{
				Action:  spec.action,
				Date:    date,
				Time:    tod,
				Message: flags.message,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDayReport(report))
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
