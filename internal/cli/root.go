package cli

import (
	"context"
	"fmt"

	"github.com/Chamion/time-management/internal/cli/formatter"
	"github.com/Chamion/time-management/internal/service"
	"github.com/Chamion/time-management/internal/timeutil"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Log     service.LogService
	Reports service.ReportService
	Clock   timeutil.Clock

	// IsInteractive reports whether stdin is attached to a terminal.
	// The interactive commands (log, watch) refuse to run otherwise.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tt" command and registers all
// subcommands against the provided App. Running tt without a
// subcommand reports today's status.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tt",
		Short: "Personal work-time tracker",
		Long:  "tt records start/stop/break events to an append-only log and derives daily and historical work-time summaries from it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.DailyStatus(context.Background(), app.Clock.Today())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDayReport(report))
			return nil
		},
	}

	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	for _, spec := range actionSpecs {
		root.AddCommand(newActionCmd(app, spec))
	}

	root.AddCommand(
		newStatusCmd(app),
		newAverageCmd(app),
		newHistoryCmd(app),
		newLogFormCmd(app),
		newWatchCmd(app),
	)

	return root
}
