package cli

import (
	"context"
	"fmt"

	"github.com/Chamion/time-management/internal/cli/formatter"
	"github.com/Chamion/time-management/internal/timeutil"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the day's aggregated work, break and lunch time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := app.Clock.Today()
			if dateFlag != "" {
				var err error
				date, err = timeutil.ParseDate(dateFlag)
				if err != nil {
					return err
				}
			}

			report, err := app.Reports.DailyStatus(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDayReport(report))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Date to report on (dd:mm:yyyy), defaults to today")

	return cmd
}

func newAverageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "average",
		Short: "Show per-day averages over all completed days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Average(context.Background())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatAverageReport(report))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the raw events logged for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := app.Clock.Today()
			if dateFlag != "" {
				var err error
				date, err = timeutil.ParseDate(dateFlag)
				if err != nil {
					return err
				}
			}

			events, err := app.Reports.History(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatHistory(date, events))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Date to list (dd:mm:yyyy), defaults to today")

	return cmd
}
