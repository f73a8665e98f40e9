package cli

import (
	"context"
	"fmt"

	"github.com/Chamion/time-management/internal/cli/formatter"
	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// huhTheme restyles huh forms to match the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var actionFormLabels = map[domain.Action]string{
	domain.ActionStart:  "start (clock in)",
	domain.ActionStop:   "stop (end the day)",
	domain.ActionLunch:  "lunch (unpaid break)",
	domain.ActionCoffee: "coffee (paid break)",
	domain.ActionResume: "resume (back to work)",
}

// newLogFormCmd builds the interactive "tt log" command: a form that
// offers only the actions currently legal for today.
func newLogFormCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Log an event interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("log requires an interactive terminal, use the action subcommands instead")
			}

			ctx := context.Background()
			date := app.Clock.Today()

			legal, err := app.Log.LegalActions(ctx, date)
			if err != nil {
				return err
			}

			options := make([]huh.Option[domain.Action], 0, len(legal))
			for _, a := range legal {
				options = append(options, huh.NewOption(actionFormLabels[a], a))
			}

			var action domain.Action
			var message string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[domain.Action]().
						Title("What are you doing?").
						Options(options...).
						Value(&action),
					huh.NewInput().
						Title("Message (optional)").
						Value(&message),
				),
			).WithTheme(huhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			report, err := app.Log.Log(ctx, contract.LogRequest{
				Action:  action,
				Date:    date,
				Time:    app.Clock.Now(),
				Message: message,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDayReport(report))
			return nil
		},
	}
}
