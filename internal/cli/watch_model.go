package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Chamion/time-management/internal/cli/formatter"
	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/service"
	"github.com/Chamion/time-management/internal/timeutil"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const watchInterval = 30 * time.Second

type watchTickMsg time.Time

type watchReportMsg struct {
	report *contract.DayReport
	err    error
}

// watchModel is the bubbletea model behind "tt watch": today's report,
// re-fetched on a fixed tick.
type watchModel struct {
	reports  service.ReportService
	clock    timeutil.Clock
	spinner  spinner.Model
	report   *contract.DayReport
	err      error
	quitting bool
}

func newWatchModel(reports service.ReportService, clock timeutil.Clock) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return watchModel{reports: reports, clock: clock, spinner: sp}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchReport(), watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) fetchReport() tea.Cmd {
	return func() tea.Msg {
		report, err := m.reports.DailyStatus(context.Background(), m.clock.Today())
		return watchReportMsg{report: report, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.fetchReport(), watchTick())

	case watchReportMsg:
		m.report = msg.report
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}
	if m.report == nil {
		return fmt.Sprintf("%s %s\n", m.spinner.View(), formatter.Dim("loading today's log"))
	}

	var b strings.Builder
	b.WriteString(formatter.Dim(m.report.Date) + "\n\n")
	b.WriteString(fmt.Sprintf("paid time: %s\n", formatter.Bold(formatter.FormatMinutes(m.report.PaidMin))))
	b.WriteString(formatter.Dim(fmt.Sprintf("of which %s was break-time.", formatter.FormatMinutes(m.report.BreakMin))) + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("unpaid lunch time: %s.", formatter.FormatMinutes(m.report.LunchMin))) + "\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s currently %s\n", m.spinner.View(), formatter.StatePill(m.report.State)))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("refreshes every 30s, press q to quit") + "\n")

	return formatter.RenderBox("Watch", b.String())
}
