package formatter

import (
	"fmt"
	"strings"

	"github.com/Chamion/time-management/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatePill returns a colored indicator for the current activity state.
func StatePill(s domain.State) string {
	switch s {
	case domain.StateWork:
		return StyleGreen.Render("● " + s.Label())
	case domain.StateLunch:
		return StylePurple.Render("○ " + s.Label())
	case domain.StateBreak:
		return StyleYellow.Render("○ " + s.Label())
	default:
		return StyleDim.Render("■ " + s.Label())
	}
}

// ActionPill returns a colored label for a logged action.
func ActionPill(a domain.Action) string {
	switch a {
	case domain.ActionStart:
		return StyleGreen.Render(string(a))
	case domain.ActionStop:
		return StyleRed.Render(string(a))
	case domain.ActionLunch:
		return StylePurple.Render(string(a))
	case domain.ActionCoffee:
		return StyleYellow.Render(string(a))
	case domain.ActionResume:
		return StyleBlue.Render(string(a))
	default:
		return StyleDim.Render(string(a))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
