package tui

import (
	"github.com/charmbracelet/lipgloss"

	"dragd/internal/config"
)

var (
	// Main application frame
	App = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Padding(0, 1)

	// Title bar above the canvas
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// Status line under the canvas
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Error notes on the status line
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	// Help bar styling
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9"))
)

// ApplyConfigStyles rebinds the frame and status colors to the configured
// theme so the chrome matches the canvas.
func ApplyConfigStyles(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.Theme.Border != "" {
		App = App.BorderForeground(lipgloss.Color(cfg.Theme.Border))
	}
	if cfg.Theme.Indicator != "" {
		TitleStyle = TitleStyle.Background(lipgloss.Color(cfg.Theme.Indicator))
	}
	if cfg.Theme.Status != "" {
		StatusStyle = StatusStyle.Foreground(lipgloss.Color(cfg.Theme.Status))
		HelpStyle = HelpStyle.Foreground(lipgloss.Color(cfg.Theme.Status))
	}
}
