package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	subtleStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorText)
	pendingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	footerStyle   = lipgloss.NewStyle().Background(colorMantle).Foreground(colorText)

	statusStyles = map[statusKind]lipgloss.Style{
		statusInfo:    lipgloss.NewStyle().Foreground(colorInfo),
		statusSuccess: lipgloss.NewStyle().Foreground(colorSuccess),
		statusWarning: lipgloss.NewStyle().Foreground(colorWarning),
		statusError:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
)
