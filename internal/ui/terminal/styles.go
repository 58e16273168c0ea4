package terminal

import "github.com/charmbracelet/lipgloss"

const (
	colorFocus  = "#FFFFFF"
	colorBreak  = "#86C496"
	colorMuted  = "#6C6C6C"
	colorBorder = "#3A3A3A"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorFocus))
	fadedTitle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	clockStyle = lipgloss.NewStyle().Bold(true).Padding(1, 0)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	labelStyle = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color(colorMuted))
	quoteStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(1, 2).
			Width(44).
			Italic(true)
	authorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)).Align(lipgloss.Right).Width(40)
)

func phaseStyle(colorName string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorName))
}
