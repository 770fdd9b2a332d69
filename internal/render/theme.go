package render

import "github.com/charmbracelet/lipgloss"

var (
	colorUser    = lipgloss.AdaptiveColor{Light: "#1565c0", Dark: "#42a5f5"}
	colorAgent   = lipgloss.AdaptiveColor{Light: "#6a1b9a", Dark: "#ce93d8"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#66bb6a"}
	colorWorking = lipgloss.AdaptiveColor{Light: "#e65100", Dark: "#ffa726"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#bdbdbd", Dark: "#616161"}
)

var (
	userLabel  = lipgloss.NewStyle().Foreground(colorUser).Bold(true)
	agentLabel = lipgloss.NewStyle().Foreground(colorAgent).Bold(true)
	textDone   = lipgloss.NewStyle().Foreground(colorSuccess)
	textWork   = lipgloss.NewStyle().Foreground(colorWorking)
	textMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	heading    = lipgloss.NewStyle().Bold(true)

	modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
)

const (
	symbolDone    = "✓"
	symbolWorking = "⏳"
	symbolPending = "•"
	symbolThought = "💭"
	barWidth      = 20
)
