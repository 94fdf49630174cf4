package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary = lipgloss.Color("#FF6B9D")
	Muted   = lipgloss.Color("#546E7A")
)

// Base styles
var (
	// Title style for the strip counter
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Position bar styles
	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)
)
