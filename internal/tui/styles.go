package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	// Paths and project names
	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	// Commands the user can copy
	CommandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AFD7"))

	// Directory entries in conflict listings
	DirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F87FF"))

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	// Bullet in front of validation problems
	BulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Warning styling
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D7AF00"))

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
)
