package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("99")  // Purple
	ColorSecondary = lipgloss.Color("39")  // Cyan
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorMuted     = lipgloss.Color("245") // Gray
	ColorHighlight = lipgloss.Color("212") // Pink
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	BoldStyle = lipgloss.NewStyle().Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)

// Box styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)

	CanvasBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted)
)

// StatusBadge renders the avatar movement state
func StatusBadge(state string) string {
	switch state {
	case "advancing":
		return lipgloss.NewStyle().
			Background(ColorSuccess).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1).
			Bold(true).
			Render(" WALKING ")
	case "celebrating":
		return lipgloss.NewStyle().
			Background(ColorWarning).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1).
			Bold(true).
			Render(" MILESTONE ")
	default:
		return lipgloss.NewStyle().
			Background(ColorMuted).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1).
			Render(" RESTING ")
	}
}

// Help style
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	MarginTop(1)
