package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Popup is the celebration shown when a milestone is reached
type Popup struct {
	Icon      string
	Title     string
	Color     string
	Threshold int
	Width     int
}

// Render returns the popup box
func (p Popup) Render() string {
	color := lipgloss.Color(p.Color)
	if p.Color == "" {
		color = lipgloss.Color("214")
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(fmt.Sprintf("%s  %s  %s", p.Icon, p.Title, p.Icon))

	sub := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render(fmt.Sprintf("%d workouts completed", p.Threshold))

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Padding(0, 3).
		Align(lipgloss.Center)
	if p.Width > 0 {
		box = box.Width(p.Width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Center, title, sub))
}
