package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders the walk towards the next milestone
type ProgressBar struct {
	Width   int
	Total   int
	Current int
	Label   string
	ShowPct bool
}

// NewProgressBar creates a new progress bar
func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{
		Width:   width,
		Total:   total,
		Current: current,
		ShowPct: true,
	}
}

// WithLabel adds a label to the progress bar
func (p ProgressBar) WithLabel(label string) ProgressBar {
	p.Label = label
	return p
}

// Fraction returns Current/Total clamped to [0, 1]
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Current)/float64(p.Total), 0), 1)
}

// Render returns the string representation of the progress bar
func (p ProgressBar) Render() string {
	if p.Total <= 0 {
		return ""
	}

	filledWidth := int(p.Fraction() * float64(p.Width))
	bar := renderBar(filledWidth, p.Width-filledWidth)

	result := bar
	if p.Label != "" {
		result = fmt.Sprintf("%s %s", p.Label, bar)
	}

	if p.ShowPct {
		result += lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Render(fmt.Sprintf(" %d/%d workouts (%.0f%%)", p.Current, p.Total, p.Fraction()*100))
	}

	return result
}

// MiniProgressBar renders a compact bar for the per type breakdown
type MiniProgressBar struct {
	Width   int
	Total   int
	Current int
}

// NewMiniProgressBar creates a new mini progress bar
func NewMiniProgressBar(current, total, width int) MiniProgressBar {
	return MiniProgressBar{
		Width:   width,
		Total:   total,
		Current: current,
	}
}

// Render returns the mini progress bar
func (p MiniProgressBar) Render() string {
	if p.Total == 0 {
		return strings.Repeat("░", p.Width)
	}

	filledWidth := min(int(float64(p.Current)/float64(p.Total)*float64(p.Width)), p.Width)
	return renderBar(filledWidth, p.Width-filledWidth)
}

func renderBar(filled, empty int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Render(strings.Repeat("░", empty))
}
