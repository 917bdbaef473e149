package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// FeedKind classifies a feed line
type FeedKind int

const (
	FeedInfo FeedKind = iota
	FeedWorkout
	FeedMilestone
	FeedError
)

// FeedEntry is one line of the activity feed
type FeedEntry struct {
	Time time.Time
	Kind FeedKind
	Text string
}

// Feed displays the most recent journey activity
type Feed struct {
	Entries    []FeedEntry
	MaxEntries int
	Width      int
	Height     int
	Title      string
}

// NewFeed creates a new feed
func NewFeed(width, height int) *Feed {
	return &Feed{
		MaxEntries: 200,
		Width:      width,
		Height:     height,
	}
}

// WithTitle sets the title
func (f *Feed) WithTitle(title string) *Feed {
	f.Title = title
	return f
}

// Add appends an entry, dropping the oldest once MaxEntries is exceeded
func (f *Feed) Add(at time.Time, kind FeedKind, text string) {
	f.Entries = append(f.Entries, FeedEntry{Time: at, Kind: kind, Text: text})
	if len(f.Entries) > f.MaxEntries {
		f.Entries = f.Entries[len(f.Entries)-f.MaxEntries:]
	}
}

// Last returns the last n entries
func (f *Feed) Last(n int) []FeedEntry {
	if n >= len(f.Entries) {
		return f.Entries
	}
	return f.Entries[len(f.Entries)-n:]
}

// Render returns the feed as a bordered box
func (f *Feed) Render() string {
	displayHeight := max(f.Height-2, 1)
	contentWidth := f.Width - 4

	var lines []string
	for _, e := range f.Last(displayHeight) {
		text := e.Time.Format("15:04") + " " + feedIcon(e.Kind) + " " + e.Text
		if contentWidth > 3 && lipgloss.Width(text) > contentWidth {
			runes := []rune(text)
			if len(runes) > contentWidth-3 {
				text = string(runes[:contentWidth-3]) + "..."
			}
		}
		lines = append(lines, feedStyle(e.Kind).Render(text))
	}
	for len(lines) < displayHeight {
		lines = append(lines, "")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Width(f.Width - 2).
		Height(displayHeight).
		Render(strings.Join(lines, "\n"))

	if f.Title != "" {
		title := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true).
			Render(f.Title)
		return title + "\n" + box
	}
	return box
}

func feedIcon(k FeedKind) string {
	switch k {
	case FeedWorkout:
		return "+"
	case FeedMilestone:
		return "★"
	case FeedError:
		return "✗"
	default:
		return "·"
	}
}

func feedStyle(k FeedKind) lipgloss.Style {
	switch k {
	case FeedWorkout:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	case FeedMilestone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	case FeedError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	}
}
