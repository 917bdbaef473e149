// Package tui renders the journey in the terminal: the path, the avatar
// walking towards its target and milestone celebrations.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harunkazanli9/beontrack/internal/clock"
	"github.com/harunkazanli9/beontrack/internal/milestone"
	"github.com/harunkazanli9/beontrack/internal/progress"
	"github.com/harunkazanli9/beontrack/internal/tui/components"
)

const (
	// FrameInterval is the animation frame period
	FrameInterval = time.Second / 30

	// arrivalEpsilon is how close the avatar must get to count as arrived
	arrivalEpsilon = 0.1
)

// Journey is the part of the progress controller the view needs
type Journey interface {
	Stats() progress.Stats
	Markers() []progress.Marker
	Path() progress.PathView
	NextMilestone() (milestone.Definition, bool)
	PreviousMilestone() (milestone.Definition, bool)
	ArrivalReported()
	State() progress.State
}

// Options configures the model
type Options struct {
	// AvatarSpeed is the distance the avatar covers per frame
	AvatarSpeed float64
	// PopupDuration is how long a milestone popup stays up
	PopupDuration time.Duration
	// Events is the controller subscription the model listens on
	Events <-chan progress.Event
	Clock  clock.Clock

	// OnAdd records a workout; the resulting events arrive on Events
	OnAdd  func() error
	OnQuit func()
}

// Model is the journey view
type Model struct {
	journey Journey
	events  <-chan progress.Event
	clock   clock.Clock

	// Avatar is the distance the avatar is drawn at, Target where it walks to
	Avatar float64
	Target float64
	Moving bool
	speed  float64

	Popup         *progress.MilestoneReached
	popupID       int
	popupDuration time.Duration

	ErrorMsg string

	Spinner spinner.Model
	Canvas  *components.Canvas
	Feed    *components.Feed
	Width   int
	Height  int

	OnAdd  func() error
	OnQuit func()
}

// NewModel creates the journey view with the avatar standing at the
// current journey distance
func NewModel(j Journey, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.AvatarSpeed <= 0 {
		opts.AvatarSpeed = 3
	}
	// leave headroom above the curve's amplitude for the avatar and markers
	extent := j.Path().Params().CurveAmplitude * 1.5
	if extent <= 0 {
		extent = 1
	}

	distance := j.Stats().Distance
	return Model{
		journey:       j,
		events:        opts.Events,
		clock:         opts.Clock,
		Avatar:        distance,
		Target:        distance,
		speed:         opts.AvatarSpeed,
		popupDuration: opts.PopupDuration,
		Spinner:       s,
		Canvas:        components.NewCanvas(76, 11, extent),
		Feed:          components.NewFeed(80, 7).WithTitle("Activity"),
		Width:         80,
		Height:        24,
		OnAdd:         opts.OnAdd,
		OnQuit:        opts.OnQuit,
	}
}

// Messages
type (
	// EventMsg carries a controller event into the update loop
	EventMsg struct {
		Event progress.Event
	}

	// eventsClosedMsg means the subscription was closed
	eventsClosedMsg struct{}

	// FrameMsg advances the avatar animation by one frame
	FrameMsg time.Time

	// DismissPopupMsg hides the popup with the given id. A newer popup
	// carries a newer id, so an older dismiss does nothing.
	DismissPopupMsg struct {
		ID int
	}
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		waitForEvent(m.events),
	)
}

func waitForEvent(events <-chan progress.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return EventMsg{Event: ev}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func dismissCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return DismissPopupMsg{ID: id}
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.OnQuit != nil {
				m.OnQuit()
			}
			return m, tea.Quit
		case "a":
			if m.OnAdd != nil {
				if err := m.OnAdd(); err != nil {
					m.ErrorMsg = err.Error()
					m.Feed.Add(m.clock.Now(), components.FeedError, err.Error())
				} else {
					m.ErrorMsg = ""
				}
			}
		case "esc", "enter":
			m.Popup = nil
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Canvas.Width = max(msg.Width-4, 10)
		m.Feed.Width = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case EventMsg:
		cmd := m.handleEvent(msg.Event)
		return m, tea.Batch(cmd, waitForEvent(m.events))

	case eventsClosedMsg:
		m.events = nil

	case FrameMsg:
		return m, m.step()

	case DismissPopupMsg:
		if msg.ID == m.popupID {
			m.Popup = nil
		}
	}

	return m, nil
}

func (m *Model) handleEvent(ev progress.Event) tea.Cmd {
	now := m.clock.Now()

	switch ev := ev.(type) {
	case progress.AvatarTarget:
		m.Target = ev.Distance
		m.Feed.Add(now, components.FeedWorkout,
			fmt.Sprintf("Workout #%d, walking to %.0f", ev.TotalWorkouts, ev.Distance))
		if !m.Moving {
			m.Moving = true
			return frameCmd()
		}

	case progress.MilestoneReached:
		m.popupID++
		m.Popup = &ev
		m.Feed.Add(now, components.FeedMilestone,
			fmt.Sprintf("%s %s", ev.Milestone.Icon, ev.Milestone.Title))
		if m.popupDuration > 0 {
			return dismissCmd(m.popupID, m.popupDuration)
		}
	}
	return nil
}

// step moves the avatar one frame towards its target and reports arrival
// to the journey once it gets there
func (m *Model) step() tea.Cmd {
	if !m.Moving {
		return nil
	}

	m.Avatar = MoveTowards(m.Avatar, m.Target, m.speed)
	if math.Abs(m.Target-m.Avatar) < arrivalEpsilon {
		m.Avatar = m.Target
		m.Moving = false
		m.journey.ArrivalReported()
		return nil
	}
	return frameCmd()
}

// MoveTowards moves current towards target by at most maxDelta
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCanvas())
	b.WriteString("\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if m.Popup != nil {
		b.WriteString(m.renderPopup())
		b.WriteString("\n")
	}

	b.WriteString(m.Feed.Render())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	s := m.journey.Stats()

	title := TitleStyle.Render("BeOnTrack")
	info := MutedStyle.Render(fmt.Sprintf("  %d workouts • %d day streak (best %d) • %d this week",
		s.TotalWorkouts, s.CurrentStreak, s.LongestStreak, s.ThisWeek))

	return BoxStyle.Render(title + info)
}

func (m Model) renderCanvas() string {
	path := m.journey.Path()

	m.Canvas.Points = path.Points()
	m.Canvas.WalkedIndex = path.IndexAt(m.Avatar)
	m.Canvas.Avatar = path.PointAt(m.Avatar)
	m.Canvas.Markers = m.Canvas.Markers[:0]
	for _, mk := range m.journey.Markers() {
		m.Canvas.Markers = append(m.Canvas.Markers, components.CanvasMarker{
			Position: mk.Position,
			Reached:  mk.Reached,
		})
	}

	return CanvasBoxStyle.Render(m.Canvas.Render())
}

func (m Model) renderProgress() string {
	next, ok := m.journey.NextMilestone()
	if !ok {
		return HighlightStyle.Render("Every milestone reached. Keep walking!")
	}

	base := 0
	if prev, ok := m.journey.PreviousMilestone(); ok {
		base = prev.Threshold
	}
	total := m.journey.Stats().TotalWorkouts

	pb := components.NewProgressBar(total-base, next.Threshold-base, 30).
		WithLabel(BoldStyle.Render(fmt.Sprintf("Next: %s %s", next.Icon, next.Title)))
	return pb.Render()
}

func (m Model) renderStatus() string {
	var b strings.Builder

	b.WriteString(BoldStyle.Render("Status: "))
	switch {
	case m.Popup != nil:
		b.WriteString(StatusBadge("celebrating"))
	case m.journey.State() == progress.StateAdvancing:
		b.WriteString(StatusBadge("advancing"))
		b.WriteString(" ")
		b.WriteString(m.Spinner.View())
	default:
		b.WriteString(StatusBadge("idle"))
	}
	b.WriteString(MutedStyle.Render(fmt.Sprintf("  %.0f steps", m.Avatar)))

	if m.ErrorMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("Error: " + m.ErrorMsg))
	}

	return b.String()
}

func (m Model) renderPopup() string {
	p := m.Popup.Milestone
	return components.Popup{
		Icon:      p.Icon,
		Title:     p.Title,
		Color:     p.Color,
		Threshold: p.Threshold,
		Width:     min(m.Width-4, 50),
	}.Render()
}

func (m Model) renderHelp() string {
	keys := []string{"[a] Add workout"}
	if m.Popup != nil {
		keys = append(keys, "[esc] Close")
	}
	keys = append(keys, "[q] Quit")
	return HelpStyle.Render(strings.Join(keys, "  "))
}
