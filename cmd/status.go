package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harunkazanli9/beontrack/internal/sample"
	"github.com/harunkazanli9/beontrack/internal/tui"
	"github.com/harunkazanli9/beontrack/internal/tui/components"
	"github.com/harunkazanli9/beontrack/internal/workout"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your journey",
	Long: `Status opens the journey view: the path you walked, the milestones ahead
and your current streak.

Keys:
  a    add a simulated workout
  esc  close a milestone popup
  q    quit`,
	Run: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	a, err := openApp(ctx)
	if err != nil {
		exitWithError("Failed to start", err)
	}
	defer a.close()

	gen := sample.New(0)
	model := tui.NewModel(a.controller, tui.Options{
		AvatarSpeed:   a.cfg.Journey.AvatarSpeed,
		PopupDuration: time.Duration(a.cfg.Journey.PopupSeconds * float64(time.Second)),
		Events:        a.controller.Subscribe(32),
		Clock:         a.clock,
		OnAdd: func() error {
			_, _, err := a.record(ctx, []workout.Entry{gen.Workout(a.clock.Now())})
			return err
		},
	})

	for _, e := range lastEntries(a.controller.Entries(), 5) {
		model.Feed.Add(e.Date, components.FeedWorkout, fmt.Sprintf("%s, %d min", e.Type, e.DurationMinutes))
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		a.fail("Error running journey view", err)
	}
}

func lastEntries(entries []workout.Entry, n int) []workout.Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
