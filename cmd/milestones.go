package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harunkazanli9/beontrack/internal/progress"
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "List milestones and where they sit on the path",
	Run:   runMilestones,
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
}

func runMilestones(cmd *cobra.Command, args []string) {
	a, err := openApp(context.Background())
	if err != nil {
		exitWithError("Failed to start", err)
	}
	defer a.close()

	fmt.Print(formatMilestones(a.controller.Markers(), a.controller.Stats().TotalWorkouts))
}

func formatMilestones(markers []progress.Marker, total int) string {
	var out string
	for _, m := range markers {
		mark := dimStyle.Render("○")
		remaining := dimStyle.Render(fmt.Sprintf("%d to go", m.Threshold-total))
		if m.Reached {
			mark = successStyle.Render("✓")
			remaining = ""
		}
		out += fmt.Sprintf("%s %s %-18s %4d workouts  at %5.0f steps  %s\n",
			mark, m.Icon, m.Title, m.Threshold, m.Distance, remaining)
	}
	return out
}
