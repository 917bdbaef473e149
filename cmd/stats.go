package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/harunkazanli9/beontrack/internal/progress"
	"github.com/harunkazanli9/beontrack/internal/tui/components"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workout statistics",
	Long:  `Stats prints totals, streaks, this week and month, and a breakdown by workout type.`,
	Run:   runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	a, err := openApp(context.Background())
	if err != nil {
		exitWithError("Failed to start", err)
	}
	defer a.close()

	fmt.Print(formatStats(a.controller.Stats()))
}

func formatStats(s progress.Stats) string {
	out := fmt.Sprintf("%s %d\n", boldStyle.Render("Workouts:      "), s.TotalWorkouts)
	out += fmt.Sprintf("%s %d min (avg %.1f)\n", boldStyle.Render("Time:          "), s.TotalMinutes, s.AverageDuration)
	out += fmt.Sprintf("%s %d days (best %d)\n", boldStyle.Render("Streak:        "), s.CurrentStreak, s.LongestStreak)
	out += fmt.Sprintf("%s %d\n", boldStyle.Render("This week:     "), s.ThisWeek)
	out += fmt.Sprintf("%s %d\n", boldStyle.Render("This month:    "), s.ThisMonth)
	out += fmt.Sprintf("%s %d\n", boldStyle.Render("Active days:   "), s.ActiveDays)
	out += fmt.Sprintf("%s %.0f steps\n", boldStyle.Render("Distance:      "), s.Distance)

	if len(s.ByType) == 0 {
		return out
	}

	out += "\n" + dimStyle.Render("By type:") + "\n"
	types := lo.Keys(s.ByType)
	slices.SortFunc(types, func(a, b string) int {
		if s.ByType[a] != s.ByType[b] {
			return s.ByType[b] - s.ByType[a]
		}
		if a < b {
			return -1
		}
		return 1
	})
	for _, t := range types {
		n := s.ByType[t]
		bar := components.NewMiniProgressBar(n, s.TotalWorkouts, 10)
		out += fmt.Sprintf("  %-10s %s %d\n", t, bar.Render(), n)
	}
	return out
}
