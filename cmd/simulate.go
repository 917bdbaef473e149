package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harunkazanli9/beontrack/internal/sample"
	"github.com/harunkazanli9/beontrack/internal/workout"
)

var (
	simulateCount   int
	simulateHistory int
	simulateSeed    int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Record simulated workouts",
	Long: `Simulate records random workouts so you can try the journey without real data.

By default one strength workout of 30 to 90 minutes is added for today.
--history N instead fills the last N days, each with a 60% chance of a workout.`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&simulateCount, "count", "c", 1, "number of workouts to add for today")
	simulateCmd.Flags().IntVar(&simulateHistory, "history", 0, "fill the last N days with sample workouts")
	simulateCmd.Flags().Int64Var(&simulateSeed, "seed", 0, "random seed (0 picks one)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	a, err := openApp(ctx)
	if err != nil {
		exitWithError("Failed to start", err)
	}
	defer a.close()

	gen := sample.New(simulateSeed)
	now := a.clock.Now()

	var entries []workout.Entry
	if simulateHistory > 0 {
		entries = gen.History(now, simulateHistory)
	} else {
		for i := 0; i < max(simulateCount, 1); i++ {
			entries = append(entries, gen.Workout(now))
		}
	}
	if len(entries) == 0 {
		fmt.Println(warnStyle.Render("!") + " No workouts generated, try a longer --history")
		a.close()
		os.Exit(0)
	}

	events, n, err := a.record(ctx, entries)
	if err != nil {
		a.fail("Failed to record simulated workouts", err)
	}

	fmt.Printf("%s Simulated %d workouts\n", successStyle.Render("✓"), n)
	printEvents(events)
}
