package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all workouts and start a new journey",
	Long:  `Reset wipes the workout log, the journal and every celebrated milestone.`,
	Run:   runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	a, err := openApp(ctx)
	if err != nil {
		exitWithError("Failed to start", err)
	}
	defer a.close()

	total := a.controller.Stats().TotalWorkouts
	if !resetYes {
		var confirm bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %d workouts?", total)).
					Description("Your journey starts over. This cannot be undone.").
					Affirmative("Yes, reset").
					Negative("No, keep them").
					Value(&confirm),
			),
		)

		if err := form.Run(); err != nil || !confirm {
			fmt.Println("Cancelled")
			a.close()
			os.Exit(0)
		}
	}

	if err := a.store.Clear(ctx); err != nil {
		a.fail("Failed to clear workouts", err)
	}
	if err := a.journal.Remove(); err != nil {
		a.fail("Failed to remove journal", err)
	}
	a.controller.Reset()

	fmt.Printf("%s Removed %d workouts, the journey starts again\n", successStyle.Render("✓"), total)
}
