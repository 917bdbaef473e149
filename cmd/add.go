package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/harunkazanli9/beontrack/internal/workout"
)

var (
	addType     string
	addDuration int
	addNotes    string
	addDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a completed workout",
	Long: `Add records a workout and moves your avatar forward.

Without --type and --duration an interactive form asks for them. The date
defaults to today; use --date YYYY-MM-DD to log a past workout.`,
	Run: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "workout type, e.g. Strength or Running")
	addCmd.Flags().IntVarP(&addDuration, "duration", "d", 0, "duration in minutes")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "free text notes")
	addCmd.Flags().StringVar(&addDate, "date", "", "workout date (YYYY-MM-DD), default today")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if addType == "" || addDuration <= 0 {
		if err := promptWorkout(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled")
				os.Exit(0)
			}
			exitWithError("Failed to read workout", err)
		}
	}

	entry := workout.Entry{
		Type:            strings.TrimSpace(addType),
		DurationMinutes: addDuration,
		Notes:           addNotes,
	}
	if addDate != "" {
		date, err := time.ParseInLocation(time.DateOnly, addDate, time.Local)
		if err != nil {
			exitWithError("Invalid --date, expected YYYY-MM-DD", err)
		}
		entry.Date = date
	}

	a, err := openApp(ctx)
	if err != nil {
		exitWithError("Failed to start", err)
	}
	defer a.close()

	events, _, err := a.record(ctx, []workout.Entry{entry})
	if err != nil {
		if errors.Is(err, workout.ErrInvalidEntry) {
			a.fail("Workout not recorded", err)
		}
		printEvents(events)
		a.fail("Workout recorded but not saved", err)
	}

	stats := a.controller.Stats()
	fmt.Printf("%s Logged %s, %d min\n", successStyle.Render("✓"), entry.Type, entry.DurationMinutes)
	printEvents(events)
	fmt.Println(dimStyle.Render(fmt.Sprintf("  Streak: %d days (best %d)", stats.CurrentStreak, stats.LongestStreak)))
}

func promptWorkout() error {
	if addType == "" {
		addType = workout.TypeStrength
	}
	duration := ""
	if addDuration > 0 {
		duration = strconv.Itoa(addDuration)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Workout type").
				Options(huh.NewOptions(workout.KnownTypes()...)...).
				Value(&addType),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("45").
				Validate(validateDuration).
				Value(&duration),
			huh.NewInput().
				Title("Notes").
				Description("Optional").
				Value(&addNotes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return err
	}
	addDuration = n
	return nil
}

func validateDuration(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number of minutes")
	}
	return nil
}
