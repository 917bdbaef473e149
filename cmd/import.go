package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/harunkazanli9/beontrack/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <pattern>",
	Short: "Import workouts from JSON or YAML files",
	Long: `Import reads workouts from every file matching the pattern. Patterns support
** for recursive matches, e.g. "logs/**/*.yaml".

Files hold either a list of workouts or an object with a "workouts" list:

  - date: 2026-10-01
    type: Strength
    durationMinutes: 45
    notes: optional

Invalid files and entries are reported; everything valid is still imported.
Entries whose id is already in your log are skipped.`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	cwd, err := os.Getwd()
	if err != nil {
		exitWithError("Failed to get current directory", err)
	}

	a, err := openApp(ctx)
	if err != nil {
		exitWithError("Failed to start", err)
	}
	defer a.close()

	res, importErr := importer.New(cwd, a.controller.Entries()).Import(args[0])
	if len(res.Files) == 0 {
		a.fail("Nothing to import", importErr)
	}

	for _, e := range multierr.Errors(importErr) {
		fmt.Printf("  %s %s\n", warnStyle.Render("!"), e.Error())
	}

	if len(res.Entries) == 0 {
		fmt.Printf("%s No new workouts in %d files (%d duplicates)\n",
			warnStyle.Render("!"), len(res.Files), res.Duplicates)
		return
	}

	events, n, err := a.record(ctx, res.Entries)
	if err != nil {
		a.fail("Import failed", err)
	}

	fmt.Printf("%s Imported %d workouts from %d files", successStyle.Render("✓"), n, len(res.Files))
	if res.Duplicates > 0 || res.Invalid > 0 {
		fmt.Print(dimStyle.Render(fmt.Sprintf(" (%d duplicates, %d invalid skipped)", res.Duplicates, res.Invalid)))
	}
	fmt.Println()
	printEvents(events)
}
