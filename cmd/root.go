package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
	storeKind  string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "beontrack",
	Short: "Turn your workout log into a journey",
	Long: `BeOnTrack turns completed workouts into steps along a winding path.

Every workout moves your avatar forward, streaks keep you honest and
milestones celebrate the road behind you. Workouts are stored locally in
~/.beontrack (JSON by default, SQLite with --store sqlite).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.beontrack/config.yaml)")
	flags.StringVar(&dataDir, "data-dir", "", "directory holding workouts and the journal")
	flags.StringVar(&storeKind, "store", "", "storage backend: json or sqlite")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// exitWithError prints an error message and exits
func exitWithError(msg string, err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗")+" "+msg)
	if err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render("  "+err.Error()))
	}
	os.Exit(1)
}
