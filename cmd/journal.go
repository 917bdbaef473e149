package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harunkazanli9/beontrack/internal/progress"
)

var journalLast int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the workout journal",
	Long: `Journal prints the human readable record written for every workout,
including the milestones it reached. Use --last to show only the most
recent records.`,
	Run: runJournal,
}

func init() {
	journalCmd.Flags().IntVarP(&journalLast, "last", "n", 0, "show only the last n records")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError("Invalid configuration", err)
	}

	journal := progress.NewJournal(cfg.Storage.DataDir)
	if !journal.Exists() {
		fmt.Println(dimStyle.Render("No journal yet. Record a workout with 'beontrack add'."))
		return
	}

	content, err := journal.Read()
	if err != nil {
		exitWithError("Failed to read journal", err)
	}
	fmt.Print(lastRecords(content, journalLast))
}

// lastRecords keeps the last n journal records, all of them when n <= 0
func lastRecords(content string, n int) string {
	if n <= 0 {
		return content
	}

	records := strings.Split(content, progress.JournalRule+"\n")
	// anything before the first rule is not a record
	records = records[1:]
	if n < len(records) {
		records = records[len(records)-n:]
	}

	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(progress.JournalRule + "\n")
		sb.WriteString(r)
	}
	return sb.String()
}
