package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harunkazanli9/beontrack/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version, build time, and git commit of BeOnTrack.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(version.Info())
}
