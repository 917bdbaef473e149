package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harunkazanli9/beontrack/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Init writes the default configuration to ~/.beontrack/config.yaml, or to
--config when given. --data-dir and --store are written into the file.
An existing file is kept unless --force is set.`,
	Run: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	if err := writeDefaultConfig(path, initForce); err != nil {
		exitWithError("Failed to write config", err)
	}
	fmt.Printf("%s Wrote %s\n", successStyle.Render("✓"), path)
}

// writeDefaultConfig saves the defaults plus any --data-dir and --store
// overrides to path
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := config.Default()
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	if storeKind != "" {
		cfg.Storage.Kind = storeKind
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return config.Save(cfg, path)
}
