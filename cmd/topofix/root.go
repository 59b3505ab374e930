package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"topofix-hq/topofix/pkg/cli"
	"topofix-hq/topofix/pkg/config"
	"topofix-hq/topofix/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "topofix",
	Short: "Topofix - topology error correlation and repair",
	Long: `Topofix correlates topology preprocessor diagnostics with the molecular
topology file they refer to.

For every diagnostic it identifies the owning section, the atoms on the
offending line, and their residues and atom types, then generates
placeholder parameters so the preprocessor can run to completion:
  - Analysis report with per-error section and atom detail
  - Dummy angle and dihedral parameter rows, deduplicated and sorted
  - A persistent archive of past runs
  - A watch mode that re-runs on input changes

For more information, visit: https://github.com/topofix-hq/topofix`,
	Version: Version,
}

// Execute runs the root command. Process exit codes follow the error
// taxonomy: 0 success, 1 generic failure, 2 usage, 3 unreadable input,
// 4 output write failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (built-in defaults when unset)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Disable default completion command (we add our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig initializes the process configuration from the --config file
// when one was given, or from built-in defaults plus environment overrides
// otherwise.
func loadConfig() (*config.Config, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewUsageError(fmt.Errorf("failed to load config: %w", err))
	}
	return config.GetConfig(), nil
}

// setupLogging installs the process-wide structured logger described by the
// logging section of the configuration. The --verbose flag forces the level
// down to debug.
func setupLogging(cfg *config.Config) error {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return cli.NewUsageError(err)
	}
	logger.SetDefault()

	return nil
}
