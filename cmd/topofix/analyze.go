package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"topofix-hq/topofix/pkg/analysis"
	"topofix-hq/topofix/pkg/archive"
	"topofix-hq/topofix/pkg/archive/storage"
	"topofix-hq/topofix/pkg/cli"
	"topofix-hq/topofix/pkg/config"
	"topofix-hq/topofix/pkg/telemetry/metrics"
)

var analyzeFlags struct {
	errorFile    string
	topologyFile string
	reportFile   string
	paramsFile   string
	display      int
	noArchive    bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis over the diagnostic log and topology",
	Long: `Run one analysis pass: parse the preprocessor diagnostics, correlate
each error with its topology section and atoms, write the analysis report,
and generate placeholder parameters for the missing interactions.

Examples:
  # Analyze with the default input locations
  topofix analyze

  # Analyze specific files
  topofix analyze --errors run7/errors.txt --topology run7/topol.top

  # Write outputs elsewhere and narrate more errors on the console
  topofix analyze --report /tmp/report.txt --display 25

  # Skip archiving this run
  topofix analyze --no-archive`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFlags.errorFile, "errors", "", "override diagnostic log path")
	analyzeCmd.Flags().StringVar(&analyzeFlags.topologyFile, "topology", "", "override topology file path")
	analyzeCmd.Flags().StringVar(&analyzeFlags.reportFile, "report", "", "override analysis report path")
	analyzeCmd.Flags().StringVar(&analyzeFlags.paramsFile, "params", "", "override dummy parameter file path")
	analyzeCmd.Flags().IntVar(&analyzeFlags.display, "display", 10, "number of correlated errors narrated on the console")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.noArchive, "no-archive", false, "do not record this run in the archive")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	// Apply flag overrides
	if analyzeFlags.errorFile != "" {
		cfg.Inputs.ErrorFile = analyzeFlags.errorFile
	}
	if analyzeFlags.topologyFile != "" {
		cfg.Inputs.TopologyFile = analyzeFlags.topologyFile
	}
	if analyzeFlags.reportFile != "" {
		cfg.Outputs.ReportFile = analyzeFlags.reportFile
	}
	if analyzeFlags.paramsFile != "" {
		cfg.Outputs.ParamsFile = analyzeFlags.paramsFile
	}
	if cmd.Flags().Changed("display") {
		cfg.Display.ErrorsShown = analyzeFlags.display
	}

	var recorder *archive.Recorder
	if cfg.Archive.Enabled && !analyzeFlags.noArchive {
		store, err := openArchiveStorage(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = archive.NewRecorder(store)
	}

	result, runErr := executeRun(cfg, recorder, nil)

	printRunSummary(result, runErr)

	if runErr != nil {
		return cli.NewWriteError(runErr)
	}
	if result.Degraded() {
		return cli.NewInputError(fmt.Errorf("unreadable input: %s",
			strings.Join(result.UnreadableInputs, ", ")))
	}
	return nil
}

// executeRun performs one analysis with the configured inputs, archives the
// run when a recorder is present, and observes metrics when a collector is
// present. The analysis result is returned alongside any output write error.
func executeRun(cfg *config.Config, recorder *archive.Recorder, collector *metrics.Collector) (*analysis.Result, error) {
	runCfg := &analysis.Config{
		ErrorFile:    cfg.Inputs.ErrorFile,
		TopologyFile: cfg.Inputs.TopologyFile,
		ReportFile:   cfg.Outputs.ReportPath(),
		ParamsFile:   cfg.Outputs.ParamsPath(),
		DisplayCount: cfg.Display.ErrorsShown,
	}
	if cfg.Display.Quiet {
		runCfg.Console = io.Discard
	}

	var run *archive.Run
	if recorder != nil {
		run = recorder.Begin(runCfg.ErrorFile, runCfg.TopologyFile)
	}

	runner := analysis.NewRunner(runCfg)
	result, runErr := runner.Run()

	status := runStatus(result, runErr)

	if collector != nil {
		collector.RecordRun(status, result.Duration)
		collector.RecordErrorsParsed(len(result.Errors))
		recordSkips(collector, "no_atom_types", result.Stats.SkippedNoAtomTypes)
		recordSkips(collector, "unclassified", result.Stats.SkippedUnknown)
		recordSkips(collector, "wrong_arity", result.Stats.SkippedWrongArity)
		collector.RecordDummyParameters("angle", len(result.Dummies.Angles))
		collector.RecordDummyParameters("dihedral", len(result.Dummies.Dihedrals))
	}

	if run != nil {
		run.TotalErrors = len(result.Errors)
		run.ProcessedErrors = result.Stats.Processed
		run.AngleDummies = len(result.Dummies.Angles)
		run.DihedralDummies = len(result.Dummies.Dihedrals)
		run.Status = status

		// Archiving failures are logged by the recorder and never fail
		// the analysis itself.
		_ = recorder.Record(context.Background(), run)
	}

	return result, runErr
}

// runStatus maps an analysis outcome onto an archive run status.
func runStatus(result *analysis.Result, err error) string {
	switch {
	case err != nil:
		return archive.StatusFailed
	case result.Degraded():
		return archive.StatusDegraded
	default:
		return archive.StatusSuccess
	}
}

// recordSkips counts a batch of skipped records under one reason label.
func recordSkips(collector *metrics.Collector, reason string, count int) {
	for i := 0; i < count; i++ {
		collector.RecordErrorSkipped(reason)
	}
}

// printRunSummary prints the closing checkmark summary for one run.
func printRunSummary(result *analysis.Result, runErr error) {
	fmt.Println()
	if runErr == nil && !result.Degraded() {
		fmt.Println("✓ Analysis complete")
	}
	for _, path := range result.UnreadableInputs {
		fmt.Printf("✗ Unreadable input: %s\n", path)
	}
	if runErr != nil {
		fmt.Printf("✗ Output write failed: %v\n", runErr)
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d error(s) parsed, %d processed\n", len(result.Errors), result.Stats.Processed)
	fmt.Printf("  %d angle and %d dihedral dummy parameter(s)\n",
		len(result.Dummies.Angles), len(result.Dummies.Dihedrals))
}

// openArchiveStorage opens the run archive backend named by the
// configuration.
func openArchiveStorage(cfg *config.Config) (archive.Storage, error) {
	switch cfg.Archive.Backend {
	case "sqlite":
		return storage.NewSQLiteStorage(&storage.SQLiteConfig{Path: cfg.Archive.Path})
	case "memory", "":
		return storage.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported archive backend: %s (supported: memory, sqlite)", cfg.Archive.Backend)
	}
}
