package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"topofix-hq/topofix/pkg/archive"
	"topofix-hq/topofix/pkg/archive/export"
	"topofix-hq/topofix/pkg/archive/retention"
	"topofix-hq/topofix/pkg/cli"
)

var historyFlags struct {
	listLimit   int
	exportLimit int
	status      string
	since       time.Duration
	format      string
	output      string
	pretty      bool
	olderThan   time.Duration
	show        string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the run archive",
	Long: `Inspect archived analysis runs.

Subcommands:
  list    - List archived runs
  show    - Show one run by ID
  export  - Export runs as CSV or JSON
  prune   - Delete runs older than the retention cutoff

Examples:
  # List the most recent runs
  topofix history list

  # List only degraded runs from the last day
  topofix history list --status degraded --since 24h

  # Show one run
  topofix history show 2f1c9a7e-54d3-4f8a-9c3b-8e2a6d1b0c44

  # Export the last week of runs to CSV
  topofix history export --since 168h --format csv --output runs.csv

  # Prune runs older than 30 days
  topofix history prune --older-than 720h`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs",
	Long: `List archived runs, newest first.

Examples:
  # List the 20 most recent runs
  topofix history list

  # List failed runs only
  topofix history list --status failed

  # List runs from the last hour
  topofix history list --since 1h`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one archived run",
	Long: `Show the full record of one archived run.

Examples:
  # Show a run as text
  topofix history show 2f1c9a7e-54d3-4f8a-9c3b-8e2a6d1b0c44

  # Show a run as JSON
  topofix history show 2f1c9a7e-54d3-4f8a-9c3b-8e2a6d1b0c44 --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archived runs",
	Long: `Export archived runs as CSV or JSON, to a file or stdout.

Examples:
  # Export everything as JSON to stdout
  topofix history export

  # Export the last day of runs to a CSV file
  topofix history export --since 24h --format csv --output runs.csv`,
	RunE: runHistoryExport,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old archived runs",
	Long: `Delete archived runs older than a cutoff.

Without --older-than the configured retention period applies.

Examples:
  # Prune with the configured retention period
  topofix history prune

  # Prune runs older than 30 days
  topofix history prune --older-than 720h`,
	RunE: runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyExportCmd, historyPruneCmd)

	// Flags for list
	historyListCmd.Flags().IntVar(&historyFlags.listLimit, "limit", 20, "max runs listed (0 for unlimited)")
	historyListCmd.Flags().StringVar(&historyFlags.status, "status", "", "filter by status (success, degraded, failed)")
	historyListCmd.Flags().DurationVar(&historyFlags.since, "since", 0, "only runs started within this window (e.g. 24h)")

	// Flags for show
	historyShowCmd.Flags().StringVarP(&historyFlags.show, "output", "o", "text", "output format: text, json")

	// Flags for export
	historyExportCmd.Flags().IntVar(&historyFlags.exportLimit, "limit", 0, "max runs exported (0 for unlimited)")
	historyExportCmd.Flags().StringVar(&historyFlags.status, "status", "", "filter by status (success, degraded, failed)")
	historyExportCmd.Flags().DurationVar(&historyFlags.since, "since", 0, "only runs started within this window (e.g. 24h)")
	historyExportCmd.Flags().StringVar(&historyFlags.format, "format", "json", "export format: csv, json")
	historyExportCmd.Flags().StringVarP(&historyFlags.output, "output", "o", "", "output file (default: stdout)")
	historyExportCmd.Flags().BoolVar(&historyFlags.pretty, "pretty", false, "indent JSON output")

	// Flags for prune
	historyPruneCmd.Flags().DurationVar(&historyFlags.olderThan, "older-than", 0, "delete runs older than this (e.g. 720h)")
}

// historyStorage opens the archive backend for inspection. Unlike
// analyze and watch it ignores archive.enabled so an operator can read
// a database left behind by earlier runs.
func historyStorage() (archive.Storage, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := setupLogging(cfg); err != nil {
		return nil, err
	}
	return openArchiveStorage(cfg)
}

// historyFilter builds the run filter shared by list and export.
func historyFilter(limit int) *archive.Filter {
	filter := &archive.Filter{
		Limit:  limit,
		Status: historyFlags.status,
	}
	if historyFlags.since > 0 {
		since := time.Now().Add(-historyFlags.since)
		filter.Since = &since
	}
	return filter
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := historyStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background(), historyFilter(historyFlags.listLimit))
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %-8s  %6s  %6s  %9s\n",
		"ID", "STARTED", "STATUS", "ERRORS", "ANGLES", "DIHEDRALS")
	for _, run := range runs {
		fmt.Printf("%-36s  %-19s  %-8s  %6d  %6d  %9d\n",
			run.ID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Status,
			run.TotalErrors,
			run.AngleDummies,
			run.DihedralDummies)
	}
	fmt.Printf("\n%d run(s)\n", len(runs))

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := historyStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Get(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			return fmt.Errorf("run %s not found", args[0])
		}
		return fmt.Errorf("loading run: %w", err)
	}

	if historyFlags.show == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(os.Stdout, run)
	}

	fmt.Printf("Run ID: %s\n", run.ID)
	fmt.Printf("Status: %s\n", run.Status)
	fmt.Printf("Started: %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Printf("Completed: %s\n", run.CompletedAt.Format(time.RFC3339))
	fmt.Printf("Duration: %s\n", run.Duration())
	fmt.Printf("Error file: %s\n", run.ErrorFile)
	fmt.Printf("Topology file: %s\n", run.TopologyFile)
	fmt.Printf("Errors: %d parsed, %d processed\n", run.TotalErrors, run.ProcessedErrors)
	fmt.Printf("Dummies: %d angle(s), %d dihedral(s)\n", run.AngleDummies, run.DihedralDummies)

	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := historyStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	runs, err := store.List(ctx, historyFilter(historyFlags.exportLimit))
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	var exporter archive.Exporter
	switch historyFlags.format {
	case "csv":
		exporter = export.NewCSVExporter(true)
	case "json":
		exporter = export.NewJSONExporter(historyFlags.pretty)
	default:
		return cli.NewUsageError(fmt.Errorf("unsupported export format: %s (supported: csv, json)", historyFlags.format))
	}

	out := os.Stdout
	if historyFlags.output != "" {
		out, err = os.Create(historyFlags.output)
		if err != nil {
			return cli.NewWriteError(fmt.Errorf("failed to create output file: %w", err))
		}
		defer out.Close()
	}

	if err := exporter.Export(ctx, runs, out); err != nil {
		return cli.NewWriteError(err)
	}

	if historyFlags.output != "" {
		fmt.Printf("Exported %d run(s) to %s\n", len(runs), historyFlags.output)
	}

	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	store, err := openArchiveStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	pruner := retention.NewPruner(store, &retention.Config{
		RetentionDays: cfg.Archive.RetentionDays,
	})

	ctx := context.Background()
	var deleted int64
	if historyFlags.olderThan > 0 {
		deleted, err = pruner.PruneBefore(ctx, time.Now().Add(-historyFlags.olderThan))
	} else {
		deleted, err = pruner.Prune(ctx)
	}
	if err != nil {
		return fmt.Errorf("pruning runs: %w", err)
	}

	fmt.Printf("Pruned %d run(s).\n", deleted)
	return nil
}
