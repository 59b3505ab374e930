package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"topofix-hq/topofix/pkg/archive"
	"topofix-hq/topofix/pkg/archive/retention"
	"topofix-hq/topofix/pkg/cli"
	"topofix-hq/topofix/pkg/config"
	"topofix-hq/topofix/pkg/telemetry/health"
	"topofix-hq/topofix/pkg/telemetry/logging"
	"topofix-hq/topofix/pkg/telemetry/metrics"
	"topofix-hq/topofix/pkg/watch"
)

var watchFlags struct {
	errorFile         string
	topologyFile      string
	reportFile        string
	paramsFile        string
	display           int
	noArchive         bool
	metricsAddr       string
	debounce          time.Duration
	retentionSchedule string
	retentionDays     int
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the analysis whenever an input file changes",
	Long: `Watch the diagnostic log and topology file and re-run the analysis
whenever either changes.

An initial analysis runs at startup. After that, file change bursts are
debounced and each quiet period triggers one re-run. Watch mode serves
Prometheus metrics on /metrics plus /healthz and /readyz probes, and
prunes the run archive on the configured schedule.

Examples:
  # Watch with the default configuration
  topofix watch

  # Watch specific inputs with a longer debounce
  topofix watch --errors run7/errors.txt --topology run7/topol.top --debounce 2s

  # Serve metrics elsewhere
  topofix watch --metrics-addr :9600

  # Prune archived runs older than 30 days every night at 2 AM
  topofix watch --retention-days 30 --retention-schedule "0 2 * * *"`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.errorFile, "errors", "", "override diagnostic log path")
	watchCmd.Flags().StringVar(&watchFlags.topologyFile, "topology", "", "override topology file path")
	watchCmd.Flags().StringVar(&watchFlags.reportFile, "report", "", "override analysis report path")
	watchCmd.Flags().StringVar(&watchFlags.paramsFile, "params", "", "override dummy parameter file path")
	watchCmd.Flags().IntVar(&watchFlags.display, "display", 10, "number of correlated errors narrated on the console")
	watchCmd.Flags().BoolVar(&watchFlags.noArchive, "no-archive", false, "do not record runs in the archive")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "metrics listen address (default \":9521\")")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 0, "debounce window for file change bursts (default 500ms)")
	watchCmd.Flags().StringVar(&watchFlags.retentionSchedule, "retention-schedule", "", "cron expression for archive pruning")
	watchCmd.Flags().IntVar(&watchFlags.retentionDays, "retention-days", 0, "prune archived runs older than this many days")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	// Apply flag overrides
	if watchFlags.errorFile != "" {
		cfg.Inputs.ErrorFile = watchFlags.errorFile
	}
	if watchFlags.topologyFile != "" {
		cfg.Inputs.TopologyFile = watchFlags.topologyFile
	}
	if watchFlags.reportFile != "" {
		cfg.Outputs.ReportFile = watchFlags.reportFile
	}
	if watchFlags.paramsFile != "" {
		cfg.Outputs.ParamsFile = watchFlags.paramsFile
	}
	if cmd.Flags().Changed("display") {
		cfg.Display.ErrorsShown = watchFlags.display
	}
	if watchFlags.metricsAddr != "" {
		cfg.Watch.MetricsAddr = watchFlags.metricsAddr
	}
	if watchFlags.debounce > 0 {
		cfg.Watch.DebounceMS = int(watchFlags.debounce.Milliseconds())
	}
	if watchFlags.retentionSchedule != "" {
		cfg.Archive.RetentionSchedule = watchFlags.retentionSchedule
	}
	if watchFlags.retentionDays > 0 {
		cfg.Archive.RetentionDays = watchFlags.retentionDays
	}

	ctx := cli.SetupSignalHandler()

	fmt.Printf("Topofix v%s\n", Version)
	if cfgFile != "" {
		fmt.Printf("Loading configuration from: %s\n", cfgFile)
	}
	fmt.Println("✓ Configuration loaded")

	// Archive storage, recorder, and the retention scheduler.
	var recorder *archive.Recorder
	var store archive.Storage
	if cfg.Archive.Enabled && !watchFlags.noArchive {
		store, err = openArchiveStorage(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = archive.NewRecorder(store)

		if cfg.Archive.RetentionSchedule != "" {
			pruner := retention.NewPruner(store, &retention.Config{
				RetentionDays: cfg.Archive.RetentionDays,
				PruneSchedule: cfg.Archive.RetentionSchedule,
			})
			if err := pruner.Start(ctx); err != nil {
				slog.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer pruner.Stop()
				if next := pruner.NextPruning(); next != nil {
					slog.Debug("archive retention scheduler started", "next_pruning", next)
				}
			}
		}

		fmt.Printf("✓ Archive initialized (%s)\n", cfg.Archive.Backend)
	}

	// Metrics and health probes.
	collector := metrics.NewCollector(nil)
	checker := health.New(2 * time.Second)
	checker.RegisterCheck("inputs", inputsCheck(cfg))
	if store != nil {
		checker.RegisterCheck("archive", archiveCheck(store))
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	checker.Register(mux)

	srv := &http.Server{Addr: cfg.Watch.MetricsAddr, Handler: mux}
	serverErrCh := make(chan error, 1)
	go func() {
		slog.Info("starting metrics server", "address", cfg.Watch.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
	}()
	fmt.Printf("✓ Metrics listening on %s\n", cfg.Watch.MetricsAddr)

	// Initial run. Watch mode stays up on degraded inputs or write
	// failures; a later file change gets another attempt.
	if _, runErr := executeRun(cfg, recorder, collector); runErr != nil {
		slog.Error("initial analysis failed", "error", runErr)
	}
	collector.MarkWatchRun(time.Now())

	watcher, err := watch.NewFileWatcher(&watch.Config{
		Paths:            []string{cfg.Inputs.ErrorFile, cfg.Inputs.TopologyFile},
		DebounceInterval: cfg.Watch.Debounce(),
	}, logging.Component("watch"))
	if err != nil {
		return err
	}
	defer watcher.Close()

	onChange := func(paths []string) error {
		fmt.Printf("\nInput changed (%s), re-running analysis...\n", strings.Join(paths, ", "))
		_, runErr := executeRun(cfg, recorder, collector)
		collector.MarkWatchRun(time.Now())
		return runErr
	}

	watchErrCh := make(chan error, 1)
	go func() {
		watchErrCh <- watcher.Watch(ctx, onChange)
	}()

	fmt.Printf("✓ Watching %s and %s\n", cfg.Inputs.ErrorFile, cfg.Inputs.TopologyFile)
	fmt.Println("\nPress Ctrl+C to stop")

	select {
	case err := <-serverErrCh:
		return fmt.Errorf("metrics server error: %w", err)
	case err := <-watchErrCh:
		if err != nil {
			return err
		}
	}

	// The watch loop exits with a nil error only on shutdown signals.
	fmt.Println("\nShutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics server shutdown failed", "error", err)
		return err
	}

	fmt.Println("✓ Watch stopped")
	return nil
}

// inputsCheck reports readiness from the input files being statable. A
// missing input degrades runs, so surface it on /readyz for operators.
func inputsCheck(cfg *config.Config) health.CheckFunc {
	return func(ctx context.Context) error {
		for _, path := range []string{cfg.Inputs.ErrorFile, cfg.Inputs.TopologyFile} {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("input %s: %w", path, err)
			}
		}
		return nil
	}
}

// archiveCheck reports readiness from the archive answering a count.
func archiveCheck(store archive.Storage) health.CheckFunc {
	return func(ctx context.Context) error {
		_, err := store.Count(ctx)
		return err
	}
}
