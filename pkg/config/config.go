package config

import (
	"path/filepath"
	"time"
)

// Config is the root configuration structure for Topofix.
// It contains all configuration sections for input locations, output
// locations, console display, logging, the run archive, and watch mode.
type Config struct {
	// Inputs contains the locations of the two input files consumed by
	// every analysis run.
	Inputs InputsConfig `yaml:"inputs"`

	// Outputs contains the locations of the generated report and
	// parameter files.
	Outputs OutputsConfig `yaml:"outputs"`

	// Display contains console narration settings.
	Display DisplayConfig `yaml:"display"`

	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Archive contains configuration for the run archive including
	// backend selection and retention settings.
	Archive ArchiveConfig `yaml:"archive"`

	// Watch contains configuration for watch mode including debounce
	// interval and the metrics listen address.
	Watch WatchConfig `yaml:"watch"`
}

// InputsConfig contains the input file locations for an analysis run.
type InputsConfig struct {
	// ErrorFile is the path to the diagnostic log produced by the
	// topology preprocessor.
	// Default: "input/errors.txt"
	ErrorFile string `yaml:"error_file"`

	// TopologyFile is the path to the molecular topology file the
	// diagnostics refer to.
	// Default: "input/topol.top"
	TopologyFile string `yaml:"topology_file"`
}

// OutputsConfig contains the output file locations for an analysis run.
type OutputsConfig struct {
	// ReportFile is the path for the human-readable analysis report.
	// Default: "output/analysis_results.txt"
	ReportFile string `yaml:"report_file"`

	// ParamsFile is the path for the generated dummy parameter file.
	// Default: "output/dummy_parameters.itp"
	ParamsFile string `yaml:"params_file"`

	// Directory is an optional base directory. Relative ReportFile and
	// ParamsFile paths are resolved under it; absolute paths are used
	// as-is.
	// Default: "" (paths used unchanged)
	Directory string `yaml:"directory"`
}

// ReportPath returns the report file path, resolved against Directory
// when the configured path is relative.
func (c OutputsConfig) ReportPath() string {
	return c.resolve(c.ReportFile)
}

// ParamsPath returns the parameter file path, resolved against Directory
// when the configured path is relative.
func (c OutputsConfig) ParamsPath() string {
	return c.resolve(c.ParamsFile)
}

func (c OutputsConfig) resolve(path string) string {
	if c.Directory == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Directory, path)
}

// DisplayConfig contains console narration settings.
type DisplayConfig struct {
	// ErrorsShown is the number of correlated errors narrated on the
	// console after a run. The report file always contains all of them.
	// Default: 10
	ErrorsShown int `yaml:"errors_shown"`

	// Quiet suppresses all console narration except errors.
	// Default: false
	Quiet bool `yaml:"quiet"`

	// Verbose enables additional per-record console detail.
	// Default: false
	Verbose bool `yaml:"verbose"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// Output selects where log entries are written.
	// Options: "stderr", "stdout", or a file path.
	// Default: "stderr"
	Output string `yaml:"output"`
}

// ArchiveConfig contains configuration for the run archive.
type ArchiveConfig struct {
	// Enabled controls whether completed runs are recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Backend specifies the storage backend for run records.
	// Options: "memory", "sqlite"
	// Default: "memory"
	Backend string `yaml:"backend"`

	// Path is the database file path when Backend is "sqlite".
	// Default: "data/runs.db"
	Path string `yaml:"path"`

	// RetentionDays is the number of days to retain run records.
	// Records older than this are eligible for pruning.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// RetentionSchedule is a cron expression for scheduling pruning
	// in watch mode.
	// Default: "0 3 * * *" (daily at 3 AM)
	RetentionSchedule string `yaml:"retention_schedule"`
}

// WatchConfig contains configuration for watch mode.
type WatchConfig struct {
	// DebounceMS is the debounce window in milliseconds applied to file
	// change bursts before a re-run is triggered.
	// Default: 500
	DebounceMS int `yaml:"debounce_ms"`

	// MetricsAddr is the listen address for the watch-mode HTTP server
	// exposing /metrics, /healthz, and /readyz.
	// Default: ":9521"
	MetricsAddr string `yaml:"metrics_addr"`
}

// Debounce returns the debounce window as a time.Duration.
func (c WatchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}
