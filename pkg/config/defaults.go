package config

// Default values for configuration fields.
const (
	// Input defaults
	DefaultErrorFile    = "input/errors.txt"
	DefaultTopologyFile = "input/topol.top"

	// Output defaults
	DefaultReportFile = "output/analysis_results.txt"
	DefaultParamsFile = "output/dummy_parameters.itp"

	// Display defaults
	DefaultErrorsShown = 10

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "json"
	DefaultLoggingOutput = "stderr"

	// Archive defaults
	DefaultArchiveBackend           = "memory"
	DefaultArchivePath              = "data/runs.db"
	DefaultArchiveRetentionDays     = 90
	DefaultArchiveRetentionSchedule = "0 3 * * *"

	// Watch defaults
	DefaultWatchDebounceMS  = 500
	DefaultWatchMetricsAddr = ":9521"
)

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Input defaults
	if cfg.Inputs.ErrorFile == "" {
		cfg.Inputs.ErrorFile = DefaultErrorFile
	}
	if cfg.Inputs.TopologyFile == "" {
		cfg.Inputs.TopologyFile = DefaultTopologyFile
	}

	// Output defaults
	if cfg.Outputs.ReportFile == "" {
		cfg.Outputs.ReportFile = DefaultReportFile
	}
	if cfg.Outputs.ParamsFile == "" {
		cfg.Outputs.ParamsFile = DefaultParamsFile
	}
	// Directory defaults to "" (paths used unchanged), which is correct

	// Display defaults
	if cfg.Display.ErrorsShown == 0 {
		cfg.Display.ErrorsShown = DefaultErrorsShown
	}
	// Quiet and Verbose default to false (zero values), which is correct

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = DefaultLoggingOutput
	}

	// Archive defaults. Enabled defaults to false (zero value).
	if cfg.Archive.Backend == "" {
		cfg.Archive.Backend = DefaultArchiveBackend
	}
	if cfg.Archive.Path == "" {
		cfg.Archive.Path = DefaultArchivePath
	}
	if cfg.Archive.RetentionDays == 0 {
		cfg.Archive.RetentionDays = DefaultArchiveRetentionDays
	}
	if cfg.Archive.RetentionSchedule == "" {
		cfg.Archive.RetentionSchedule = DefaultArchiveRetentionSchedule
	}

	// Watch defaults
	if cfg.Watch.DebounceMS == 0 {
		cfg.Watch.DebounceMS = DefaultWatchDebounceMS
	}
	if cfg.Watch.MetricsAddr == "" {
		cfg.Watch.MetricsAddr = DefaultWatchMetricsAddr
	}
}

// Default returns a configuration populated entirely from default values.
// It is used when no configuration file is supplied; environment variable
// overrides still apply on top of it.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}
