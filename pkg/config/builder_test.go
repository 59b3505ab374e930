package config

// ConfigBuilder provides a fluent API for building Config instances in tests.
// It starts with default values and allows selective overrides.
type ConfigBuilder struct {
	cfg Config
}

// NewTestConfig creates a new ConfigBuilder with sensible defaults for testing.
// The resulting configuration is valid and can be used immediately.
func NewTestConfig() *ConfigBuilder {
	var cfg Config
	ApplyDefaults(&cfg)
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config instance.
func (b *ConfigBuilder) Build() *Config {
	return &b.cfg
}

// WithErrorFile sets the diagnostic input file path.
func (b *ConfigBuilder) WithErrorFile(path string) *ConfigBuilder {
	b.cfg.Inputs.ErrorFile = path
	return b
}

// WithTopologyFile sets the topology input file path.
func (b *ConfigBuilder) WithTopologyFile(path string) *ConfigBuilder {
	b.cfg.Inputs.TopologyFile = path
	return b
}

// WithReportFile sets the analysis report output path.
func (b *ConfigBuilder) WithReportFile(path string) *ConfigBuilder {
	b.cfg.Outputs.ReportFile = path
	return b
}

// WithParamsFile sets the dummy parameter output path.
func (b *ConfigBuilder) WithParamsFile(path string) *ConfigBuilder {
	b.cfg.Outputs.ParamsFile = path
	return b
}

// WithOutputDirectory sets the base output directory.
func (b *ConfigBuilder) WithOutputDirectory(dir string) *ConfigBuilder {
	b.cfg.Outputs.Directory = dir
	return b
}

// WithErrorsShown sets the console display count.
func (b *ConfigBuilder) WithErrorsShown(n int) *ConfigBuilder {
	b.cfg.Display.ErrorsShown = n
	return b
}

// WithLoggingLevel sets the logging level.
func (b *ConfigBuilder) WithLoggingLevel(level string) *ConfigBuilder {
	b.cfg.Logging.Level = level
	return b
}

// WithLoggingFormat sets the logging format.
func (b *ConfigBuilder) WithLoggingFormat(format string) *ConfigBuilder {
	b.cfg.Logging.Format = format
	return b
}

// WithArchiveBackend enables the archive with the given backend.
func (b *ConfigBuilder) WithArchiveBackend(backend string) *ConfigBuilder {
	b.cfg.Archive.Enabled = true
	b.cfg.Archive.Backend = backend
	return b
}

// WithArchivePath sets the archive database path and selects the SQLite
// backend.
func (b *ConfigBuilder) WithArchivePath(path string) *ConfigBuilder {
	b.cfg.Archive.Enabled = true
	b.cfg.Archive.Backend = "sqlite"
	b.cfg.Archive.Path = path
	return b
}

// WithRetentionDays sets the archive retention window.
func (b *ConfigBuilder) WithRetentionDays(days int) *ConfigBuilder {
	b.cfg.Archive.RetentionDays = days
	return b
}

// WithDebounceMS sets the watch debounce interval.
func (b *ConfigBuilder) WithDebounceMS(ms int) *ConfigBuilder {
	b.cfg.Watch.DebounceMS = ms
	return b
}

// WithMetricsAddr sets the watch metrics listen address.
func (b *ConfigBuilder) WithMetricsAddr(addr string) *ConfigBuilder {
	b.cfg.Watch.MetricsAddr = addr
	return b
}

// MinimalConfig returns a minimal valid configuration for testing.
// This is useful for tests that don't care about most configuration values.
func MinimalConfig() *Config {
	return NewTestConfig().Build()
}
