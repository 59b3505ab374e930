package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	// Apply defaults
	ApplyDefaults(&cfg)

	// Validate
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention TOPOFIX_SECTION_FIELD (e.g., TOPOFIX_INPUTS_ERROR_FILE).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	// First load from file (this already applies defaults)
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Re-validate after overrides
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format TOPOFIX_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Input overrides
	if val := os.Getenv("TOPOFIX_INPUTS_ERROR_FILE"); val != "" {
		cfg.Inputs.ErrorFile = val
	}
	if val := os.Getenv("TOPOFIX_INPUTS_TOPOLOGY_FILE"); val != "" {
		cfg.Inputs.TopologyFile = val
	}

	// Output overrides
	if val := os.Getenv("TOPOFIX_OUTPUTS_REPORT_FILE"); val != "" {
		cfg.Outputs.ReportFile = val
	}
	if val := os.Getenv("TOPOFIX_OUTPUTS_PARAMS_FILE"); val != "" {
		cfg.Outputs.ParamsFile = val
	}
	if val := os.Getenv("TOPOFIX_OUTPUTS_DIRECTORY"); val != "" {
		cfg.Outputs.Directory = val
	}

	// Display overrides
	if val := os.Getenv("TOPOFIX_DISPLAY_ERRORS_SHOWN"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Display.ErrorsShown = i
		}
	}
	if val := os.Getenv("TOPOFIX_DISPLAY_QUIET"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Display.Quiet = b
		}
	}
	if val := os.Getenv("TOPOFIX_DISPLAY_VERBOSE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Display.Verbose = b
		}
	}

	// Logging overrides
	if val := os.Getenv("TOPOFIX_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("TOPOFIX_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("TOPOFIX_LOGGING_OUTPUT"); val != "" {
		cfg.Logging.Output = val
	}

	// Archive overrides
	if val := os.Getenv("TOPOFIX_ARCHIVE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Archive.Enabled = b
		}
	}
	if val := os.Getenv("TOPOFIX_ARCHIVE_BACKEND"); val != "" {
		cfg.Archive.Backend = val
	}
	if val := os.Getenv("TOPOFIX_ARCHIVE_PATH"); val != "" {
		cfg.Archive.Path = val
	}
	if val := os.Getenv("TOPOFIX_ARCHIVE_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Archive.RetentionDays = i
		}
	}
	if val := os.Getenv("TOPOFIX_ARCHIVE_RETENTION_SCHEDULE"); val != "" {
		cfg.Archive.RetentionSchedule = val
	}

	// Watch overrides
	if val := os.Getenv("TOPOFIX_WATCH_DEBOUNCE_MS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Watch.DebounceMS = i
		}
	}
	if val := os.Getenv("TOPOFIX_WATCH_METRICS_ADDR"); val != "" {
		cfg.Watch.MetricsAddr = val
	}
}
