package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "inputs.error_file").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateInputs(&cfg.Inputs)...)
	errs = append(errs, validateOutputs(&cfg.Outputs)...)
	errs = append(errs, validateDisplay(&cfg.Display)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateArchive(&cfg.Archive)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateInputs validates input file configuration.
func validateInputs(cfg *InputsConfig) []FieldError {
	var errs []FieldError

	if cfg.ErrorFile == "" {
		errs = append(errs, FieldError{
			Field:   "inputs.error_file",
			Message: "error file path is required",
		})
	}
	if cfg.TopologyFile == "" {
		errs = append(errs, FieldError{
			Field:   "inputs.topology_file",
			Message: "topology file path is required",
		})
	}

	return errs
}

// validateOutputs validates output file configuration.
func validateOutputs(cfg *OutputsConfig) []FieldError {
	var errs []FieldError

	if cfg.ReportFile == "" {
		errs = append(errs, FieldError{
			Field:   "outputs.report_file",
			Message: "report file path is required",
		})
	}
	if cfg.ParamsFile == "" {
		errs = append(errs, FieldError{
			Field:   "outputs.params_file",
			Message: "params file path is required",
		})
	}

	return errs
}

// validateDisplay validates console display configuration.
func validateDisplay(cfg *DisplayConfig) []FieldError {
	var errs []FieldError

	if cfg.ErrorsShown < 0 {
		errs = append(errs, FieldError{
			Field:   "display.errors_shown",
			Message: "errors shown must be non-negative",
		})
	}
	if cfg.Quiet && cfg.Verbose {
		errs = append(errs, FieldError{
			Field:   "display.verbose",
			Message: "quiet and verbose are mutually exclusive",
		})
	}

	return errs
}

// validateLogging validates logging configuration.
func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if cfg.Level == "" {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: "logging level is required",
		})
	} else if !validLevels[cfg.Level] {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Level),
		})
	}

	// Validate logging format
	validFormats := map[string]bool{"json": true, "text": true}
	if cfg.Format == "" {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: "logging format is required",
		})
	} else if !validFormats[cfg.Format] {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json' or 'text'", cfg.Format),
		})
	}

	if cfg.Output == "" {
		errs = append(errs, FieldError{
			Field:   "logging.output",
			Message: "logging output is required",
		})
	}

	return errs
}

// validateArchive validates run archive configuration.
func validateArchive(cfg *ArchiveConfig) []FieldError {
	var errs []FieldError

	// If the archive is disabled, skip validation
	if !cfg.Enabled {
		return errs
	}

	// Validate backend
	validBackends := map[string]bool{"memory": true, "sqlite": true}
	if cfg.Backend == "" {
		errs = append(errs, FieldError{
			Field:   "archive.backend",
			Message: "backend is required when the archive is enabled",
		})
	} else if !validBackends[cfg.Backend] {
		errs = append(errs, FieldError{
			Field:   "archive.backend",
			Message: fmt.Sprintf("invalid backend %q: must be 'memory' or 'sqlite'", cfg.Backend),
		})
	}

	// Validate backend-specific configuration
	if cfg.Backend == "sqlite" && cfg.Path == "" {
		errs = append(errs, FieldError{
			Field:   "archive.path",
			Message: "database path is required when backend is 'sqlite'",
		})
	}

	// Validate retention days
	if cfg.RetentionDays < 0 {
		errs = append(errs, FieldError{
			Field:   "archive.retention_days",
			Message: "retention days must be non-negative",
		})
	}
	if cfg.RetentionDays > 3650 { // 10 years is excessive
		errs = append(errs, FieldError{
			Field:   "archive.retention_days",
			Message: "retention days exceeds reasonable limit (3650 days / 10 years)",
		})
	}

	return errs
}

// validateWatch validates watch mode configuration.
func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.DebounceMS < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce_ms",
			Message: "debounce must be non-negative",
		})
	}
	if cfg.DebounceMS > 60000 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce_ms",
			Message: "debounce exceeds reasonable limit (60000ms / 1 minute)",
		})
	}
	if cfg.MetricsAddr == "" {
		errs = append(errs, FieldError{
			Field:   "watch.metrics_addr",
			Message: "metrics listen address is required",
		})
	}

	return errs
}
