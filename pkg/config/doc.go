// Package config provides configuration management for Topofix.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with comprehensive validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("topofix.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("topofix.yaml")
//
// When no file is available, Default returns a configuration built purely
// from default values.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention TOPOFIX_SECTION_FIELD.
// For example:
//
//   - TOPOFIX_INPUTS_ERROR_FILE overrides inputs.error_file
//   - TOPOFIX_LOGGING_LEVEL overrides logging.level
//   - TOPOFIX_ARCHIVE_BACKEND overrides archive.backend
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
// For application-wide configuration access, use the singleton pattern:
//
//	// At application startup
//	if err := config.Initialize("topofix.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere in the application
//	cfg := config.GetConfig()
//	fmt.Println(cfg.Inputs.ErrorFile)
//
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton; ResetForTesting re-arms initialization
// between test cases that must exercise it.
//
// # Validation
//
// All configuration is validated automatically during loading. Validation includes:
//
//   - Required field checks (e.g., input and output paths)
//   - Range validation (e.g., retention days, debounce interval)
//   - Enumeration validation (e.g., logging level, archive backend)
//   - Logical validation (e.g., quiet and verbose are mutually exclusive)
//
// Validation errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	  - inputs.error_file: error file path is required
//	  - logging.level: invalid logging level "trace": must be 'debug', 'info', 'warn', or 'error'
//
// # Example Configuration
//
// Here is a minimal configuration file:
//
//	inputs:
//	  error_file: "input/errors.txt"
//	  topology_file: "input/topol.top"
//
//	outputs:
//	  report_file: "output/analysis_results.txt"
//	  params_file: "output/dummy_parameters.itp"
//
//	logging:
//	  level: "info"
//	  format: "json"
//
//	archive:
//	  enabled: true
//	  backend: "sqlite"
//	  path: "data/runs.db"
//
// # Thread Safety
//
// All configuration access is thread-safe. The singleton pattern uses read-write
// locks to allow concurrent reads while protecting against concurrent writes during
// reload operations.
package config
