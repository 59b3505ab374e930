// Package logging provides structured logging for Topofix.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON and text formats
//   - Configurable destinations (stderr, stdout, or a file)
//   - Context-aware logging with run IDs and triggers
//   - Configurable log levels (debug, info, warn, error)
//
// Log lines default to stderr so they never interleave with the console
// narration an analysis run prints on stdout.
//
// # Usage
//
//	// Create the process logger and install it as the slog default
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stderr",
//	})
//	if err != nil {
//	    return err
//	}
//	logger.SetDefault()
//
//	// Derive component loggers anywhere in the application
//	log := logging.Component("correlate")
//	log.Debug("no owning section", "error_number", 3, "line", 10233)
//
//	// Context-aware logging in watch mode
//	ctx := logging.WithRunID(ctx, runID)
//	logger.InfoContext(ctx, "analysis complete")  // Includes run_id
package logging
