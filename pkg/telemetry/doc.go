// Package telemetry provides observability for Topofix.
//
// # Components
//
//   - logging: Structured logging built on log/slog
//   - metrics: Prometheus metrics for analysis runs and watch mode
//   - health: Liveness and readiness endpoints for watch mode
//
// # Usage
//
//	// Initialize logging
//	logger, _ := logging.New(logging.Config{Level: "info", Format: "json"})
//	logger.SetDefault()
//
//	// Record metrics
//	collector := metrics.NewCollector(nil)
//	collector.RecordRun("success", duration)
//
//	// Serve health probes next to /metrics
//	checker := health.New(5 * time.Second)
//	checker.Register(mux)
//
// One-shot analysis only uses the logging component. Watch mode wires
// all three into its HTTP listener.
package telemetry
