// Package metrics provides Prometheus metrics collection for topofix.
//
// # Overview
//
// The metrics package implements Prometheus metrics for monitoring error
// analysis runs: how many ran, how they ended, how many diagnostics were
// parsed or skipped, how many placeholder parameters were synthesized,
// and when the watch loop last fired.
//
// # Metrics
//
//   - topofix_runs_total{status}: Completed runs ("success", "degraded", "failed")
//   - topofix_errors_parsed_total: Diagnostic records extracted from error logs
//   - topofix_errors_skipped_total{reason}: Records dropped before synthesis
//   - topofix_dummy_parameters_total{kind}: Placeholder rows ("angle", "dihedral")
//   - topofix_analysis_duration_seconds: Run duration histogram
//   - topofix_watch_last_run_timestamp_seconds: Unix time of the last watch run
//
// # Usage
//
//	// Create collector with a private registry
//	collector := metrics.NewCollector(nil)
//
//	// Record a completed run
//	collector.RecordRun("success", 42*time.Millisecond)
//	collector.RecordErrorsParsed(11)
//	collector.RecordDummyParameters("angle", 3)
//	collector.RecordDummyParameters("dihedral", 5)
//
//	// Expose the scrape endpoint (watch mode only)
//	http.Handle("/metrics", collector.Handler())
//
// # Registry Isolation
//
// The collector registers against a private prometheus.Registry rather
// than the package-global default, so the /metrics endpoint serves only
// topofix metric families and repeated collector construction in tests
// cannot panic on duplicate registration.
//
// # Prometheus Endpoint
//
// Watch mode serves all metrics on /metrics in standard exposition format:
//
//	# HELP topofix_runs_total Total number of analysis runs by status
//	# TYPE topofix_runs_total counter
//	topofix_runs_total{status="success"} 12
//
// One-shot analyze runs record results to the run archive instead; they
// never start a scrape endpoint.
package metrics
