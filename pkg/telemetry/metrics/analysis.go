package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalysisMetrics tracks metrics for the error analysis pipeline.
//
// Metrics:
//   - topofix_runs_total: Completed runs by status
//   - topofix_errors_parsed_total: Diagnostic records extracted from error logs
//   - topofix_errors_skipped_total: Records dropped before synthesis, by reason
//   - topofix_dummy_parameters_total: Placeholder parameter rows by kind
//   - topofix_analysis_duration_seconds: Run duration histogram
type AnalysisMetrics struct {
	// Completed runs by outcome
	runsTotal *prometheus.CounterVec

	// Diagnostic records extracted from the error log
	errorsParsed prometheus.Counter

	// Records that could not be carried through synthesis
	errorsSkipped *prometheus.CounterVec

	// Synthesized placeholder rows by parameter family
	dummyParameters *prometheus.CounterVec

	// Run duration histogram
	duration prometheus.Histogram
}

// NewAnalysisMetrics creates and registers analysis metrics with the
// provided registry.
func NewAnalysisMetrics(registry *prometheus.Registry) *AnalysisMetrics {
	am := &AnalysisMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of analysis runs by status",
			},
			[]string{"status"},
		),

		errorsParsed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_parsed_total",
				Help:      "Total number of diagnostic records extracted from error logs",
			},
		),

		errorsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_skipped_total",
				Help:      "Total number of diagnostic records skipped before synthesis, by reason",
			},
			[]string{"reason"},
		),

		dummyParameters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dummy_parameters_total",
				Help:      "Total number of placeholder parameter rows synthesized, by kind",
			},
			[]string{"kind"},
		),

		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Duration of analysis runs in seconds",
				// File parsing over topologies up to a few hundred
				// thousand lines lands in the low milliseconds to
				// low seconds.
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
		),
	}

	// Register all metrics
	registry.MustRegister(
		am.runsTotal,
		am.errorsParsed,
		am.errorsSkipped,
		am.dummyParameters,
		am.duration,
	)

	return am
}

// RecordRun records a completed analysis run.
//
// Parameters:
//   - status: Run outcome ("success", "degraded", "failed")
//   - duration: Wall-clock duration of the run
func (am *AnalysisMetrics) RecordRun(status string, duration time.Duration) {
	am.runsTotal.WithLabelValues(status).Inc()
	am.duration.Observe(duration.Seconds())
}

// RecordParsed records the number of diagnostic records extracted from
// the error log.
func (am *AnalysisMetrics) RecordParsed(count int) {
	if count > 0 {
		am.errorsParsed.Add(float64(count))
	}
}

// RecordSkipped records a diagnostic record dropped before synthesis.
//
// Common reasons:
//   - "no_atom_types": no atom types could be resolved for the record
//   - "wrong_arity": resolved atom count does not fit the parameter family
//   - "unclassified": record matched neither parameter family
func (am *AnalysisMetrics) RecordSkipped(reason string) {
	am.errorsSkipped.WithLabelValues(reason).Inc()
}

// RecordDummies records synthesized placeholder rows for one parameter
// family.
//
// Parameters:
//   - kind: Parameter family ("angle", "dihedral")
//   - count: Number of unique rows generated
func (am *AnalysisMetrics) RecordDummies(kind string, count int) {
	if count > 0 {
		am.dummyParameters.WithLabelValues(kind).Add(float64(count))
	}
}
