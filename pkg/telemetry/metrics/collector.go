package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// namespace prefixes every metric exported by topofix.
const namespace = "topofix"

// Collector is the orchestrator for all Prometheus metrics in topofix.
// It owns the registry, registers the metric families on construction,
// and provides a unified interface for recording metrics across the
// analysis pipeline and the watch loop.
type Collector struct {
	registry *prometheus.Registry

	// Analysis pipeline metrics
	analysisMetrics *AnalysisMetrics

	// Watch loop metrics
	watchMetrics *WatchMetrics
}

// NewCollector creates a new metrics collector backed by the specified
// Prometheus registry. If registry is nil, a private registry is created
// so that topofix metrics never collide with another process's default
// registry.
//
// Example:
//
//	collector := metrics.NewCollector(nil)
//	http.Handle("/metrics", collector.Handler())
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
	}

	c.analysisMetrics = NewAnalysisMetrics(registry)
	c.watchMetrics = NewWatchMetrics(registry)

	return c
}

// RecordRun records a completed analysis run.
//
// Parameters:
//   - status: Run outcome ("success", "degraded", "failed")
//   - duration: Wall-clock duration of the run
func (c *Collector) RecordRun(status string, duration time.Duration) {
	c.analysisMetrics.RecordRun(status, duration)
}

// RecordErrorsParsed records the number of diagnostic records extracted
// from the error log during a run.
func (c *Collector) RecordErrorsParsed(count int) {
	c.analysisMetrics.RecordParsed(count)
}

// RecordErrorSkipped records a diagnostic record that could not be carried
// through to parameter synthesis.
//
// Parameters:
//   - reason: Why the record was skipped ("no_atom_types", "wrong_arity",
//     "unclassified")
func (c *Collector) RecordErrorSkipped(reason string) {
	c.analysisMetrics.RecordSkipped(reason)
}

// RecordDummyParameters records synthesized placeholder parameter rows.
//
// Parameters:
//   - kind: Parameter family ("angle", "dihedral")
//   - count: Number of unique rows generated
func (c *Collector) RecordDummyParameters(kind string, count int) {
	c.analysisMetrics.RecordDummies(kind, count)
}

// MarkWatchRun updates the timestamp of the most recent watch-triggered
// analysis. Scrapers alert on this going stale.
func (c *Collector) MarkWatchRun(at time.Time) {
	c.watchMetrics.MarkRun(at)
}

// Registry returns the Prometheus registry used by this collector.
// This can be used to create an HTTP handler for the /metrics endpoint:
//
//	http.Handle("/metrics", promhttp.HandlerFor(
//		collector.Registry(),
//		promhttp.HandlerOpts{},
//	))
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
