package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WatchMetrics tracks metrics for the watch loop.
//
// Metrics:
//   - topofix_watch_last_run_timestamp_seconds: Unix time of the most
//     recent watch-triggered analysis
type WatchMetrics struct {
	// Unix timestamp of the most recent watch-triggered run
	lastRunTimestamp prometheus.Gauge
}

// NewWatchMetrics creates and registers watch metrics with the provided
// registry.
func NewWatchMetrics(registry *prometheus.Registry) *WatchMetrics {
	wm := &WatchMetrics{
		lastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "watch_last_run_timestamp_seconds",
				Help:      "Unix timestamp of the most recent watch-triggered analysis run",
			},
		),
	}

	registry.MustRegister(wm.lastRunTimestamp)

	return wm
}

// MarkRun records the completion time of a watch-triggered run.
func (wm *WatchMetrics) MarkRun(at time.Time) {
	wm.lastRunTimestamp.Set(float64(at.Unix()))
}
