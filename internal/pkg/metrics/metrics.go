// Package metrics exposes Prometheus collectors for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catfind",
			Subsystem: "lookup",
			Name:      "requests_total",
			Help:      "Total number of lookup requests by outcome.",
		},
		[]string{"outcome"},
	)

	indexRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catfind",
			Subsystem: "index",
			Name:      "runs_total",
			Help:      "Total number of inventory index runs.",
		},
		[]string{"status"},
	)

	entriesIndexed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catfind",
			Subsystem: "index",
			Name:      "entries_total",
			Help:      "Total number of inventory entries upserted.",
		},
	)

	entriesPruned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catfind",
			Subsystem: "index",
			Name:      "entries_pruned_total",
			Help:      "Total number of stale entries removed after index runs.",
		},
	)
)

func init() {
	Registry.MustRegister(
		lookups,
		indexRuns,
		entriesIndexed,
		entriesPruned,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordLookup records the outcome of a lookup: "single", "multiple" or
// "none".
func RecordLookup(outcome string) {
	lookups.WithLabelValues(outcome).Inc()
}

// RecordIndexRun records a completed or failed index run and the number of
// entries it touched.
func RecordIndexRun(err error, upserted int, pruned int64) {
	status := "success"
	if err != nil {
		status = "error"
	}
	indexRuns.WithLabelValues(status).Inc()
	entriesIndexed.Add(float64(upserted))
	entriesPruned.Add(float64(pruned))
}
