// Package metrics exposes Prometheus collectors for the search engine.
// Collectors are registered once via promauto; a scheduler embedding the
// library serves them from its own /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values recorded by the astar driver.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeTimedOut  = "timed_out"
	OutcomeInvalid   = "invalid"
)

var (
	// SearchesTotal counts search invocations by outcome.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airpath_searches_total",
			Help: "Total number of space-time searches, labeled by outcome",
		},
		[]string{"outcome"},
	)

	// SearchExpansions observes how many states each search expanded.
	// Buckets span a quick corridor hop up to a saturated large grid.
	SearchExpansions = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "airpath_search_expansions",
			Help:    "States expanded per search invocation",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		},
	)

	// SearchDuration observes wall-clock time per search invocation.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "airpath_search_duration_seconds",
			Help:    "Duration of search invocations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
)
