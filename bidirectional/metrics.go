package bidirectional

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for searchTotal.
const (
	resultFound       = "found"
	resultNoPath      = "no_path"
	resultNotFound    = "location_not_found"
	resultBudget      = "budget_exceeded"
	resultCanceled    = "canceled"
	resultInvalidPath = "invalid_path"
	resultError       = "error"
)

var (
	// searchTotal counts Search calls by strategy and outcome.
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvroute_search_total",
		Help: "Total bidirectional searches by strategy and result",
	}, []string{"strategy", "result"})

	// searchDuration tracks Search latency.
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvroute_search_duration_seconds",
		Help:    "Bidirectional search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"strategy"})

	// searchExpansions tracks node expansions per successful search, both directions combined.
	searchExpansions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvroute_search_expansions",
		Help:    "Node expansions per search, both directions combined",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})

	// frontierRelaxations counts labels lowered on an already-queued node.
	frontierRelaxations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvroute_frontier_relaxations_total",
		Help: "Decrease-key relaxations by search direction",
	}, []string{"direction"})

	// pathCycleTruncations counts parent chains cut short by the cycle guard.
	pathCycleTruncations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvroute_path_cycle_truncations_total",
		Help: "Path reconstructions truncated because a parent link looped",
	})
)
