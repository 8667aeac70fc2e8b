package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTraversalMetrics() {
	r.TraversalsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfs_traversals_total",
			Help: "Total number of BFS traversals",
		},
		[]string{"mode", "status"},
	)

	r.TraversalDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bfs_traversal_duration_seconds",
			Help:    "BFS traversal duration in seconds, excluding generation and reporting",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"mode"},
	)

	r.NodesVisited = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "bfs_nodes_visited",
			Help: "Nodes reached by the last traversal, start included",
		},
	)

	r.MaxDepth = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "bfs_max_depth",
			Help: "Largest finite distance found by the last traversal",
		},
	)
}
