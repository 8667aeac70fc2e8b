package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "bfs_graph_nodes",
			Help: "Number of nodes in the generated graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "bfs_graph_edges",
			Help: "Number of undirected edges in the generated graph, duplicates included",
		},
	)

	r.GeneratorAttemptsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "bfs_generator_attempts_total",
			Help: "Total number of random edge attempts drawn",
		},
	)

	r.GeneratorSelfLoopsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "bfs_generator_self_loops_rejected_total",
			Help: "Total number of edge attempts discarded because both endpoints were equal",
		},
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bfs_generation_duration_seconds",
			Help:    "Graph generation duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)
}
