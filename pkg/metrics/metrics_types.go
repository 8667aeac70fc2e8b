package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the benchmark's metrics on a private Prometheus registry
type Registry struct {
	// Graph Metrics
	GraphNodes              prometheus.Gauge
	GraphEdges              prometheus.Gauge
	GeneratorAttemptsTotal  prometheus.Counter
	GeneratorSelfLoopsTotal prometheus.Counter
	GenerationDuration      prometheus.Histogram

	// Traversal Metrics
	TraversalsTotal   *prometheus.CounterVec
	TraversalDuration *prometheus.HistogramVec
	NodesVisited      prometheus.Gauge
	MaxDepth          prometheus.Gauge

	// System Metrics
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initGraphMetrics()
	r.initTraversalMetrics()
	r.initSystemMetrics()

	return r
}
