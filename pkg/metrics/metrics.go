package metrics

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/prometheus/common/expfmt"
)

// Traversal modes used as the "mode" label.
const (
	ModeSequential = "sequential"
	ModeParallel   = "parallel"
)

// RecordGeneration records the outcome of one graph generation
func (r *Registry) RecordGeneration(nodes, edges, attempts, selfLoops int, duration time.Duration) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GeneratorAttemptsTotal.Add(float64(attempts))
	r.GeneratorSelfLoopsTotal.Add(float64(selfLoops))
	r.GenerationDuration.Observe(duration.Seconds())
}

// RecordTraversal records a successful traversal
func (r *Registry) RecordTraversal(mode string, duration time.Duration, visited, maxDepth int) {
	r.TraversalsTotal.WithLabelValues(mode, "success").Inc()
	r.TraversalDuration.WithLabelValues(mode).Observe(duration.Seconds())
	r.NodesVisited.Set(float64(visited))
	r.MaxDepth.Set(float64(maxDepth))
}

// RecordTraversalError records a rejected traversal
func (r *Registry) RecordTraversalError(mode string) {
	r.TraversalsTotal.WithLabelValues(mode, "error").Inc()
}

// SampleRuntime updates the system gauges from the Go runtime
func (r *Registry) SampleRuntime() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}

// WriteText writes every metric in the Prometheus text exposition format
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
