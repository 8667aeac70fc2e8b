package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSystemMetrics() {
	r.GoRoutines = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "bfs_goroutines",
			Help: "Number of goroutines at the last sample",
		},
	)

	r.MemoryAllocBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "bfs_memory_alloc_bytes",
			Help: "Bytes of allocated heap objects at the last sample",
		},
	)

	r.MemorySysBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "bfs_memory_sys_bytes",
			Help: "Total bytes of memory obtained from the OS at the last sample",
		},
	)
}
