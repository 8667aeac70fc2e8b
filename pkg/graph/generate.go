package graph

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"unsafe"
)

// Default sizes used by the benchmark.
const (
	DefaultNodes = 1_000_000
	DefaultEdges = 10_000_000
	DefaultSeed  = 42
)

// GenerateOptions configures random graph generation.
type GenerateOptions struct {
	Nodes  int         // N, number of nodes
	Edges  int         // E, number of edge attempts
	Source rand.Source // Seeded generator; draws are Int63() % N
	// MaxBytes caps the estimated adjacency footprint. Zero disables the cap.
	MaxBytes uint64
}

// GenerateStats reports what the generator did.
type GenerateStats struct {
	Attempts          int
	Accepted          int
	SelfLoopsRejected int
	EstimatedBytes    uint64
}

// Generate builds a random undirected graph. Each of the E attempts draws u
// then v uniformly from [0, N); attempts with u == v are discarded, so the
// realized edge count is at most E.
func Generate(opts GenerateOptions) (*Graph, GenerateStats, error) {
	var stats GenerateStats

	if opts.Nodes <= 0 {
		return nil, stats, InvalidArgument("Generate", "nodes", int64(opts.Nodes))
	}
	if opts.Edges < 0 {
		return nil, stats, InvalidArgument("Generate", "edges", int64(opts.Edges))
	}
	if opts.Source == nil {
		return nil, stats, &Error{Op: "Generate", Cause: fmt.Errorf("%w: nil random source", ErrInvalidArgument)}
	}

	estimate, ok := EstimateBytes(opts.Nodes, opts.Edges)
	if !ok {
		return nil, stats, AllocationFailure("Generate", "edges", int64(opts.Edges), "size overflows address space")
	}
	stats.EstimatedBytes = estimate
	if opts.MaxBytes > 0 && estimate > opts.MaxBytes {
		return nil, stats, AllocationFailure("Generate", "edges", int64(opts.Edges),
			fmt.Sprintf("needs ~%d bytes, limit is %d", estimate, opts.MaxBytes))
	}

	g := &Graph{adj: make([][]int, opts.Nodes)}
	n := int64(opts.Nodes)

	for i := 0; i < opts.Edges; i++ {
		u := int(opts.Source.Int63() % n)
		v := int(opts.Source.Int63() % n)
		stats.Attempts++

		if u == v {
			stats.SelfLoopsRejected++
			continue
		}
		g.addEdge(u, v)
		stats.Accepted++
	}

	return g, stats, nil
}

// EstimateBytes returns a lower bound on the memory the adjacency structure
// needs for n nodes and e accepted edges: one slice header per node plus two
// int entries per edge. ok is false when the arithmetic overflows.
func EstimateBytes(n, e int) (uint64, bool) {
	const (
		headerSize = uint64(unsafe.Sizeof([]int(nil)))
		entrySize  = uint64(unsafe.Sizeof(int(0)))
	)

	hiH, headers := bits.Mul64(uint64(n), headerSize)
	hiE, entries := bits.Mul64(uint64(e), 2*entrySize)
	if hiH != 0 || hiE != 0 {
		return 0, false
	}
	total, carry := bits.Add64(headers, entries, 0)
	if carry != 0 || total > math.MaxInt64 {
		return 0, false
	}
	return total, true
}
