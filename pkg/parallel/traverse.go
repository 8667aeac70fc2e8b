// Package parallel expands BFS frontiers on a worker pool.
//
// The traversal is level-synchronous: every node of level d is expanded
// before any node of level d+1, and a node's distance cell is claimed with
// a compare-and-swap from Unvisited to d+1. Whichever worker wins the claim
// enqueues the node; all claims in a level write the same value, so the
// distance array equals the one bfs.Run produces for the same input.
package parallel

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dd0wney/cluso-bfs/pkg/bfs"
	"github.com/dd0wney/cluso-bfs/pkg/graph"
	"github.com/dd0wney/cluso-bfs/pkg/logging"
	"github.com/dd0wney/cluso-bfs/pkg/pools"
)

// DefaultMinChunk is the smallest frontier slice handed to one task.
const DefaultMinChunk = 512

var (
	// ErrTraverserClosed is returned by traversals after Close.
	ErrTraverserClosed = errors.New("traverser is closed")
	// ErrTaskPanicked is returned when a frontier task panicked, leaving
	// the distance array incomplete.
	ErrTaskPanicked = errors.New("frontier task panicked")
)

// bufferPool hands out the per-chunk claim buffers
type bufferPool interface {
	Get(size int) []int
	Put(s []int)
}

// Traverser runs parallel BFS over one read-only graph
type Traverser struct {
	graph      *graph.Graph
	workerPool *WorkerPool
	numWorkers int
	minChunk   int
	buffers    bufferPool
	logger     logging.Logger
}

// NewTraverser creates a traverser. Non-positive worker counts use the CPU
// count.
func NewTraverser(g *graph.Graph, numWorkers int, logger logging.Logger) (*Traverser, error) {
	if g == nil {
		return nil, graph.InvalidArgument("parallel.NewTraverser", "graph", 0)
	}
	if g.NumNodes() > math.MaxInt32 {
		return nil, graph.InvalidArgument("parallel.NewTraverser", "nodes", int64(g.NumNodes()))
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}

	pool, err := NewWorkerPool(numWorkers, logger)
	if err != nil {
		return nil, err
	}

	return &Traverser{
		graph:      g,
		workerPool: pool,
		numWorkers: numWorkers,
		minChunk:   DefaultMinChunk,
		buffers:    pools.NewIntPool(),
		logger:     logger,
	}, nil
}

// SetMinChunk changes the smallest per-task frontier slice. Values below 1
// are treated as 1.
func (pt *Traverser) SetMinChunk(n int) {
	pt.minChunk = max(n, 1)
}

// Workers returns the worker count
func (pt *Traverser) Workers() int {
	return pt.numWorkers
}

// Distances returns the hop distance from start to every node, or
// bfs.Unvisited.
func (pt *Traverser) Distances(start int) ([]int, error) {
	res, err := pt.Run(start)
	if err != nil {
		return nil, err
	}
	return res.Distances, nil
}

// Run performs the traversal and collects per-level statistics.
func (pt *Traverser) Run(start int) (*bfs.Result, error) {
	if !pt.graph.Contains(start) {
		return nil, graph.InvalidArgument("parallel.Run", "start", int64(start))
	}

	n := pt.graph.NumNodes()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = bfs.Unvisited
	}
	dist[start] = 0

	frontier := []int{start}
	levels := []int{1}
	visited := 1
	panicsBefore := pt.workerPool.Panics()

	for level := int32(0); len(frontier) > 0; level++ {
		found, err := pt.expandLevel(frontier, dist, level+1)
		if err != nil {
			pt.release(found)
			return nil, err
		}
		if pt.workerPool.Panics() != panicsBefore {
			pt.release(found)
			return nil, fmt.Errorf("level %d: %w", level, ErrTaskPanicked)
		}

		total := 0
		for _, part := range found {
			total += len(part)
		}

		next := make([]int, 0, total)
		for _, part := range found {
			next = append(next, part...)
		}
		pt.release(found)

		if total > 0 {
			levels = append(levels, total)
			visited += total
			pt.logger.Debug("frontier expanded",
				logging.Depth(int(level)+1),
				logging.Count(total),
				logging.Int("chunks", len(found)),
			)
		}
		frontier = next
	}

	out := make([]int, n)
	for i, d := range dist {
		out[i] = int(d)
	}

	return &bfs.Result{
		Start:      start,
		Distances:  out,
		Visited:    visited,
		LevelSizes: levels,
	}, nil
}

// expandLevel splits the frontier into chunks and expands them on the pool.
// found[i] holds the nodes claimed by chunk i.
func (pt *Traverser) expandLevel(frontier []int, dist []int32, next int32) ([][]int, error) {
	// Divide current level among workers (overflow-safe)
	chunkSize := int((int64(len(frontier)) + int64(pt.numWorkers) - 1) / int64(pt.numWorkers))
	chunkSize = max(chunkSize, pt.minChunk)

	numChunks := (len(frontier) + chunkSize - 1) / chunkSize
	found := make([][]int, numChunks)

	var levelWg sync.WaitGroup
	var submitErr error

	for c := 0; c < numChunks; c++ {
		lo := c * chunkSize
		hi := min(lo+chunkSize, len(frontier))
		chunk := frontier[lo:hi]

		levelWg.Add(1)
		submitted := pt.workerPool.Submit(func() {
			defer levelWg.Done()
			found[c] = pt.expandChunk(chunk, dist, next)
		})
		if !submitted {
			levelWg.Done()
			submitErr = ErrTraverserClosed
			break
		}
	}

	// Wait for level to complete
	levelWg.Wait()
	return found, submitErr
}

// release returns a level's claim buffers to the pool. Chunks that never
// ran leave nil entries, which are skipped.
func (pt *Traverser) release(found [][]int) {
	for _, part := range found {
		if part != nil {
			pt.buffers.Put(part)
		}
	}
}

// expandChunk claims every unvisited neighbor of the chunk's nodes
func (pt *Traverser) expandChunk(chunk []int, dist []int32, next int32) []int {
	claimed := pt.buffers.Get(len(chunk))
	for _, u := range chunk {
		for _, v := range pt.graph.Neighbors(u) {
			if atomic.LoadInt32(&dist[v]) != bfs.Unvisited {
				continue
			}
			if atomic.CompareAndSwapInt32(&dist[v], bfs.Unvisited, next) {
				claimed = append(claimed, v)
			}
		}
	}
	return claimed
}

// Close shuts down the worker pool
func (pt *Traverser) Close() {
	pt.workerPool.Close()
}
