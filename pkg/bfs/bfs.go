// Package bfs computes single-source shortest-path distances, measured in
// edges, over an unweighted graph.Graph using level-order breadth-first
// search. This is the sequential reference traversal; pkg/parallel must
// agree with it on every input.
package bfs

import (
	"github.com/dd0wney/cluso-bfs/pkg/graph"
)

// Unvisited marks a node the traversal never reached.
const Unvisited = -1

// Result is the outcome of one traversal.
type Result struct {
	Start     int
	Distances []int // Length N; Unvisited for unreachable nodes
	Visited   int   // Number of reachable nodes, start included
	// LevelSizes[d] is the number of nodes at distance d.
	LevelSizes []int
}

// MaxDepth returns the largest finite distance (the eccentricity of start
// within its component).
func (r *Result) MaxDepth() int {
	return len(r.LevelSizes) - 1
}

// Reachable reports whether v was reached from start.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Distances) && r.Distances[v] != Unvisited
}

// Distances returns the distance from start to every node, or Unvisited.
func Distances(g *graph.Graph, start int) ([]int, error) {
	res, err := Run(g, start)
	if err != nil {
		return nil, err
	}
	return res.Distances, nil
}

// Run performs the traversal and collects per-level statistics.
func Run(g *graph.Graph, start int) (*Result, error) {
	if g == nil {
		return nil, graph.InvalidArgument("bfs.Run", "graph", 0)
	}
	if !g.Contains(start) {
		return nil, graph.InvalidArgument("bfs.Run", "start", int64(start))
	}

	n := g.NumNodes()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unvisited
	}

	// Each node is enqueued at most once, so N slots suffice and the head
	// index replaces dequeuing.
	queue := make([]int, 0, n)
	levels := []int{1}

	dist[start] = 0
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		next := dist[current] + 1

		for _, neighbor := range g.Neighbors(current) {
			if dist[neighbor] != Unvisited {
				continue
			}
			dist[neighbor] = next
			queue = append(queue, neighbor)

			if next == len(levels) {
				levels = append(levels, 0)
			}
			levels[next]++
		}
	}

	return &Result{
		Start:      start,
		Distances:  dist,
		Visited:    len(queue),
		LevelSizes: levels,
	}, nil
}
