// Package graph holds the undirected adjacency-list graph that the BFS
// benchmark traverses, plus the random generator that builds it.
//
// Nodes are dense indices in [0, N). Every edge is stored twice, once in
// each endpoint's list, so Neighbors(u) contains v exactly as often as
// Neighbors(v) contains u. Parallel edges are kept; self-loops are rejected.
package graph

// Graph is an undirected graph stored as one adjacency list per node.
// It is built once and treated as read-only afterwards, so concurrent
// readers need no locking.
type Graph struct {
	adj     [][]int
	entries int
}

// New creates a graph with n isolated nodes.
func New(n int) (*Graph, error) {
	if n <= 0 {
		return nil, InvalidArgument("New", "nodes", int64(n))
	}
	return &Graph{adj: make([][]int, n)}, nil
}

// FromAdjacency builds a graph from explicit adjacency lists. The lists are
// copied. Out-of-range neighbors, self-loops and asymmetric entries are
// rejected with ErrInvalidArgument.
func FromAdjacency(lists [][]int) (*Graph, error) {
	n := len(lists)
	if n == 0 {
		return nil, InvalidArgument("FromAdjacency", "nodes", 0)
	}

	g := &Graph{adj: make([][]int, n)}
	for u, nbrs := range lists {
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return nil, InvalidArgument("FromAdjacency", "neighbor", int64(v))
			}
			if v == u {
				return nil, InvalidArgument("FromAdjacency", "self_loop", int64(u))
			}
		}
		g.adj[u] = append([]int(nil), nbrs...)
		g.entries += len(nbrs)
	}

	if u, ok := g.asymmetricNode(); !ok {
		return nil, InvalidArgument("FromAdjacency", "asymmetric_node", int64(u))
	}
	return g, nil
}

// asymmetricNode checks that every u->v entry has a matching v->u entry with
// the same multiplicity. It returns the first offending node and false.
func (g *Graph) asymmetricNode() (int, bool) {
	counts := make(map[[2]int]int)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			counts[[2]int{u, v}]++
		}
	}
	for key, c := range counts {
		if counts[[2]int{key[1], key[0]}] != c {
			return key[0], false
		}
	}
	return 0, true
}

// AddEdge inserts the undirected edge {u, v} into both adjacency lists.
func (g *Graph) AddEdge(u, v int) error {
	if !g.Contains(u) {
		return InvalidArgument("AddEdge", "u", int64(u))
	}
	if !g.Contains(v) {
		return InvalidArgument("AddEdge", "v", int64(v))
	}
	if u == v {
		return InvalidArgument("AddEdge", "self_loop", int64(u))
	}
	g.addEdge(u, v)
	return nil
}

// addEdge skips validation; callers guarantee 0 <= u, v < N and u != v.
func (g *Graph) addEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.entries += 2
}

// NumNodes returns N.
func (g *Graph) NumNodes() int {
	return len(g.adj)
}

// NumEdges returns the number of undirected edges, counting duplicates.
func (g *Graph) NumEdges() int {
	return g.entries / 2
}

// Contains reports whether u is a valid node index.
func (g *Graph) Contains(u int) bool {
	return u >= 0 && u < len(g.adj)
}

// Neighbors returns u's adjacency list. The slice is shared with the graph
// and must not be modified.
func (g *Graph) Neighbors(u int) []int {
	return g.adj[u]
}

// Degree returns the length of u's adjacency list.
func (g *Graph) Degree(u int) int {
	return len(g.adj[u])
}
