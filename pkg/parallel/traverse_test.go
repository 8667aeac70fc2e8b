package parallel

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-bfs/pkg/bfs"
	"github.com/dd0wney/cluso-bfs/pkg/graph"
	"github.com/dd0wney/cluso-bfs/pkg/logging"
)

// newTestTraverser creates a traverser with the given chunk floor and closes
// it when the test ends
func newTestTraverser(t testing.TB, g *graph.Graph, workers, minChunk int) *Traverser {
	t.Helper()
	pt, err := NewTraverser(g, workers, logging.NopLogger{})
	require.NoError(t, err)
	pt.SetMinChunk(minChunk)
	t.Cleanup(pt.Close)
	return pt
}

func generated(t testing.TB, nodes, edges int, seed int64) *graph.Graph {
	t.Helper()
	g, _, err := graph.Generate(graph.GenerateOptions{Nodes: nodes, Edges: edges, Source: rand.NewSource(seed)})
	require.NoError(t, err)
	return g
}

// TestNewTraverser tests worker defaults and argument checks
func TestNewTraverser(t *testing.T) {
	g := generated(t, 10, 10, 1)

	pt, err := NewTraverser(g, 0, nil)
	require.NoError(t, err)
	assert.Positive(t, pt.Workers(), "0 should use NumCPU")
	pt.Close()

	pt, err = NewTraverser(g, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, pt.Workers())
	pt.Close()

	_, err = NewTraverser(nil, 2, nil)
	assert.True(t, graph.IsInvalidArgument(err))

	_, err = NewTraverser(g, MaxWorkers+1, nil)
	assert.ErrorIs(t, err, ErrTooManyWorkers)
}

// TestTraverser_Scenarios checks the fixed path and disconnected examples
func TestTraverser_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]int
		start int
		want  []int
	}{
		{"path of three", [][]int{{1}, {0, 2}, {1}}, 0, []int{0, 1, 2}},
		{"disconnected pairs", [][]int{{1}, {0}, {3}, {2}}, 0, []int{0, 1, bfs.Unvisited, bfs.Unvisited}},
		{"single node", [][]int{{}}, 0, []int{0}},
		{"isolated start", [][]int{{}, {2}, {1}}, 0, []int{0, bfs.Unvisited, bfs.Unvisited}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := graph.FromAdjacency(tt.lists)
			require.NoError(t, err)

			pt := newTestTraverser(t, g, 4, 1)
			got, err := pt.Distances(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTraverser_MatchesSequential compares against the reference traversal
func TestTraverser_MatchesSequential(t *testing.T) {
	tests := []struct {
		name     string
		nodes    int
		edges    int
		workers  int
		minChunk int
	}{
		{"sparse many components", 5000, 2000, 4, 1},
		{"dense one worker", 2000, 20000, 1, 1},
		{"dense small chunks", 20000, 100000, 8, 16},
		{"default chunking", 20000, 100000, 8, DefaultMinChunk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := generated(t, tt.nodes, tt.edges, int64(tt.nodes+tt.edges))
			pt := newTestTraverser(t, g, tt.workers, tt.minChunk)

			for _, start := range []int{0, tt.nodes / 2, tt.nodes - 1} {
				want, err := bfs.Run(g, start)
				require.NoError(t, err)

				got, err := pt.Run(start)
				require.NoError(t, err)

				assert.Equal(t, want.Distances, got.Distances, "start %d", start)
				assert.Equal(t, want.Visited, got.Visited, "start %d", start)
				assert.Equal(t, want.LevelSizes, got.LevelSizes, "start %d", start)
			}
		})
	}
}

// TestTraverser_Reusable runs several traversals on one traverser
func TestTraverser_Reusable(t *testing.T) {
	g := generated(t, 3000, 9000, 11)
	pt := newTestTraverser(t, g, 4, 8)

	first, err := pt.Distances(7)
	require.NoError(t, err)
	second, err := pt.Distances(7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestTraverser_InvalidStart tests out-of-range start nodes
func TestTraverser_InvalidStart(t *testing.T) {
	g := generated(t, 10, 20, 1)
	pt := newTestTraverser(t, g, 2, 1)

	for _, start := range []int{-1, 10} {
		_, err := pt.Distances(start)
		assert.True(t, errors.Is(err, graph.ErrInvalidArgument), "start %d: %v", start, err)
	}
}

// TestTraverser_Closed tests traversal after Close
func TestTraverser_Closed(t *testing.T) {
	g, err := graph.FromAdjacency([][]int{{1}, {0}})
	require.NoError(t, err)

	pt, err := NewTraverser(g, 2, nil)
	require.NoError(t, err)
	pt.Close()

	_, err = pt.Distances(0)
	assert.ErrorIs(t, err, ErrTraverserClosed)
}

// countingPool tracks buffers handed out and returned, and panics on the
// failOn-th Get
type countingPool struct {
	mu     sync.Mutex
	gets   int
	puts   int
	calls  int
	failOn int
}

func (p *countingPool) Get(size int) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls == p.failOn {
		panic("buffer exhausted")
	}
	p.gets++
	return make([]int, 0, size)
}

func (p *countingPool) Put(s []int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.puts++
}

func (p *countingPool) outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gets - p.puts
}

// TestTraverser_PanicReturnsBuffers checks that a failed level gives back
// the buffers its surviving chunks claimed
func TestTraverser_PanicReturnsBuffers(t *testing.T) {
	// 0 fans out to 1..4, each of which has one leaf
	g, err := graph.FromAdjacency([][]int{
		{1, 2, 3, 4},
		{0, 5}, {0, 6}, {0, 7}, {0, 8},
		{1}, {2}, {3}, {4},
	})
	require.NoError(t, err)

	pt := newTestTraverser(t, g, 4, 1)
	pool := &countingPool{failOn: 3}
	pt.buffers = pool

	_, err = pt.Run(0)
	require.ErrorIs(t, err, ErrTaskPanicked)
	assert.Equal(t, 4, pool.gets, "one chunk on level 0, three surviving chunks on level 1")
	assert.Zero(t, pool.outstanding(), "every claimed buffer goes back to the pool")
}

// TestTraverser_SuccessReturnsBuffers checks buffer accounting on a full run
func TestTraverser_SuccessReturnsBuffers(t *testing.T) {
	g := generated(t, 3000, 9000, 5)
	pt := newTestTraverser(t, g, 4, 8)
	pool := &countingPool{}
	pt.buffers = pool

	_, err := pt.Run(0)
	require.NoError(t, err)
	assert.Positive(t, pool.gets)
	assert.Zero(t, pool.outstanding())
}

func BenchmarkTraverser(b *testing.B) {
	g := generated(b, 100_000, 1_000_000, 42)
	pt, err := NewTraverser(g, 0, nil)
	if err != nil {
		b.Fatal(err)
	}
	defer pt.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pt.Distances(0); err != nil {
			b.Fatal(err)
		}
	}
}
