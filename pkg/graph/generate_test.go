package graph

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Invariants(t *testing.T) {
	g, stats, err := Generate(GenerateOptions{
		Nodes:  500,
		Edges:  5000,
		Source: rand.NewSource(42),
	})
	require.NoError(t, err)

	assert.Equal(t, 500, g.NumNodes())
	assert.Equal(t, 5000, stats.Attempts)
	assert.Equal(t, stats.Attempts, stats.Accepted+stats.SelfLoopsRejected)
	assert.Equal(t, stats.Accepted, g.NumEdges())
	assert.LessOrEqual(t, g.NumEdges(), 5000)

	// No self-loops, every entry mirrored with equal multiplicity.
	counts := make(map[[2]int]int)
	for u := 0; u < g.NumNodes(); u++ {
		for _, v := range g.Neighbors(u) {
			require.NotEqual(t, u, v, "self-loop at %d", u)
			require.True(t, g.Contains(v))
			counts[[2]int{u, v}]++
		}
	}
	for key, c := range counts {
		assert.Equal(t, c, counts[[2]int{key[1], key[0]}], "asymmetric edge %v", key)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := func() GenerateOptions {
		return GenerateOptions{Nodes: 200, Edges: 1000, Source: rand.NewSource(7)}
	}

	a, _, err := Generate(opts())
	require.NoError(t, err)
	b, _, err := Generate(opts())
	require.NoError(t, err)

	for u := 0; u < a.NumNodes(); u++ {
		require.Equal(t, a.Neighbors(u), b.Neighbors(u), "node %d", u)
	}
}

func TestGenerate_SingleNodeRejectsEverything(t *testing.T) {
	g, stats, err := Generate(GenerateOptions{Nodes: 1, Edges: 100, Source: rand.NewSource(1)})
	require.NoError(t, err)

	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 100, stats.SelfLoopsRejected)
}

func TestGenerate_ZeroEdges(t *testing.T) {
	g, stats, err := Generate(GenerateOptions{Nodes: 10, Edges: 0, Source: rand.NewSource(1)})
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 0, stats.Attempts)
}

func TestGenerate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		opts GenerateOptions
	}{
		{"zero nodes", GenerateOptions{Nodes: 0, Edges: 1, Source: rand.NewSource(1)}},
		{"negative nodes", GenerateOptions{Nodes: -5, Edges: 1, Source: rand.NewSource(1)}},
		{"negative edges", GenerateOptions{Nodes: 5, Edges: -1, Source: rand.NewSource(1)}},
		{"nil source", GenerateOptions{Nodes: 5, Edges: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Generate(tt.opts)
			assert.True(t, IsInvalidArgument(err), "error = %v", err)
		})
	}
}

func TestGenerate_AllocationFailure(t *testing.T) {
	_, stats, err := Generate(GenerateOptions{
		Nodes:    1000,
		Edges:    1000,
		Source:   rand.NewSource(1),
		MaxBytes: 1024,
	})
	require.Error(t, err)
	assert.True(t, IsAllocationFailure(err), "error = %v", err)
	assert.Greater(t, stats.EstimatedBytes, uint64(1024))
}

func TestEstimateBytes(t *testing.T) {
	small, ok := EstimateBytes(10, 10)
	require.True(t, ok)
	larger, ok := EstimateBytes(10, 20)
	require.True(t, ok)
	assert.Greater(t, larger, small)

	_, ok = EstimateBytes(math.MaxInt, math.MaxInt)
	assert.False(t, ok, "overflow not detected")
}
