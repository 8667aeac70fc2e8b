// Package prng provides the seedable random sources the graph generator
// draws from.
//
// Glibc reproduces the sequence of the C library's srand/rand pair on glibc
// systems (the TYPE_3 additive feedback generator), which lets a generated
// graph match one built by a C or C++ program with the same seed, node
// count and edge count. Go selects math/rand's default source instead.
package prng

import (
	"fmt"
	"math/rand"

	"github.com/dd0wney/cluso-bfs/pkg/graph"
)

// Source kinds accepted by New.
const (
	KindGlibc = "glibc"
	KindGo    = "go"
)

const (
	glibcDegree    = 31
	glibcSeparator = 3
	glibcDiscard   = glibcDegree * 10
)

// Glibc replicates glibc's rand(). It is not safe for concurrent use.
type Glibc struct {
	state [glibcDegree]int32
	front int
	rear  int
}

// NewGlibc returns a generator in the state srand(seed) leaves behind.
func NewGlibc(seed uint32) *Glibc {
	g := &Glibc{}
	g.seed(seed)
	return g
}

func (g *Glibc) seed(seed uint32) {
	if seed == 0 {
		seed = 1
	}

	word := int32(seed)
	g.state[0] = word
	for i := 1; i < glibcDegree; i++ {
		// state[i] = 16807 * state[i-1] % (2^31 - 1) without 32-bit overflow
		hi := int64(word) / 127773
		lo := int64(word) % 127773
		w := 16807*lo - 2836*hi
		if w < 0 {
			w += 2147483647
		}
		word = int32(w)
		g.state[i] = word
	}

	g.front = glibcSeparator
	g.rear = 0
	for range glibcDiscard {
		g.Rand()
	}
}

// Rand returns the next value in [0, 2^31), the same as C's rand().
func (g *Glibc) Rand() int32 {
	v := uint32(g.state[g.front]) + uint32(g.state[g.rear])
	g.state[g.front] = int32(v)

	g.front++
	if g.front == glibcDegree {
		g.front = 0
	}
	g.rear++
	if g.rear == glibcDegree {
		g.rear = 0
	}
	return int32(v >> 1)
}

// Int63 implements rand.Source. The value is rand()'s, so Int63() % n equals
// rand() % n in C.
func (g *Glibc) Int63() int64 {
	return int64(g.Rand())
}

// Seed implements rand.Source; the seed is truncated to 32 bits like srand's
// unsigned int parameter.
func (g *Glibc) Seed(seed int64) {
	g.seed(uint32(seed))
}

// New returns a seeded source of the given kind.
func New(kind string, seed int64) (rand.Source, error) {
	switch kind {
	case KindGlibc, "":
		return NewGlibc(uint32(seed)), nil
	case KindGo:
		return rand.NewSource(seed), nil
	default:
		return nil, &graph.Error{Op: "prng.New", Cause: fmt.Errorf("%w: unknown source kind %q", graph.ErrInvalidArgument, kind)}
	}
}
