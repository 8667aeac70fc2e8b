package pools

import (
	"sync"
)

// Size classes for pooled buffers.
const (
	SmallInts  = 256
	MediumInts = 4096
	LargeInts  = 65536

	// MaxPooledInts is the largest capacity Put keeps. Bigger buffers are
	// left to the garbage collector so one huge frontier does not pin memory.
	MaxPooledInts = 1 << 20
)

// IntPool pools []int buffers by capacity class.
type IntPool struct {
	small  sync.Pool // <= SmallInts
	medium sync.Pool // <= MediumInts
	large  sync.Pool // <= MaxPooledInts
}

// NewIntPool creates an empty pool.
func NewIntPool() *IntPool {
	return &IntPool{
		small:  sync.Pool{New: newInts(SmallInts)},
		medium: sync.Pool{New: newInts(MediumInts)},
		large:  sync.Pool{New: newInts(LargeInts)},
	}
}

func newInts(capacity int) func() any {
	return func() any {
		s := make([]int, 0, capacity)
		return &s
	}
}

func (p *IntPool) class(c int) *sync.Pool {
	switch {
	case c <= SmallInts:
		return &p.small
	case c <= MediumInts:
		return &p.medium
	case c <= MaxPooledInts:
		return &p.large
	default:
		return nil
	}
}

// Get returns an empty slice with capacity for at least size elements.
func (p *IntPool) Get(size int) []int {
	pool := p.class(size)
	if pool == nil {
		return make([]int, 0, size)
	}

	sp, ok := pool.Get().(*[]int)
	if !ok || cap(*sp) < size {
		return make([]int, 0, size)
	}
	return (*sp)[:0]
}

// Put hands a buffer back. The caller must not use s afterwards.
func (p *IntPool) Put(s []int) {
	c := cap(s)
	if c == 0 {
		return
	}
	// A buffer that grew past its class is filed by what it can hold now.
	pool := p.class(c)
	if pool == nil {
		return
	}
	s = s[:0]
	pool.Put(&s)
}
