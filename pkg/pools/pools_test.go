package pools

import (
	"sync"
	"testing"
)

func TestIntPool_Get(t *testing.T) {
	pool := NewIntPool()

	tests := []struct {
		name   string
		size   int
		minCap int
	}{
		{"zero", 0, 0},
		{"small", 10, 10},
		{"small_exact", SmallInts, SmallInts},
		{"medium", 1000, 1000},
		{"large", 50000, 50000},
		{"large_above_class", LargeInts + 1, LargeInts + 1},
		{"oversized", MaxPooledInts + 1, MaxPooledInts + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pool.Get(tt.size)
			if len(s) != 0 {
				t.Errorf("Get(%d) length = %d, want 0", tt.size, len(s))
			}
			if cap(s) < tt.minCap {
				t.Errorf("Get(%d) capacity = %d, want >= %d", tt.size, cap(s), tt.minCap)
			}
		})
	}
}

func TestIntPool_PutAndReuse(t *testing.T) {
	pool := NewIntPool()

	for i := 0; i < 10; i++ {
		s := pool.Get(100)
		s = append(s, 1, 2, 3)
		pool.Put(s)
	}

	s := pool.Get(100)
	if len(s) != 0 {
		t.Errorf("After Put, Get returned slice with length %d, want 0", len(s))
	}
}

func TestIntPool_GrownBufferRefiled(t *testing.T) {
	pool := NewIntPool()

	s := pool.Get(10)
	for i := 0; i < MediumInts+10; i++ {
		s = append(s, i)
	}
	pool.Put(s) // Should land in the large class without panicking

	if got := pool.Get(MediumInts + 10); cap(got) < MediumInts+10 {
		t.Errorf("capacity = %d, want >= %d", cap(got), MediumInts+10)
	}
}

func TestIntPool_OversizedNotPooled(t *testing.T) {
	pool := NewIntPool()
	pool.Put(make([]int, 0, MaxPooledInts+1))
	pool.Put(nil)
}

func TestIntPool_Concurrent(t *testing.T) {
	pool := NewIntPool()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := pool.Get(n)
				s = append(s, j)
				pool.Put(s)
			}
		}(i * 20)
	}

	wg.Wait()
}
