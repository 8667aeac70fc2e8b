package config

import (
	"math"
	"runtime/debug"
)

// MemoryLimit returns the byte cap applied to the generated graph. An
// explicit MaxMemoryBytes wins; otherwise SystemMemoryLimit decides.
func (c Config) MemoryLimit() uint64 {
	if c.MaxMemoryBytes > 0 {
		return c.MaxMemoryBytes
	}
	return SystemMemoryLimit()
}

// SystemMemoryLimit returns the Go runtime's soft memory limit when one is
// set (GOMEMLIMIT or debug.SetMemoryLimit), else the machine's physical
// memory. Zero means neither is known.
func SystemMemoryLimit() uint64 {
	if limit := debug.SetMemoryLimit(-1); limit > 0 && limit < math.MaxInt64 {
		return uint64(limit)
	}
	return physicalMemory()
}
