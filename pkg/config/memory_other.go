//go:build !linux

package config

// physicalMemory is unknown off Linux; only GOMEMLIMIT or an explicit
// MaxMemoryBytes caps the graph there.
func physicalMemory() uint64 {
	return 0
}
