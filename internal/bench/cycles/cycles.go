// Package cycles reads a serialized hardware cycle counter.
//
// On amd64 the counter is the TSC, read with CPUID;RDTSC so that earlier
// instructions retire before the timestamp is taken. On arm64 it is the
// virtual counter CNTVCT_EL0 behind an ISB. Every other platform falls back
// to the monotonic clock in nanoseconds.
package cycles

// Read returns the current counter value.
//
// Consecutive reads on the same core are monotonic. Values from different
// cores are not guaranteed to be comparable.
func Read() uint64 {
	return readCounter()
}

// Name reports which counter Read uses.
func Name() string {
	return counterName()
}

// Overhead estimates the cost of a pair of Read calls by taking the minimum
// delta over n back-to-back pairs.
func Overhead(n int) uint64 {
	if n <= 0 {
		return 0
	}

	best := ^uint64(0)
	for i := 0; i < n; i++ {
		t0 := Read()
		d := Read() - t0
		if d < best {
			best = d
		}
	}
	return best
}
