//go:build amd64

package cycles

// serializedTSC executes CPUID followed by RDTSC.
// Implemented in cycles_amd64.s
//
//go:noescape
func serializedTSC() uint64

func readCounter() uint64 {
	return serializedTSC()
}

func counterName() string {
	return "cpuid+rdtsc"
}
