//go:build arm64

package cycles

// serializedCNTVCT executes ISB followed by a read of CNTVCT_EL0.
// Implemented in cycles_arm64.s
//
//go:noescape
func serializedCNTVCT() uint64

func readCounter() uint64 {
	return serializedCNTVCT()
}

func counterName() string {
	return "isb+cntvct_el0"
}
