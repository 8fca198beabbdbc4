//go:build !amd64 && !arm64

package cycles

import "time"

var epoch = time.Now()

func readCounter() uint64 {
	return uint64(time.Since(epoch).Nanoseconds())
}

func counterName() string {
	return "monotonic-ns"
}
