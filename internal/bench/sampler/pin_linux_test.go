//go:build linux

package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PinnedToCPU0(t *testing.T) {
	s, err := New(Config{Trials: 100, CPU: 0}, func(int) {}, quietLogger())
	require.NoError(t, err)

	samples, err := s.Run()
	if err != nil {
		t.Skipf("affinity not permitted here: %v", err)
	}
	assert.Len(t, samples, 100)
}
