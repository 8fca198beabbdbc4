package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	sorted := make([]uint64, 1000)
	for i := range sorted {
		sorted[i] = uint64(1000 - i)
	}

	h, err := Histogram(sorted)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), h.Count)
	assert.InDelta(t, 500, h.P50, 5)
	assert.InDelta(t, 900, h.P90, 9)
	assert.InDelta(t, 990, h.P99, 10)
	assert.InDelta(t, 1000, h.Max, 1)
	assert.InDelta(t, 500.5, h.Mean, 5)
}

func TestHistogram_Empty(t *testing.T) {
	_, err := Histogram(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestHistogram_WrappedDelta(t *testing.T) {
	h, err := Histogram([]uint64{math.MaxUint64, 10, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(3), h.Count)
}
