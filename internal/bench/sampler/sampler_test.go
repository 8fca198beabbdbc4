package sampler

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stepClock advances by step on every read.
func stepClock(step uint64) Clock {
	var now atomic.Uint64
	return func() uint64 {
		return now.Add(step)
	}
}

func TestNew_Validation(t *testing.T) {
	fn := func(int) {}

	_, err := New(Config{Trials: 0, CPU: NoCPU}, fn, nil)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = New(Config{Trials: MaxTrials + 1, CPU: NoCPU}, fn, nil)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = New(Config{Trials: 10, CPU: NoCPU}, nil, nil)
	assert.Error(t, err)
}

func TestRun_SingleThreaded(t *testing.T) {
	var calls []int
	s, err := New(Config{Trials: 5, CPU: NoCPU, Clock: stepClock(3)}, func(i int) {
		calls = append(calls, i)
	}, quietLogger())
	require.NoError(t, err)

	samples, err := s.Run()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, calls)
	assert.Equal(t, []uint64{3, 3, 3, 3, 3}, samples)
	assert.Equal(t, 1, s.Workers())
}

func TestRun_DeltaIncludesSnippet(t *testing.T) {
	var now uint64
	clock := func() uint64 { return now }

	s, err := New(Config{Trials: 4, CPU: NoCPU, Clock: clock}, func(i int) {
		now += uint64(i * 10)
	}, quietLogger())
	require.NoError(t, err)

	samples, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 10, 20, 30}, samples)
}

func TestRun_MulticoreFillsEverySlotOnce(t *testing.T) {
	const trials = 10_007
	var hits [trials]atomic.Int32

	s, err := New(Config{
		Trials:    trials,
		Multicore: true,
		Workers:   4,
		CPU:       NoCPU,
		Clock:     func() uint64 { return 0 },
	}, func(i int) {
		hits[i].Add(1)
	}, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, s.Workers())

	samples, err := s.Run()
	require.NoError(t, err)
	require.Len(t, samples, trials)

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("trial %d ran %d times, want 1", i, got)
		}
	}
}

func TestRun_MulticoreDefaultWorkers(t *testing.T) {
	s, err := New(Config{Trials: 100, Multicore: true, CPU: NoCPU}, func(int) {}, quietLogger())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Workers(), 1)

	samples, err := s.Run()
	require.NoError(t, err)
	assert.Len(t, samples, 100)
}

func TestRun_RealCounter(t *testing.T) {
	s, err := New(Config{Trials: 1000, CPU: NoCPU}, func(int) {}, quietLogger())
	require.NoError(t, err)

	samples, err := s.Run()
	require.NoError(t, err)
	assert.Len(t, samples, 1000)
}

func TestChunkSize(t *testing.T) {
	tests := []struct {
		n, workers, want int
	}{
		{1_000_000, 4, 3906},
		{10, 4, 1},
		{100, 0, 1},
		{0, 8, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, chunkSize(tt.n, tt.workers), "n=%d workers=%d", tt.n, tt.workers)
	}
}

func TestAllocate(t *testing.T) {
	buf, err := allocate(16)
	require.NoError(t, err)
	assert.Len(t, buf, 16)
}
