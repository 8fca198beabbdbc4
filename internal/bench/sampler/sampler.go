// Package sampler runs timed trials of a snippet and records one cycle delta
// per trial.
package sampler

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wesleyorama2/nanobench/internal/bench/cycles"
	"github.com/wesleyorama2/nanobench/internal/bench/snippets"
)

// MaxTrials bounds the sample buffer to 8 GiB.
const MaxTrials = 1 << 30

// NoCPU disables thread pinning.
const NoCPU = -1

var (
	// ErrAllocation is returned when the sample buffer cannot be allocated.
	ErrAllocation = errors.New("failed to allocate sample buffer")

	// ErrPinUnsupported is returned when CPU pinning is requested on a
	// platform without thread affinity support.
	ErrPinUnsupported = errors.New("cpu pinning is not supported on this platform")
)

// Clock returns a monotonic counter value.
type Clock func() uint64

// Config controls a sampling run.
type Config struct {
	// Trials is the number of timed runs.
	Trials int

	// Multicore spreads trials over Workers goroutines. Results are not a
	// reliable benchmark: other workers perturb the timed core's caches.
	Multicore bool

	// Workers is the goroutine count in multicore mode (0 = GOMAXPROCS).
	Workers int

	// CPU pins the single-threaded loop to one core (NoCPU to skip).
	CPU int

	// Clock overrides the counter; nil uses cycles.Read.
	Clock Clock
}

// Sampler times a snippet.
type Sampler struct {
	cfg     Config
	snippet snippets.Func
	clock   Clock
	logger  *slog.Logger
}

// New creates a sampler for fn.
func New(cfg Config, fn snippets.Func, logger *slog.Logger) (*Sampler, error) {
	if fn == nil {
		return nil, errors.New("sampler: nil snippet")
	}
	if cfg.Trials <= 0 || cfg.Trials > MaxTrials {
		return nil, fmt.Errorf("%w: trial count %d outside [1, %d]", ErrAllocation, cfg.Trials, MaxTrials)
	}
	if logger == nil {
		logger = slog.Default()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = cycles.Read
	}

	return &Sampler{cfg: cfg, snippet: fn, clock: clock, logger: logger}, nil
}

// Workers returns the number of goroutines Run will use.
func (s *Sampler) Workers() int {
	if !s.cfg.Multicore {
		return 1
	}
	if s.cfg.Workers > 0 {
		return s.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Run executes every trial and returns the per-trial deltas in trial order.
func (s *Sampler) Run() ([]uint64, error) {
	samples, err := allocate(s.cfg.Trials)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if s.cfg.Multicore {
		s.logger.Warn("multicore sampling enabled; results are not a reliable benchmark",
			"workers", s.Workers())
		err = s.runParallel(samples)
	} else {
		err = s.runPinned(samples)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("sampling finished",
		"trials", len(samples),
		"workers", s.Workers(),
		"elapsed", time.Since(start))

	return samples, nil
}

// allocate converts an out-of-range make into ErrAllocation. A genuine
// out-of-memory condition still aborts the process.
func allocate(n int) (buf []uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d samples: %v", ErrAllocation, n, r)
		}
	}()
	return make([]uint64, n), nil
}

func (s *Sampler) runPinned(samples []uint64) error {
	if s.cfg.CPU != NoCPU {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := pinThread(s.cfg.CPU); err != nil {
			return fmt.Errorf("pin to cpu %d: %w", s.cfg.CPU, err)
		}
		s.logger.Debug("sampling thread pinned", "cpu", s.cfg.CPU)
	}

	s.sampleRange(samples, 0, len(samples))
	return nil
}

// runParallel hands out index chunks from a shared cursor. Each trial writes
// only its own slot, so the buffer needs no locking.
func (s *Sampler) runParallel(samples []uint64) error {
	n := len(samples)
	workers := s.Workers()
	chunk := chunkSize(n, workers)

	var next atomic.Int64
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				end := int(next.Add(int64(chunk)))
				begin := end - chunk
				if begin >= n {
					return nil
				}
				s.sampleRange(samples, begin, min(end, n))
			}
		})
	}
	return g.Wait()
}

func (s *Sampler) sampleRange(samples []uint64, begin, end int) {
	clock := s.clock
	fn := s.snippet
	for i := begin; i < end; i++ {
		t0 := clock()
		fn(i)
		samples[i] = clock() - t0
	}
}

// chunkSize aims for roughly 64 claims per worker.
func chunkSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	c := n / (workers * 64)
	if c < 1 {
		c = 1
	}
	return c
}
