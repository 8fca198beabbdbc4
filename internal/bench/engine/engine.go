// Package engine runs the full benchmark pipeline: sample, sort, trim,
// compute, assemble a result.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/wesleyorama2/nanobench/internal/bench/config"
	"github.com/wesleyorama2/nanobench/internal/bench/cycles"
	"github.com/wesleyorama2/nanobench/internal/bench/report"
	"github.com/wesleyorama2/nanobench/internal/bench/sampler"
	"github.com/wesleyorama2/nanobench/internal/bench/snippets"
	"github.com/wesleyorama2/nanobench/internal/bench/stats"
)

// overheadPairs is the number of back-to-back counter reads used to estimate
// the cost of measuring.
const overheadPairs = 10000

// Engine is the benchmark orchestrator.
//
// Example usage:
//
//	cfg, _ := config.LoadConfig("bench.yaml")
//	eng, _ := engine.New(cfg, slog.Default())
//	result, _ := eng.Run()
//	report.NewTextWriter(os.Stdout, false).Write(result)
type Engine struct {
	config  *config.BenchConfig
	snippet snippets.Snippet
	clock   sampler.Clock
	logger  *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces the hardware counter, mainly for tests.
func WithClock(c sampler.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// New validates cfg and resolves its snippet.
func New(cfg *config.BenchConfig, logger *slog.Logger, opts ...Option) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	snip, err := snippets.Lookup(cfg.Snippet)
	if err != nil {
		return nil, err
	}

	e := &Engine{config: cfg, snippet: snip, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run executes the configured benchmark and, if enabled, the baseline.
func (e *Engine) Run() (*report.Result, error) {
	cfg := e.config

	if cfg.Baseline && e.snippet.Name == snippets.Default {
		e.logger.Info("baseline skipped: the measured snippet is already the empty snippet")
	}

	trimmed, r, workers, err := e.measure(e.snippet)
	if err != nil {
		return nil, err
	}

	res := report.NewResult(trimmed, r)
	res.Name = cfg.Name
	res.Snippet = e.snippet.Name
	res.Counter = e.counterName()
	res.Workers = workers
	if e.clock == nil {
		res.CounterOverhead = cycles.Overhead(overheadPairs)
		e.logger.Debug("counter overhead", "pairs", overheadPairs, "min", res.CounterOverhead)
	}
	res.Head = cfg.HeadFraction()
	res.Tail = cfg.TailFraction()

	if cfg.Histogram {
		res.Histogram, err = stats.Histogram(trimmed.Samples)
		if err != nil {
			return nil, fmt.Errorf("histogram: %w", err)
		}
	}

	if cfg.Baseline && e.snippet.Name != snippets.Default {
		empty, err := snippets.Lookup(snippets.Default)
		if err != nil {
			return nil, err
		}
		_, base, _, err := e.measure(empty)
		if err != nil {
			return nil, fmt.Errorf("baseline: %w", err)
		}
		res.WithBaseline(base)
	}

	return res, nil
}

func (e *Engine) measure(snip snippets.Snippet) (*stats.Trimmed, *stats.Report, int, error) {
	cfg := e.config
	log := e.logger.With("snippet", snip.Name)

	s, err := sampler.New(sampler.Config{
		Trials:    cfg.Trials,
		Multicore: cfg.Multicore,
		Workers:   cfg.Workers,
		CPU:       cfg.PinnedCPU(),
		Clock:     e.clock,
	}, snip.Run, log)
	if err != nil {
		return nil, nil, 0, err
	}

	log.Info("sampling", "trials", cfg.Trials, "workers", s.Workers(), "counter", e.counterName())
	samples, err := s.Run()
	if err != nil {
		return nil, nil, 0, err
	}

	start := time.Now()
	stats.SortDescending(samples)
	trimmed, err := stats.Trim(samples, cfg.HeadFraction(), cfg.TailFraction())
	if err != nil {
		return nil, nil, 0, err
	}
	log.Debug("samples trimmed",
		"from", trimmed.From,
		"to", trimmed.To,
		"retained", len(trimmed.Samples),
		"elapsed", time.Since(start))

	r, err := stats.Compute(trimmed.Samples)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("statistics: %w", err)
	}
	return trimmed, r, s.Workers(), nil
}

func (e *Engine) counterName() string {
	if e.clock != nil {
		return "custom"
	}
	return cycles.Name()
}
