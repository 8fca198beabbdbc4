package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/wesleyorama2/nanobench/internal/bench/sampler"
	"github.com/wesleyorama2/nanobench/internal/bench/snippets"
	"github.com/wesleyorama2/nanobench/internal/bench/stats"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks a configuration after ApplyDefaults.
//
// Returns nil if valid, or a *ValidationErrors naming every bad field.
func (c *BenchConfig) Validate() error {
	errs := &ValidationErrors{}

	if c.Trials < 1 || c.Trials > sampler.MaxTrials {
		errs.Add("trials", fmt.Sprintf("must be between 1 and %d, got %d", sampler.MaxTrials, c.Trials))
	}

	validateFraction("head", c.Head, errs)
	validateFraction("tail", c.Tail, errs)
	if validFraction(c.Head) && validFraction(c.Tail) {
		if err := stats.ValidateFractions(c.HeadFraction(), c.TailFraction()); err != nil {
			errs.Add("head", "head + tail must be below 1")
		}
	}

	if c.Workers < 0 {
		errs.Add("workers", fmt.Sprintf("must not be negative, got %d", c.Workers))
	}
	if c.Workers > 0 && !c.Multicore {
		errs.Add("workers", "only applies with multicore enabled")
	}

	cpu := c.PinnedCPU()
	if cpu < sampler.NoCPU {
		errs.Add("cpu", fmt.Sprintf("must be -1 (no pinning) or a core index, got %d", cpu))
	}
	if cpu != sampler.NoCPU && c.Multicore {
		errs.Add("cpu", "pinning cannot be combined with multicore")
	}

	if _, err := snippets.Lookup(c.Snippet); err != nil {
		errs.Add("snippet", err.Error())
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		errs.Add("output", fmt.Sprintf("must be %q or %q, got %q", OutputText, OutputJSON, c.Output))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validFraction(f *float64) bool {
	return f == nil || (!math.IsNaN(*f) && *f >= 0 && *f < 1)
}

func validateFraction(field string, f *float64, errs *ValidationErrors) {
	if !validFraction(f) {
		errs.Add(field, fmt.Sprintf("must be in [0, 1), got %v", *f))
	}
}
