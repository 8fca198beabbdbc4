// Package stats trims sorted samples and computes the descriptive statistics
// nanobench reports.
//
// All samples are kept in descending order: index 0 holds the maximum and the
// last index the minimum. Quantile positions are read against that order.
package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidFraction is returned for cut fractions outside [0, 1) or whose
// sum is not below 1.
var ErrInvalidFraction = errors.New("invalid trim fraction")

// Trimmed is the retained range of a descending-sorted sample.
type Trimmed struct {
	// Samples is an independently owned copy of sorted[From:To].
	Samples []uint64

	// From and To bound the retained range: 0 <= From <= To <= Original.
	From int
	To   int

	// Original is the sample count before trimming.
	Original int
}

// Reduced reports whether trimming dropped anything.
func (t *Trimmed) Reduced() bool {
	return len(t.Samples) != t.Original
}

// SortDescending sorts samples in place, largest first.
func SortDescending(samples []uint64) {
	slices.SortFunc(samples, func(a, b uint64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
}

// ValidateFractions checks head and tail cut fractions.
func ValidateFractions(head, tail float64) error {
	if math.IsNaN(head) || head < 0 || head >= 1 {
		return fmt.Errorf("%w: head %v not in [0, 1)", ErrInvalidFraction, head)
	}
	if math.IsNaN(tail) || tail < 0 || tail >= 1 {
		return fmt.Errorf("%w: tail %v not in [0, 1)", ErrInvalidFraction, tail)
	}
	if head+tail >= 1 {
		return fmt.Errorf("%w: head+tail %v must be below 1", ErrInvalidFraction, head+tail)
	}
	return nil
}

// Bounds returns the retained range for n samples: From = floor(head*n) and
// To = n - floor(tail*n).
func Bounds(n int, head, tail float64) (from, to int) {
	from = int(math.Floor(head * float64(n)))
	to = n - int(math.Floor(tail*float64(n)))
	return from, to
}

// Trim drops the largest head fraction and the smallest tail fraction of a
// descending-sorted slice. With both fractions zero the whole slice is
// retained. The result never aliases sorted.
func Trim(sorted []uint64, head, tail float64) (*Trimmed, error) {
	if err := ValidateFractions(head, tail); err != nil {
		return nil, err
	}

	n := len(sorted)
	from, to := Bounds(n, head, tail)
	if from > to {
		// only reachable through float rounding on tiny n
		from = to
	}

	return &Trimmed{
		Samples:  slices.Clone(sorted[from:to]),
		From:     from,
		To:       to,
		Original: n,
	}, nil
}
