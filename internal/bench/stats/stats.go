package stats

import (
	"errors"
	"math"
)

// ErrEmptySample is returned by Compute for an empty sample.
var ErrEmptySample = errors.New("empty sample")

// Confidence levels and their two-sided z-scores, widest first.
var confidenceLevels = []struct {
	level float64
	z     float64
}{
	{0.99, 2.576},
	{0.98, 2.326},
	{0.95, 1.96},
	{0.90, 1.645},
}

// Interval is a normal-approximation confidence interval for the mean.
type Interval struct {
	Level float64 `json:"level"`
	Z     float64 `json:"z"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Report holds the statistics of one trimmed sample. Values are cycle counts.
//
// Q1 and Q3 follow the descending sort: Q1 is read at floor(3M/4) and Q3 at
// floor(M/4), so Q1 <= Median <= Q3.
type Report struct {
	Count int `json:"count"`

	Min    uint64 `json:"min"`
	Q1     uint64 `json:"q1"`
	Median uint64 `json:"median"`
	Q3     uint64 `json:"q3"`
	Max    uint64 `json:"max"`

	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stdDev"`

	// ModeIndex is where the approximate mode scan settled; Mode is the
	// sample at that index.
	ModeIndex int    `json:"modeIndex"`
	Mode      uint64 `json:"mode"`

	Intervals []Interval `json:"intervals"`
}

// Compute derives a Report from a descending-sorted sample.
func Compute(sorted []uint64) (*Report, error) {
	m := len(sorted)
	if m == 0 {
		return nil, ErrEmptySample
	}

	mean := Mean(sorted)
	variance := Variance(sorted, mean)
	stddev := math.Sqrt(variance)
	modeIdx := ModeIndex(sorted)

	return &Report{
		Count:     m,
		Min:       sorted[m-1],
		Q1:        sorted[QuantileIndex(m, 0.75)],
		Median:    sorted[QuantileIndex(m, 0.5)],
		Q3:        sorted[QuantileIndex(m, 0.25)],
		Max:       sorted[0],
		Mean:      mean,
		Variance:  variance,
		StdDev:    stddev,
		ModeIndex: modeIdx,
		Mode:      sorted[modeIdx],
		Intervals: ConfidenceIntervals(mean, stddev, m),
	}, nil
}

// QuantileIndex returns the nearest-rank index floor(q*m), clamped to m-1.
func QuantileIndex(m int, q float64) int {
	idx := int(q * float64(m))
	if idx >= m {
		idx = m - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Mean accumulates value/M per sample rather than dividing a total, which
// keeps the running value near the final magnitude.
func Mean(samples []uint64) float64 {
	n := float64(len(samples))
	if n == 0 {
		return 0
	}

	var mean float64
	for _, v := range samples {
		mean += float64(v) / n
	}
	return mean
}

// Variance is the population variance around mean. The deviation is taken on
// whichever side of the mean the sample lies.
func Variance(samples []uint64, mean float64) float64 {
	n := float64(len(samples))
	if n == 0 {
		return 0
	}

	var variance float64
	for _, v := range samples {
		x := float64(v)
		if x > mean {
			variance += (x - mean) * (x - mean) / n
		} else {
			variance += (mean - x) * (mean - x) / n
		}
	}
	return variance
}

// ModeIndex scans adjacent pairs for equal values. The pair counter never
// resets, so the index moves to every later equal pair: the result is the
// last i with sorted[i] == sorted[i-1], or 0 when there is none. For a
// multimodal or long-tailed sample this is not the true mode.
func ModeIndex(sorted []uint64) int {
	var num, best, mode int
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			num++
		}
		if num > best {
			best = num
			mode = i
		}
	}
	return mode
}

// ConfidenceIntervals returns mean ± z*stddev/sqrt(m) for 99, 98, 95 and
// 90 percent, widest first.
func ConfidenceIntervals(mean, stddev float64, m int) []Interval {
	se := stddev / math.Sqrt(float64(m))

	out := make([]Interval, 0, len(confidenceLevels))
	for _, cl := range confidenceLevels {
		out = append(out, Interval{
			Level: cl.level,
			Z:     cl.z,
			Lower: mean - cl.z*se,
			Upper: mean + cl.z*se,
		})
	}
	return out
}

// InterQuartile returns Q3 - Q1.
func (r *Report) InterQuartile() uint64 {
	return r.Q3 - r.Q1
}

// LowerWhisker returns Q1 - Min.
func (r *Report) LowerWhisker() uint64 {
	return r.Q1 - r.Min
}

// UpperWhisker returns Max - Q3.
func (r *Report) UpperWhisker() uint64 {
	return r.Max - r.Q3
}

// Range returns Max - Min.
func (r *Report) Range() uint64 {
	return r.Max - r.Min
}

// RangeToIQRPercent returns (Max-Min)/(Q3-Q1)*100. A zero IQR yields +Inf,
// or NaN when the range is zero too.
func (r *Report) RangeToIQRPercent() float64 {
	return float64(r.Range()) / float64(r.InterQuartile()) * 100.0
}

// CoefficientOfVariation returns StdDev/Mean*100.
func (r *Report) CoefficientOfVariation() float64 {
	return r.StdDev / r.Mean * 100.0
}

// Interval returns the interval for level, if computed.
func (r *Report) Interval(level float64) (Interval, bool) {
	for _, iv := range r.Intervals {
		if iv.Level == level {
			return iv, true
		}
	}
	return Interval{}, false
}
