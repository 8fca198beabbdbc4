// Package report renders benchmark results as a labelled text report or JSON.
package report

import (
	"math"

	"github.com/wesleyorama2/nanobench/internal/bench/stats"
)

// Result is everything a run produced.
type Result struct {
	Name    string `json:"name,omitempty"`
	Snippet string `json:"snippet"`
	Counter string `json:"counter"`
	Workers int    `json:"workers"`

	// CounterOverhead is the minimum cost of a back-to-back pair of counter
	// reads. Zero when it was not measured.
	CounterOverhead uint64 `json:"counterOverhead,omitempty"`

	SampleSize    int     `json:"sampleSize"`
	ReducedSample int     `json:"reducedSample"`
	Head          float64 `json:"head"`
	Tail          float64 `json:"tail"`

	Report  *stats.Report `json:"report"`
	Spreads Spreads       `json:"spreads"`

	Baseline  *Baseline               `json:"baseline,omitempty"`
	Histogram *stats.HistogramSummary `json:"histogram,omitempty"`
}

// Spreads are the differences between order statistics. Ratios are nil when
// they are not finite.
type Spreads struct {
	InterQuartile          uint64   `json:"q3MinusQ1"`
	LowerWhisker           uint64   `json:"q1MinusMin"`
	UpperWhisker           uint64   `json:"maxMinusQ3"`
	Range                  uint64   `json:"maxMinusMin"`
	RangeToIQRPercent      *float64 `json:"rangeToIqrPercent"`
	CoefficientOfVariation *float64 `json:"stdDevToMeanPercent"`
}

// Baseline is the empty-snippet run used to estimate timer overhead.
type Baseline struct {
	Report  *stats.Report `json:"report"`
	NetMean float64       `json:"netMean"`
}

// NewResult assembles a Result. trimmed must be the sample r was computed from.
func NewResult(trimmed *stats.Trimmed, r *stats.Report) *Result {
	return &Result{
		SampleSize:    trimmed.Original,
		ReducedSample: len(trimmed.Samples),
		Report:        r,
		Spreads:       SpreadsOf(r),
	}
}

// WithBaseline attaches a baseline report and computes the net mean.
func (res *Result) WithBaseline(b *stats.Report) *Result {
	res.Baseline = &Baseline{
		Report:  b,
		NetMean: res.Report.Mean - b.Mean,
	}
	return res
}

// SpreadsOf derives Spreads from a report.
func SpreadsOf(r *stats.Report) Spreads {
	return Spreads{
		InterQuartile:          r.InterQuartile(),
		LowerWhisker:           r.LowerWhisker(),
		UpperWhisker:           r.UpperWhisker(),
		Range:                  r.Range(),
		RangeToIQRPercent:      finite(r.RangeToIQRPercent()),
		CoefficientOfVariation: finite(r.CoefficientOfVariation()),
	}
}

func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}
