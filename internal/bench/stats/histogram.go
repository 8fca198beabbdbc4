package stats

import (
	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	histogramSigFigs = 3

	// histogramMax caps recorded values; a wrapped cross-core delta would
	// otherwise overflow int64.
	histogramMax = 1 << 62
)

// HistogramSummary is an HDR histogram view of a sample. Percentiles are
// bucketed to three significant figures, so they cross-check the exact
// nearest-rank values rather than replace them.
type HistogramSummary struct {
	Count  int64   `json:"count"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	P50    int64   `json:"p50"`
	P90    int64   `json:"p90"`
	P99    int64   `json:"p99"`
	P999   int64   `json:"p999"`
}

// Histogram builds a HistogramSummary from a descending-sorted sample.
func Histogram(sorted []uint64) (*HistogramSummary, error) {
	if len(sorted) == 0 {
		return nil, ErrEmptySample
	}

	highest := clampValue(sorted[0])
	if highest < 2 {
		highest = 2
	}

	hist := hdrhistogram.New(1, highest, histogramSigFigs)
	for _, v := range sorted {
		if err := hist.RecordValue(clampValue(v)); err != nil {
			return nil, err
		}
	}

	return &HistogramSummary{
		Count:  hist.TotalCount(),
		Min:    hist.Min(),
		Max:    hist.Max(),
		Mean:   hist.Mean(),
		StdDev: hist.StdDev(),
		P50:    hist.ValueAtQuantile(50),
		P90:    hist.ValueAtQuantile(90),
		P99:    hist.ValueAtQuantile(99),
		P999:   hist.ValueAtQuantile(99.9),
	}, nil
}

func clampValue(v uint64) int64 {
	if v > histogramMax {
		return histogramMax
	}
	return int64(v)
}
