package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	labelWidth = 30
	ruleWidth  = 46
)

// TextWriter prints the fixed-format labelled report. Counter values are
// printed with an "ns" suffix without any frequency conversion.
type TextWriter struct {
	w      io.Writer
	colors *ColorScheme
}

// NewTextWriter creates a writer. Colors are used only on terminals.
func NewTextWriter(w io.Writer, noColor bool) *TextWriter {
	return &TextWriter{w: w, colors: colorSchemeFor(w, noColor)}
}

// Write renders res.
func (t *TextWriter) Write(res *Result) error {
	var b strings.Builder
	r := res.Report
	sp := res.Spreads

	t.line(&b, "Sample Size", fmt.Sprintf("%d", res.SampleSize))
	if res.ReducedSample != res.SampleSize {
		t.line(&b, "Reduced Sample", fmt.Sprintf("%d", res.ReducedSample))
	}
	if res.Workers > 1 {
		b.WriteString(t.colors.Warning.Sprintf("sampled on %d workers; not a reliable benchmark", res.Workers))
		b.WriteString("\n")
	}
	t.rule(&b)

	t.line(&b, "Q1", ns(r.Q1))
	t.line(&b, "Median", ns(r.Median))
	t.line(&b, "Q3", ns(r.Q3))
	t.line(&b, "Q3-Q1", ns(sp.InterQuartile))
	b.WriteString("\n")

	t.line(&b, "Min", ns(r.Min))
	t.line(&b, "Q1-Min", ns(sp.LowerWhisker))
	t.line(&b, "Max", ns(r.Max))
	t.line(&b, "Max-Q3", ns(sp.UpperWhisker))
	b.WriteString("\n")

	t.line(&b, "Max-Min", ns(sp.Range))
	t.line(&b, "Max-Min to Q3-Q1", percent(r.RangeToIQRPercent()))
	b.WriteString("\n")

	t.line(&b, "Mean", nsFloat(r.Mean))
	t.line(&b, "Mode", ns(r.Mode))
	b.WriteString("\n")

	t.line(&b, "Standard Deviation", nsFloat(r.StdDev))
	t.line(&b, "Standard Deviation to Mean", percent(r.CoefficientOfVariation()))
	t.line(&b, "Variance", num(r.Variance))
	b.WriteString("\n")

	for _, iv := range r.Intervals {
		t.line(&b, fmt.Sprintf("Confidence Interval (%.0f%%)", iv.Level*100),
			fmt.Sprintf("[%s, %s]", nsFloat(iv.Lower), nsFloat(iv.Upper)))
	}
	t.rule(&b)

	if res.CounterOverhead > 0 {
		t.line(&b, "Counter Overhead", ns(res.CounterOverhead))
		t.rule(&b)
	}

	if res.Baseline != nil {
		t.section(&b, "Baseline (empty snippet)")
		t.line(&b, "Baseline Mean", nsFloat(res.Baseline.Report.Mean))
		t.line(&b, "Baseline Median", ns(res.Baseline.Report.Median))
		t.line(&b, "Net Mean", nsFloat(res.Baseline.NetMean))
		t.rule(&b)
	}

	if h := res.Histogram; h != nil {
		t.section(&b, "HDR Histogram")
		t.line(&b, "P50", fmt.Sprintf("%dns", h.P50))
		t.line(&b, "P90", fmt.Sprintf("%dns", h.P90))
		t.line(&b, "P99", fmt.Sprintf("%dns", h.P99))
		t.line(&b, "P99.9", fmt.Sprintf("%dns", h.P999))
		t.line(&b, "Histogram Mean", nsFloat(h.Mean))
		t.line(&b, "Histogram Standard Deviation", nsFloat(h.StdDev))
		t.rule(&b)
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *TextWriter) line(b *strings.Builder, label, value string) {
	padded := fmt.Sprintf("%-*s", labelWidth, label+":")
	b.WriteString(t.colors.Label.Sprint(padded))
	b.WriteString(value)
	b.WriteString("\n")
}

func (t *TextWriter) rule(b *strings.Builder) {
	b.WriteString(t.colors.Rule.Sprint(strings.Repeat("=", ruleWidth)))
	b.WriteString("\n")
}

func (t *TextWriter) section(b *strings.Builder, title string) {
	b.WriteString(t.colors.Section.Sprint(title))
	b.WriteString("\n")
}

func ns(v uint64) string {
	return fmt.Sprintf("%dns", v)
}

func nsFloat(f float64) string {
	return num(f) + "ns"
}

func percent(f float64) string {
	return num(f) + "%"
}

// num prints six significant digits.
func num(f float64) string {
	return fmt.Sprintf("%.6g", f)
}
