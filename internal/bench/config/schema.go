// Package config provides configuration loading and validation for benchmark runs.
package config

// BenchConfig is the configuration of one benchmark run.
//
// Example YAML:
//
//	name: "digit counting"
//	trials: 1000000
//	head: 0.05
//	tail: 0.05
//	snippet: digits-log
//	cpu: 3
//	baseline: true
type BenchConfig struct {
	// Name labels the run in reports (optional)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Trials is the number of timed runs of the snippet
	Trials int `json:"trials,omitempty" yaml:"trials,omitempty"`

	// CutHead enables dropping the Head fraction of largest samples (default: true)
	CutHead *bool `json:"cutHead,omitempty" yaml:"cutHead,omitempty"`

	// Head is the fraction of largest samples to drop (default: 0.05)
	Head *float64 `json:"head,omitempty" yaml:"head,omitempty"`

	// CutTail enables dropping the Tail fraction of smallest samples (default: true)
	CutTail *bool `json:"cutTail,omitempty" yaml:"cutTail,omitempty"`

	// Tail is the fraction of smallest samples to drop (default: 0.05)
	Tail *float64 `json:"tail,omitempty" yaml:"tail,omitempty"`

	// Multicore spreads trials over several goroutines. Not a reliable benchmark.
	Multicore bool `json:"multicore,omitempty" yaml:"multicore,omitempty"`

	// Workers is the goroutine count in multicore mode (0 = GOMAXPROCS)
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// Snippet names the registered snippet to time (default: "empty")
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`

	// CPU pins the sampling thread to a core; -1 disables pinning (default: -1)
	CPU *int `json:"cpu,omitempty" yaml:"cpu,omitempty"`

	// Baseline also times the empty snippet and reports the net mean
	Baseline bool `json:"baseline,omitempty" yaml:"baseline,omitempty"`

	// Histogram adds an HDR histogram percentile section
	Histogram bool `json:"histogram,omitempty" yaml:"histogram,omitempty"`

	// Output is "text" or "json" (default: "text")
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// NoColor disables colored labels
	NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Defaults for unset fields.
const (
	DefaultTrials  = 1_000_000
	DefaultHead    = 0.05
	DefaultTail    = 0.05
	DefaultSnippet = "empty"
	DefaultCPU     = -1
)

// Default returns a configuration with every default applied.
func Default() *BenchConfig {
	cfg := &BenchConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (c *BenchConfig) ApplyDefaults() {
	if c.Trials == 0 {
		c.Trials = DefaultTrials
	}
	if c.CutHead == nil {
		c.CutHead = boolPtr(true)
	}
	if c.Head == nil {
		c.Head = floatPtr(DefaultHead)
	}
	if c.CutTail == nil {
		c.CutTail = boolPtr(true)
	}
	if c.Tail == nil {
		c.Tail = floatPtr(DefaultTail)
	}
	if c.Snippet == "" {
		c.Snippet = DefaultSnippet
	}
	if c.CPU == nil {
		c.CPU = intPtr(DefaultCPU)
	}
	if c.Output == "" {
		c.Output = OutputText
	}
}

// HeadFraction returns the effective head cut, zero when CutHead is off.
func (c *BenchConfig) HeadFraction() float64 {
	if c.CutHead != nil && !*c.CutHead {
		return 0
	}
	if c.Head == nil {
		return DefaultHead
	}
	return *c.Head
}

// TailFraction returns the effective tail cut, zero when CutTail is off.
func (c *BenchConfig) TailFraction() float64 {
	if c.CutTail != nil && !*c.CutTail {
		return 0
	}
	if c.Tail == nil {
		return DefaultTail
	}
	return *c.Tail
}

// PinnedCPU returns the configured core, or DefaultCPU when unset.
func (c *BenchConfig) PinnedCPU() int {
	if c.CPU == nil {
		return DefaultCPU
	}
	return *c.CPU
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// documentSchema is checked against the raw file before decoding.
const documentSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"name":      {"type": "string"},
		"trials":    {"type": "integer", "minimum": 1},
		"cutHead":   {"type": "boolean"},
		"head":      {"type": "number", "minimum": 0, "exclusiveMaximum": 1},
		"cutTail":   {"type": "boolean"},
		"tail":      {"type": "number", "minimum": 0, "exclusiveMaximum": 1},
		"multicore": {"type": "boolean"},
		"workers":   {"type": "integer", "minimum": 0},
		"snippet":   {"type": "string", "minLength": 1},
		"cpu":       {"type": "integer", "minimum": -1},
		"baseline":  {"type": "boolean"},
		"histogram": {"type": "boolean"},
		"output":    {"enum": ["text", "json"]},
		"noColor":   {"type": "boolean"}
	}
}`
