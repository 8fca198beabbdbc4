package config

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *BenchConfig {
	return Default()
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *BenchConfig)
		field  string
	}{
		{"zero trials", func(c *BenchConfig) { c.Trials = 0 }, "trials"},
		{"negative trials", func(c *BenchConfig) { c.Trials = -1 }, "trials"},
		{"head negative", func(c *BenchConfig) { c.Head = floatPtr(-0.1) }, "head"},
		{"tail one", func(c *BenchConfig) { c.Tail = floatPtr(1) }, "tail"},
		{"tail NaN", func(c *BenchConfig) { c.Tail = floatPtr(math.NaN()) }, "tail"},
		{"cuts cover everything", func(c *BenchConfig) {
			c.Head = floatPtr(0.6)
			c.Tail = floatPtr(0.4)
		}, "head"},
		{"negative workers", func(c *BenchConfig) {
			c.Multicore = true
			c.Workers = -2
		}, "workers"},
		{"workers without multicore", func(c *BenchConfig) { c.Workers = 4 }, "workers"},
		{"cpu below -1", func(c *BenchConfig) { c.CPU = intPtr(-3) }, "cpu"},
		{"cpu with multicore", func(c *BenchConfig) {
			c.Multicore = true
			c.CPU = intPtr(1)
		}, "cpu"},
		{"unknown snippet", func(c *BenchConfig) { c.Snippet = "missing" }, "snippet"},
		{"bad output", func(c *BenchConfig) { c.Output = "xml" }, "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.NotEmpty(t, verrs.Errors)
			assert.Equal(t, tt.field, verrs.Errors[0].Field)
		})
	}
}

func TestValidate_DisabledCutsIgnoreSum(t *testing.T) {
	cfg := validConfig()
	cfg.Head = floatPtr(0.9)
	cfg.Tail = floatPtr(0.5)
	cfg.CutTail = boolPtr(false)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_MulticoreValid(t *testing.T) {
	cfg := validConfig()
	cfg.Multicore = true
	cfg.Workers = 8

	assert.NoError(t, cfg.Validate())
}

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("trials", "too small")
	assert.Equal(t, "validation error on field 'trials': too small", errs.Error())

	errs.Add("", "general")
	msg := errs.Error()
	assert.True(t, strings.HasPrefix(msg, "2 validation errors:"))
	assert.Contains(t, msg, "validation error: general")
}
