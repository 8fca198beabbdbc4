package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain_ExitCodes(t *testing.T) {
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"snippets", []string{"nanobench", "snippets"}, 0},
		{"small run", []string{"nanobench", "run", "-n", "100", "--extract", "sampleSize"}, 0},
		{"unknown snippet", []string{"nanobench", "run", "-s", "missing"}, 1},
		{"unknown command", []string{"nanobench", "frobnicate"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, Main())
		})
	}
}
