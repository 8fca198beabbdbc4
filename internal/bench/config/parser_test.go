package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_YAML(t *testing.T) {
	yamlConfig := `
name: "digits"
trials: 5000
cutHead: true
head: 0.1
cutTail: false
snippet: digits-log
cpu: 2
baseline: true
histogram: true
output: json
`
	cfg, err := ParseConfig([]byte(yamlConfig), "bench.yaml")
	require.NoError(t, err)

	assert.Equal(t, "digits", cfg.Name)
	assert.Equal(t, 5000, cfg.Trials)
	require.NotNil(t, cfg.Head)
	assert.Equal(t, 0.1, *cfg.Head)
	assert.Nil(t, cfg.Tail)
	assert.Equal(t, "digits-log", cfg.Snippet)
	assert.Equal(t, 2, cfg.PinnedCPU())
	assert.True(t, cfg.Baseline)
	assert.True(t, cfg.Histogram)
	assert.Equal(t, OutputJSON, cfg.Output)

	assert.Equal(t, 0.1, cfg.HeadFraction())
	assert.Equal(t, 0.0, cfg.TailFraction())
}

func TestParseConfig_JSON(t *testing.T) {
	jsonConfig := `{"trials": 100, "multicore": true, "workers": 3, "head": 0, "tail": 0}`

	cfg, err := ParseConfig([]byte(jsonConfig), "bench.json")
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Trials)
	assert.True(t, cfg.Multicore)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 0.0, cfg.HeadFraction())
	assert.Equal(t, 0.0, cfg.TailFraction())
}

func TestParseConfig_Empty(t *testing.T) {
	for _, path := range []string{"empty.yaml", "empty.json"} {
		cfg, err := ParseConfig([]byte("  \n"), path)
		require.NoError(t, err, path)
		assert.Equal(t, BenchConfig{}, *cfg)
	}

	cfg, err := ParseConfig([]byte("# only a comment\n"), "c.yml")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Trials)
}

func TestParseConfig_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{"unknown key", "trails: 10\n", "c.yaml"},
		{"string trials", "trials: lots\n", "c.yaml"},
		{"negative trials", `{"trials": -5}`, "c.json"},
		{"head of one", "head: 1\n", "c.yaml"},
		{"bad output", "output: xml\n", "c.yaml"},
		{"cpu below -1", "cpu: -2\n", "c.yaml"},
		{"top level list", "- 1\n- 2\n", "c.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema")
		})
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := ParseConfig([]byte("trials: [1,"), "c.yaml")
	assert.ErrorContains(t, err, "YAML")

	_, err = ParseConfig([]byte(`{"trials": 1`), "c.json")
	assert.ErrorContains(t, err, "JSON")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 42\nsnippet: alloc-1mib\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Trials)
	assert.Equal(t, "alloc-1mib", cfg.Snippet)
	assert.Equal(t, DefaultHead, cfg.HeadFraction())
	assert.Equal(t, DefaultTail, cfg.TailFraction())
	assert.Equal(t, DefaultCPU, cfg.PinnedCPU())
	assert.Equal(t, OutputText, cfg.Output)
}

func TestLoadConfig_NotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_ValidationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snippet: nope\n"), 0o644))

	_, err := LoadConfig(path)
	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "snippet", verrs.Errors[0].Field)
}

func TestApplyDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultTrials, cfg.Trials)
	assert.True(t, *cfg.CutHead)
	assert.True(t, *cfg.CutTail)
	assert.Equal(t, DefaultHead, *cfg.Head)
	assert.Equal(t, DefaultTail, *cfg.Tail)
	assert.Equal(t, DefaultSnippet, cfg.Snippet)
	assert.Equal(t, DefaultCPU, *cfg.CPU)
	assert.Equal(t, OutputText, cfg.Output)
	assert.NoError(t, cfg.Validate())

	// explicit zero survives defaults
	zero := 0.0
	cfg = &BenchConfig{Head: &zero}
	cfg.ApplyDefaults()
	assert.Equal(t, 0.0, cfg.HeadFraction())
}
