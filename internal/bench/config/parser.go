package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/nanobench/pkg/jsonschema"
)

var schema = jsonschema.MustCompile("benchconfig.json", documentSchema)

// LoadConfig loads a benchmark configuration from a file.
//
// The file format is determined by extension:
//   - .json -> JSON
//   - anything else -> YAML
//
// Defaults are applied and the result is validated.
func LoadConfig(path string) (*BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig checks data against the document schema and decodes it. It
// neither applies defaults nor runs Validate.
func ParseConfig(data []byte, path string) (*BenchConfig, error) {
	isJSON := strings.ToLower(filepath.Ext(path)) == ".json"

	doc, err := toJSON(data, isJSON)
	if err != nil {
		return nil, err
	}
	if errs := schema.ValidateJSON(doc); len(errs) > 0 {
		return nil, fmt.Errorf("config does not match schema: %w", errs)
	}

	var cfg BenchConfig
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// toJSON normalizes a YAML or JSON document to JSON bytes. An empty document
// becomes an empty object.
func toJSON(data []byte, isJSON bool) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []byte("{}"), nil
	}

	if isJSON {
		if !json.Valid(data) {
			return nil, fmt.Errorf("failed to parse JSON config: invalid syntax")
		}
		return data, nil
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if raw == nil {
		return []byte("{}"), nil
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return doc, nil
}
