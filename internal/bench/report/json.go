package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wesleyorama2/nanobench/pkg/jsonpath"
)

// ToJSON encodes res as JSON indented by two spaces.
func ToJSON(res *Result) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return data, nil
}

// WriteJSON writes res as indented JSON followed by a newline.
func WriteJSON(w io.Writer, res *Result) error {
	data, err := ToJSON(res)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteField writes the single value at path in the JSON rendering of res.
func WriteField(w io.Writer, res *Result, path string) error {
	data, err := ToJSON(res)
	if err != nil {
		return err
	}

	value, err := jsonpath.Extract(data, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, value)
	return err
}
