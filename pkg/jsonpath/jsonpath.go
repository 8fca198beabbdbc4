// Package jsonpath pulls single values out of JSON documents.
package jsonpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNotFound is returned when a path matches nothing.
var ErrNotFound = errors.New("path not found")

// Extract returns the value at path as a string. Paths may be written as
// JSONPath ("$.report.intervals[0].lower") or in gjson dot form
// ("report.intervals.0.lower"). Strings are returned unquoted, objects and
// arrays as raw JSON.
func Extract(doc []byte, path string) (string, error) {
	if len(doc) == 0 {
		return "", errors.New("empty JSON document")
	}
	if !gjson.ValidBytes(doc) {
		return "", errors.New("invalid JSON document")
	}
	if strings.TrimSpace(path) == "" {
		return "", errors.New("empty path")
	}

	result := gjson.GetBytes(doc, ToGjson(path))
	if !result.Exists() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	switch result.Type {
	case gjson.Null:
		return "null", nil
	case gjson.JSON:
		return result.Raw, nil
	}
	return result.String(), nil
}

// ToGjson rewrites a JSONPath expression into gjson syntax.
func ToGjson(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return "@this"
	}

	var sb strings.Builder
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				sb.WriteString(path[i:])
				return sb.String()
			}
			key := strings.Trim(path[i+1:i+end], `'"`)
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(key)
			i += end
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
