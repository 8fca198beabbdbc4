// Package snippets holds the named code snippets nanobench can time.
package snippets

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// ErrUnknownSnippet is returned by Lookup for names that were never registered.
var ErrUnknownSnippet = errors.New("unknown snippet")

// Func is the code under test. It receives the trial index.
type Func func(i int)

// Snippet is a registered benchmark body.
type Snippet struct {
	Name        string
	Description string
	Run         Func
}

// Default is the snippet used when none is configured.
const Default = "empty"

// sink keeps results observable so the compiler cannot drop snippet bodies.
// Multicore sampling runs bodies concurrently, so it is updated atomically.
var sink atomic.Int64

var registry = map[string]Snippet{}

func init() {
	Register(Snippet{
		Name:        "empty",
		Description: "nothing; measures the cost of reading the counter",
		Run:         func(int) {},
	})
	Register(Snippet{
		Name:        "alloc-1mib",
		Description: "allocate and zero 2^20 bytes",
		Run: func(int) {
			buf := make([]byte, 1<<20)
			clear(buf)
			sink.Add(int64(len(buf)))
		},
	})
	Register(Snippet{
		Name:        "digits-log",
		Description: "decimal digit count of the trial index via log10",
		Run: func(i int) {
			sink.Add(int64(DigitsLog(i)))
		},
	})
	Register(Snippet{
		Name:        "digits-itoa",
		Description: "decimal digit count of the trial index via strconv.Itoa",
		Run: func(i int) {
			sink.Add(int64(len(strconv.Itoa(i))))
		},
	})
}

// Register adds s to the registry, replacing any snippet with the same name.
func Register(s Snippet) {
	if s.Run == nil {
		panic(fmt.Sprintf("snippets: %q registered without a body", s.Name))
	}
	registry[s.Name] = s
}

// Lookup returns the snippet registered under name.
func Lookup(name string) (Snippet, error) {
	s, ok := registry[name]
	if !ok {
		return Snippet{}, fmt.Errorf("%w: %q", ErrUnknownSnippet, name)
	}
	return s, nil
}

// List returns every registered snippet sorted by name.
func List() []Snippet {
	out := make([]Snippet, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

// DigitsLog counts decimal digits with floor(log10(i))+1. Zero and negative
// inputs report 1.
func DigitsLog(i int) int {
	if i <= 0 {
		return 1
	}
	return int(math.Log10(float64(i))) + 1
}
