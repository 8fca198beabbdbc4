package report

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for different elements in the report
type ColorScheme struct {
	Label   *color.Color
	Rule    *color.Color
	Section *color.Color
	Warning *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Label:   color.New(color.FgCyan),
		Rule:    color.New(color.FgHiBlack),
		Section: color.New(color.FgMagenta, color.Bold),
		Warning: color.New(color.FgYellow, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	scheme.Label.DisableColor()
	scheme.Rule.DisableColor()
	scheme.Section.DisableColor()
	scheme.Warning.DisableColor()
	return scheme
}

// colorSchemeFor enables colors only for terminals, and never when noColor
// or NO_COLOR is set.
func colorSchemeFor(w io.Writer, noColor bool) *ColorScheme {
	if noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
		return NoColorScheme()
	}

	scheme := DefaultColorScheme()
	scheme.Label.EnableColor()
	scheme.Rule.EnableColor()
	scheme.Section.EnableColor()
	scheme.Warning.EnableColor()
	return scheme
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
