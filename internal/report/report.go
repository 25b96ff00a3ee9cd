// Package report formats checker output with optional color support.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mgutz/ansi"

	"github.com/w3cdtf/w3cdtf"
)

// Output handles all output formatting with optional color support.
// Valid results go to stdout, diagnostics and warnings to stderr.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	quiet  bool

	green  func(string) string
	red    func(string) string
	yellow func(string) string
	white  func(string) string
}

// New creates a new Output. When quiet is set, per-input results are
// suppressed and only warnings and summaries are written.
func New(stdout, stderr io.Writer, colorize, quiet bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		quiet:  quiet,
		green:  color("green"),
		red:    color("red+b"),
		yellow: color("yellow"),
		white:  color("white"),
	}
}

// Valid writes the canonical rendering of a successfully parsed input.
// The location is an optional "file:line" origin.
func (o *Output) Valid(location, canonical string) {
	if o.quiet {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if location != "" {
		fmt.Fprintf(o.stdout, "%s: %s\n", o.white(location), o.green(canonical))
	} else {
		fmt.Fprintf(o.stdout, "%s\n", o.green(canonical))
	}
}

// Invalid writes a diagnostic for an input that failed to parse: the
// error message, the input echoed back, and a caret line underlining the
// error span. Span offsets are rune counts, so the carets line up with
// the echoed input.
func (o *Output) Invalid(location, input string, perr *w3cdtf.ParseError) {
	if o.quiet {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if location != "" {
		fmt.Fprintf(o.stderr, "%s: %v\n", o.white(location), perr)
	} else {
		fmt.Fprintf(o.stderr, "%v\n", perr)
	}
	fmt.Fprintf(o.stderr, "  %s\n", input)
	fmt.Fprintf(o.stderr, "  %s\n", o.red(caretLine(perr)))
}

// caretLine underlines the [Begin, End) span. A zero-width span still
// gets one caret so the position is visible.
func caretLine(perr *w3cdtf.ParseError) string {
	width := perr.End - perr.Begin
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", perr.Begin) + strings.Repeat("^", width)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Summaryf writes a formatted summary line to stderr.
func (o *Output) Summaryf(format string, args ...any) {
	if o.quiet {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.stderr, o.red(fmt.Sprintf(format, args...)))
}
