// Package errors formats a *diag.Error with surrounding source context for
// terminal display: a file:line:col header, the offending source line, and
// a caret pointing at the column, mirrored from the teacher's
// internal/errors.CompilerError.Format.
package errors

import (
	"fmt"
	"strings"

	"github.com/go-smlfmt/smlfmt/internal/diag"
)

// Formatted wraps a *diag.Error together with the source text it came from,
// so CLI commands can render a caret under the failing column without
// threading the source string through every diagnostic call site.
type Formatted struct {
	Err    *diag.Error
	Source string
}

// New pairs a diagnostic with the source it was produced from.
func New(err *diag.Error, source string) *Formatted {
	return &Formatted{Err: err, Source: source}
}

// Error implements the error interface with the same single-line rendering
// as the wrapped diagnostic.
func (f *Formatted) Error() string { return f.Err.Error() }

// Format renders the diagnostic with a source-line excerpt and caret. When
// color is true, the caret is wrapped in ANSI bold/red codes; the header
// and message are never colored.
func (f *Formatted) Format(color bool) string {
	var sb strings.Builder
	pos := f.Err.Pos

	sb.WriteString(fmt.Sprintf("%s: %s\n", pos, f.Err.What))

	line := sourceLine(f.Source, pos.Line)
	if line != "" {
		prefix := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if f.Err.Explain != "" {
		sb.WriteString(f.Err.Explain)
		sb.WriteString("\n")
	}

	return sb.String()
}

// sourceLine returns the 1-based nth line of src, or "" if out of range.
func sourceLine(src string, n int) string {
	if n < 1 {
		return ""
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// Internal wraps an unexpected translator-internal condition: a defensive
// unreachable() call reached in practice. It is never returned from the
// lexer, parser, or printer's documented error paths (spec.md §7 requires
// the translator to stay total); it exists only so a defensive panic
// recovery layer has a distinguishable type to report.
type Internal struct {
	What string
}

func (e *Internal) Error() string { return "internal error: " + e.What }

// Unreachable panics with an *Internal, for defensive default branches that
// should never execute once the translator is complete.
func Unreachable(what string) {
	panic(&Internal{What: what})
}
