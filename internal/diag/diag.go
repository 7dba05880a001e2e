// Package diag defines the diagnostic value shared by the lexer and parser.
//
// Diagnostics are plain data, not exceptions: every decision point in the
// lexer and parser returns early with an *Error instead of panicking, and
// the translator is required to stay total, never producing one.
package diag

import (
	"fmt"

	"github.com/go-smlfmt/smlfmt/internal/token"
)

// Kind groups diagnostics into the categories spec.md §7 enumerates, mostly
// for CLI exit-code and `--only-errors`-style filtering purposes.
type Kind string

const (
	KindLex    Kind = "lex"
	KindParse  Kind = "parse"
	KindConfig Kind = "config"
)

// Error is a structured, location-rich diagnostic: a span, a short
// machine-relevant "what", and an optional multi-line human "explain".
// The diagnostic renderer that underlines source ranges is an external
// collaborator (spec.md §7); Error only carries the data it needs.
type Error struct {
	Kind    Kind
	Pos     token.Position
	Span    token.Span
	What    string
	Explain string
}

// Error implements the error interface with a single-line rendering;
// richer, span-underlining renderings belong to the external collaborator.
func (e *Error) Error() string {
	if e.Explain == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.What)
	}
	return fmt.Sprintf("%s: %s\n%s", e.Pos, e.What, e.Explain)
}

// New builds an Error anchored at pos, with a zero-width span at pos and no
// explanation.
func New(kind Kind, pos token.Position, what string) *Error {
	return &Error{Kind: kind, Pos: pos, Span: token.Span{Start: pos, End: pos}, What: what}
}

// Explained is New with an added explain line.
func Explained(kind Kind, pos token.Position, what, explain string) *Error {
	e := New(kind, pos, what)
	e.Explain = explain
	return e
}

// WithSpan returns a copy of e anchored to the given span instead of a bare point.
func (e *Error) WithSpan(span token.Span) *Error {
	cp := *e
	cp.Span = span
	return &cp
}
