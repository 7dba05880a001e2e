package errors_test

import (
	"strings"
	"testing"

	"github.com/go-smlfmt/smlfmt/internal/diag"
	"github.com/go-smlfmt/smlfmt/internal/errors"
	"github.com/go-smlfmt/smlfmt/internal/token"
	"github.com/stretchr/testify/require"
)

func TestFormatIncludesHeaderLineAndCaret(t *testing.T) {
	source := "val x =\nval = 1\n"
	pos := token.Position{Source: "t.sml", Offset: 12, Line: 2, Column: 5}
	err := diag.New(diag.KindParse, pos, "expected an expression")

	f := errors.New(err, source)
	out := f.Format(false)

	require.Contains(t, out, "t.sml:2:5")
	require.Contains(t, out, "expected an expression")

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	require.Contains(t, lines[1], "val = 1")
	caretLine := lines[2]
	require.Contains(t, caretLine, "^")
	require.Equal(t, strings.IndexByte(caretLine, '^'), strings.IndexByte(lines[1], '='))
}

func TestFormatWithColorWrapsCaretInAnsiCodes(t *testing.T) {
	source := "bad\n"
	pos := token.Position{Source: "t.sml", Offset: 0, Line: 1, Column: 1}
	err := diag.New(diag.KindLex, pos, "illegal character")

	out := errors.New(err, source).Format(true)
	require.Contains(t, out, "\033[1;31m")
	require.Contains(t, out, "\033[0m")
}

func TestFormatIncludesExplainWhenPresent(t *testing.T) {
	pos := token.Position{Source: "t.sml", Offset: 0, Line: 1, Column: 1}
	err := diag.Explained(diag.KindParse, pos, "bad token", "did you forget a semicolon?")

	out := errors.New(err, "x\n").Format(false)
	require.Contains(t, out, "did you forget a semicolon?")
}

func TestFormatHandlesLineNumberPastEndOfSource(t *testing.T) {
	pos := token.Position{Source: "t.sml", Offset: 0, Line: 99, Column: 1}
	err := diag.New(diag.KindParse, pos, "unexpected eof")

	out := errors.New(err, "only one line\n").Format(false)
	require.Contains(t, out, "unexpected eof")
}

func TestErrorMessageDelegatesToDiagError(t *testing.T) {
	pos := token.Position{Source: "t.sml", Offset: 0, Line: 1, Column: 1}
	err := diag.New(diag.KindParse, pos, "boom")
	f := errors.New(err, "x\n")
	require.Equal(t, err.Error(), f.Error())
}

func TestUnreachablePanics(t *testing.T) {
	require.Panics(t, func() { errors.Unreachable("should never get here") })
}
