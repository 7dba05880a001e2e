// Package smlfmt is the public façade: lex, parse, and print a source
// buffer in one call, mirroring the teacher's cmd-level FormatBytes/
// FormatFile convenience wrappers but exposed as a reusable library
// surface (pkg/dwscript's role in the teacher repo).
package smlfmt

import (
	"os"

	"github.com/go-smlfmt/smlfmt/internal/errors"
	"github.com/go-smlfmt/smlfmt/internal/lexer"
	"github.com/go-smlfmt/smlfmt/internal/parser"
	"github.com/go-smlfmt/smlfmt/internal/printer"
)

// Config is the layout configuration shared by the document renderer and
// the printer (spec.md §4.4).
type Config = printer.Config

// DefaultConfig returns max_width=80, ribbon_frac=1.0, indent_width=2,
// tab_width=4 (spec.md §4.4's stated defaults).
func DefaultConfig() Config { return printer.DefaultConfig() }

// Format lexes, parses, and prints source, identified as name in any
// diagnostic this produces. On a lex or parse failure the returned error is
// an *errors.Formatted carrying source context for display.
func Format(name, source string, cfg Config) (string, error) {
	lexResult := lexer.Lex(name, source)
	if lexResult.Err != nil {
		return "", errors.New(lexResult.Err, source)
	}

	parseResult := parser.Parse(lexResult.Tokens)
	if parseResult.Err != nil {
		return "", errors.New(parseResult.Err, source)
	}

	out, diagErr := printer.Print(parseResult.Ast, cfg)
	if diagErr != nil {
		return "", errors.New(diagErr, source)
	}
	return out, nil
}

// FormatFile reads path, formats it under cfg, and returns the result
// without writing anything back.
func FormatFile(path string, cfg Config) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Format(path, string(src), cfg)
}

// WriteFormatted formats path under cfg and overwrites it in place if the
// result differs from the file's current contents. It reports whether the
// file was changed.
func WriteFormatted(path string, cfg Config) (changed bool, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	out, err := Format(path, string(src), cfg)
	if err != nil {
		return false, err
	}
	if out == string(src) {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
