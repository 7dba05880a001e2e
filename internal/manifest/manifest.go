// Package manifest enumerates the source paths referenced by a build
// manifest (.mlb) file, expanding $(VAR) path-variable substitutions
// (spec.md §6's "File formats" section).
//
// The manifest language itself ("basis"/"in"/"end" blocks, "structure"/
// "signature"/"functor" exports, "open", "let") is not modeled: the parser
// only needs to tell a path token from a keyword or bound identifier well
// enough to list every referenced .sml/.sig/.fun/.mlb file in order.
package manifest

import (
	"fmt"
	"strings"
)

// keywords are manifest-language tokens that never denote a path, grounded
// on spec.md §6's enumerated vocabulary.
var keywords = map[string]bool{
	"basis": true, "bas": true, "in": true, "end": true,
	"structure": true, "signature": true, "functor": true,
	"open": true, "let": true, "local": true, "and": true, "ann": true,
}

// pathExts is the set of extensions that make a bare token a source or
// nested-manifest reference rather than a bound identifier.
var pathExts = []string{".sml", ".sig", ".fun", ".mlb"}

// Result is the outcome of parsing one manifest buffer.
type Result struct {
	Paths []string // referenced paths, in source order, $(VAR) expanded
	Err   error
}

// Parse scans source (the text of one .mlb file) and returns every
// referenced path, substituting vars into any `$(NAME)` reference found.
// Nested .mlb paths are returned like any other path; resolving and
// recursing into them is the caller's job, since this package does no
// file I/O (spec.md §1 scopes file I/O to the external CLI collaborator).
func Parse(source string, vars map[string]string) Result {
	toks, err := tokenize(source)
	if err != nil {
		return Result{Err: err}
	}

	var paths []string
	for _, t := range toks {
		expanded, err := expandVars(t, vars)
		if err != nil {
			return Result{Err: err}
		}
		if isPathToken(expanded) {
			paths = append(paths, expanded)
		}
	}
	return Result{Paths: paths}
}

// tokenize splits source on whitespace, keeping double-quoted strings
// (which may contain spaces, e.g. quoted paths) as single tokens and
// dropping keywords and (*...*) comments.
func tokenize(source string) ([]string, error) {
	var toks []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			word := buf.String()
			if !keywords[word] {
				toks = append(toks, word)
			}
			buf.Reset()
		}
	}

	i := 0
	for i < len(source) {
		ch := source[i]
		switch {
		case ch == '(' && i+1 < len(source) && source[i+1] == '*':
			flush()
			rest := source[i+2:]
			end := strings.Index(rest, "*)")
			if end < 0 {
				return nil, fmt.Errorf("manifest: unterminated comment")
			}
			i += 2 + end + 2
		case ch == '"':
			flush()
			j := i + 1
			for j < len(source) && source[j] != '"' {
				j++
			}
			if j >= len(source) {
				return nil, fmt.Errorf("manifest: unterminated quoted path")
			}
			toks = append(toks, source[i+1:j])
			i = j + 1
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			flush()
			i++
		default:
			buf.WriteByte(ch)
			i++
		}
	}
	flush()
	return toks, nil
}

// expandVars replaces every $(NAME) occurrence in tok using vars.
func expandVars(tok string, vars map[string]string) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(tok) {
		if tok[i] == '$' && i+1 < len(tok) && tok[i+1] == '(' {
			end := strings.IndexByte(tok[i+2:], ')')
			if end < 0 {
				return "", fmt.Errorf("manifest: unterminated $(VAR) in %q", tok)
			}
			name := tok[i+2 : i+2+end]
			val, ok := vars[name]
			if !ok {
				return "", fmt.Errorf("manifest: undefined path variable %q", name)
			}
			out.WriteString(val)
			i += 2 + end + 1
			continue
		}
		out.WriteByte(tok[i])
		i++
	}
	return out.String(), nil
}

func isPathToken(tok string) bool {
	for _, ext := range pathExts {
		if strings.HasSuffix(tok, ext) {
			return true
		}
	}
	return false
}
