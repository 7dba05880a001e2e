// Package printer implements the syntax-to-document translator: it walks a
// parsed *ast.Ast and produces a doc.Doc, which doc.Render then lays out as
// final source text (spec.md §4.5).
package printer

import (
	"strings"

	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/diag"
	"github.com/go-smlfmt/smlfmt/internal/doc"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// Config is the layout configuration a caller supplies, identical to the
// document renderer's own (spec.md §4.4's config is shared end to end).
type Config = doc.Config

func DefaultConfig() Config { return doc.DefaultConfig() }

type printer struct {
	cfg doc.Config
}

// Print renders a under cfg, returning the formatted source text. It
// validates cfg first (spec.md §7's configuration error kind) rather than
// silently repairing out-of-range fields.
func Print(a *ast.Ast, cfg Config) (string, *diag.Error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	p := &printer{cfg: cfg.Normalize()}
	d := p.printAst(a)
	out := doc.Render(d, p.cfg)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// tok renders t's exact spelling, preceded by any attached comments.
func (p *printer) tok(t token.Token, indent int) doc.Doc {
	return doc.Beside(p.leading(t, indent), doc.Text(t.Literal))
}

func sp() doc.Doc { return doc.Space() }

// placeholder covers an AST shape that should never occur once the
// translator is complete; kept as a defensive default branch rather than a
// panic so a future grammar addition degrades instead of crashing.
func (p *printer) placeholder(what string) doc.Doc {
	return doc.Text("(*!" + what + "!*)")
}

// printLongIdent renders a possibly-qualified identifier, each component and
// dot retaining its own attached comments.
func (p *printer) printLongIdent(id ast.LongIdent, indent int) doc.Doc {
	d := doc.Empty()
	for i, q := range id.Qualifiers {
		d = doc.Beside(d, p.tok(q, indent))
		d = doc.Beside(d, p.tok(id.Dots[i], indent))
	}
	return doc.Beside(d, p.tok(id.Name, indent))
}

// headerBodyDoc implements the recurring "header = indented body" shape used
// by val/fun/type bindings, val and structure specs, `where type`, and
// signature/structure/functor bindings, which need a group-then-indent
// layout: header and body share one line when the whole
// thing fits, otherwise body starts on its own line indented by
// cfg.IndentWidth under header (spec.md §4.5).
func (p *printer) headerBodyDoc(header, body doc.Doc) doc.Doc {
	return doc.Group(doc.Indent(p.cfg.IndentWidth, doc.AboveOrSpace(header, body)))
}

// bindGroup renders "kw b1 and b2 and ...": the introducing keyword appears
// only on the first binding; every later one begins with its own preserved
// "and" token (spec.md §4.5's keyword-alignment rule). render is called once
// per item with the indent body content should use.
// kw must already include any trailing space needed before the first
// binding (callers build it from a keyword token plus an optional
// type-variable sequence that supplies its own trailing space).
func bindGroup[T any](p *printer, kw doc.Doc, seq ast.Seq[T], indent int, render func(*printer, T, int) doc.Doc) doc.Doc {
	d := doc.Beside(kw, render(p, seq.First, indent))
	for _, tail := range seq.Rest {
		andDoc := doc.Beside(p.tok(tail.Delim, indent), sp())
		d = doc.AboveOrSpace(d, doc.Beside(andDoc, render(p, tail.Item, indent)))
	}
	return doc.Group(d)
}

// joinSeq folds a Seq[T] left to right, placing sep(tail.Delim) before each
// element after the first.
func joinSeq[T any](seq ast.Seq[T], render func(T) doc.Doc, sep func(token.Token) doc.Doc) doc.Doc {
	d := render(seq.First)
	for _, tail := range seq.Rest {
		d = doc.AboveOrBeside(d, doc.Beside(sep(tail.Delim), render(tail.Item)))
	}
	return d
}
