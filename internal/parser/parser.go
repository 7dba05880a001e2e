// Package parser implements a hand-written recursive-descent parser for the
// language's core, module, and top-level syntax (spec.md §4.2).
//
// The parser walks the full token slice produced by the lexer rather than
// pulling tokens lazily; comment tokens are skipped during descent but
// their text stays reachable through each token's LeadingComments link, so
// no information is lost between lexing and printing.
package parser

import (
	"fmt"

	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/diag"
	"github.com/go-smlfmt/smlfmt/internal/fixity"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// Parser holds the cursor over a non-comment token view and the live
// fixity environment threaded through declaration parsing (spec.md §9:
// "model as an explicit stack passed into parsing functions").
type Parser struct {
	toks []token.Token // comment tokens filtered out, comments already attached via LeadingComments
	pos  int
	fx   *fixity.Env
	err  *diag.Error
}

// Result is the outcome of parsing one compilation unit.
type Result struct {
	Ast *ast.Ast
	Err *diag.Error
}

// OK reports whether parsing succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Parse parses a complete token stream (as produced by lexer.Lex) into an
// Ast, or the first diagnostic encountered.
func Parse(tokens []token.Token) Result {
	p := newParser(tokens)
	a := p.parseAst()
	if p.err != nil {
		return Result{Err: p.err}
	}
	return Result{Ast: a}
}

func newParser(tokens []token.Token) *Parser {
	filtered := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Is(token.LINECOMMENT) || t.Is(token.BLOCKCOMMENT) {
			continue
		}
		filtered = append(filtered, t)
	}
	return &Parser{toks: filtered, fx: fixity.New()}
}

// cur returns the token under the cursor. Past the end of input it
// repeats the final EOF token so lookahead never indexes out of range.
func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) peek() token.Token { return p.peekAt(1) }

func (p *Parser) at(k token.Kind) bool { return p.failed() == nil && p.cur().Is(k) }

func (p *Parser) atAny(ks ...token.Kind) bool { return p.failed() == nil && p.cur().IsAny(ks...) }

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// expect consumes the current token if it has kind k, else fails.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	if p.err != nil {
		return token.Token{}
	}
	if !p.cur().Is(k) {
		p.fail(what, fmt.Sprintf("expected %s but found %q", k, p.cur().Literal))
		return token.Token{}
	}
	return p.advance()
}

func (p *Parser) failed() *diag.Error { return p.err }

func (p *Parser) fail(what, explain string) {
	if p.err != nil {
		return
	}
	p.err = diag.Explained(diag.KindParse, p.cur().Span.Start, what, explain).WithSpan(p.cur().Span)
}

// failAt records a diagnostic anchored to an explicit span rather than the
// current cursor position, used for checks performed after the fact (e.g.
// `fun` clause arity agreement).
func (p *Parser) failAt(span token.Span, what, explain string) {
	if p.err != nil {
		return
	}
	p.err = diag.Explained(diag.KindParse, span.Start, what, explain).WithSpan(span)
}

// opPrefix consumes an optional leading `op` token.
func (p *Parser) opPrefix() *token.Token {
	if p.at(token.OP) {
		t := p.advance()
		return &t
	}
	return nil
}

// longIdent assembles a possibly-qualified identifier from IDENT/SYMBOLIC
// components joined by DOT tokens (spec.md §4.1: "recognized only at the
// parser's request").
func (p *Parser) longIdent() ast.LongIdent {
	var quals []token.Token
	var dots []token.Token
	for p.identLike() && p.peek().Is(token.DOT) {
		quals = append(quals, p.advance())
		dots = append(dots, p.advance())
	}
	name := p.identComponent()
	return ast.LongIdent{Qualifiers: quals, Dots: dots, Name: name}
}

// identLike reports whether the current token can serve as one component of
// a long identifier (an alphanumeric identifier; structure qualifiers are
// never symbolic).
func (p *Parser) identLike() bool {
	return p.at(token.IDENT)
}

// identComponent consumes one identifier or symbolic-identifier component.
func (p *Parser) identComponent() token.Token {
	if p.at(token.IDENT) || p.at(token.SYMBOLIC) {
		return p.advance()
	}
	p.fail("expected identifier", fmt.Sprintf("expected an identifier but found %q", p.cur().Literal))
	return token.Token{}
}
