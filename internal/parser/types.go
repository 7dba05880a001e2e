package parser

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// parseType parses a type expression at the lowest precedence: a possibly
// tupled type, optionally followed by "-> ty" (right-associative).
func (p *Parser) parseType() ast.Ty {
	left := p.parseTupleType()
	if p.failed() != nil {
		return left
	}
	if p.at(token.ARROW) {
		arrow := p.advance()
		right := p.parseType()
		return &ast.TyArrow{Domain: left, Arrow: arrow, Range: right}
	}
	return left
}

// isStar reports whether tok spells the tuple separator "*". "*" is an
// ordinary symbolic identifier lexically (spec.md §4.1), not a distinct
// punctuation kind.
func isStar(tok token.Token) bool {
	return tok.Is(token.SYMBOLIC) && tok.Literal == "*"
}

// parseTupleType parses a "*"-separated sequence of application-level
// types: ty1 * ty2 * ... * tyN.
func (p *Parser) parseTupleType() ast.Ty {
	first := p.parseAppType()
	if p.failed() != nil || !isStar(p.cur()) {
		return first
	}
	seq := ast.One(first)
	for isStar(p.cur()) {
		star := p.advance()
		next := p.parseAppType()
		if p.failed() != nil {
			return first
		}
		seq.Rest = append(seq.Rest, ast.SeqTail[ast.Ty]{Delim: star, Item: next})
	}
	return &ast.TyTuple{Elems: seq}
}

// parseAppType parses an atomic type followed by zero or more postfix type
// constructor applications: 'a list, int list array.
func (p *Parser) parseAppType() ast.Ty {
	t := p.parseAtomicType()
	for p.failed() == nil && p.identLike() {
		name := p.longIdent()
		t = &ast.TyCon{Args: []ast.Ty{t}, Name: name}
	}
	return t
}

func (p *Parser) parseAtomicType() ast.Ty {
	switch {
	case p.at(token.TYVAR):
		return &ast.TyVar{Tok: p.advance()}

	case p.at(token.LBRACE):
		return p.parseRecordType()

	case p.at(token.LPAREN):
		lparen := p.advance()
		first := p.parseType()
		if p.failed() != nil {
			return &ast.TyParen{LParen: lparen, Inner: first}
		}
		if p.at(token.COMMA) {
			seq := []ast.Ty{first}
			var delims []token.Token
			for p.at(token.COMMA) {
				delims = append(delims, p.advance())
				seq = append(seq, p.parseType())
			}
			rparen := p.expect(token.RPAREN, "expected `)` to close type sequence")
			name := p.longIdent()
			l := lparen
			r := rparen
			return &ast.TyCon{Args: seq, Left: &l, Delim: delims, Right: &r, Name: name}
		}
		rparen := p.expect(token.RPAREN, "expected `)` to close parenthesized type")
		return &ast.TyParen{LParen: lparen, Inner: first, RParen: rparen}

	case p.identLike():
		return &ast.TyCon{Name: p.longIdent()}

	default:
		p.fail("expected type", "expected a type variable, type constructor, record type, or parenthesized type")
		return &ast.TyCon{}
	}
}

func (p *Parser) parseRecordType() ast.Ty {
	lbrace := p.advance()
	if p.at(token.RBRACE) {
		rbrace := p.advance()
		return &ast.TyRecord{LBrace: lbrace, RBrace: rbrace}
	}
	field := p.parseTyRecordField()
	seq := ast.One(field)
	for p.at(token.COMMA) {
		comma := p.advance()
		seq.Rest = append(seq.Rest, ast.SeqTail[ast.TyRecordField]{Delim: comma, Item: p.parseTyRecordField()})
	}
	rbrace := p.expect(token.RBRACE, "expected `}` to close record type")
	return &ast.TyRecord{LBrace: lbrace, Fields: seq, RBrace: rbrace}
}

func (p *Parser) parseTyRecordField() ast.TyRecordField {
	label := p.identComponent()
	colon := p.expect(token.COLON, "expected `:` after record field label")
	ty := p.parseType()
	return ast.TyRecordField{Label: label, Colon: colon, Ty: ty}
}

// parseTyVarSeq parses the SyntaxSeq<tyvar> ahead of a type/datatype
// binding name: bare, a single tyvar, or a parenthesized comma list
// (spec.md §4.2 item 3).
func (p *Parser) parseTyVarSeq() ast.SyntaxSeq[token.Token] {
	switch {
	case p.at(token.TYVAR):
		return ast.SyntaxSeq[token.Token]{Kind: ast.SeqOne, One: p.advance()}
	case p.at(token.LPAREN) && p.peek().Is(token.TYVAR):
		lparen := p.advance()
		elems := []token.Token{p.expect(token.TYVAR, "expected type variable")}
		var delims []token.Token
		for p.at(token.COMMA) {
			delims = append(delims, p.advance())
			elems = append(elems, p.expect(token.TYVAR, "expected type variable"))
		}
		rparen := p.expect(token.RPAREN, "expected `)` to close type variable sequence")
		return ast.SyntaxSeq[token.Token]{Kind: ast.SeqMany, Left: lparen, Elems: elems, Delims: delims, Right: rparen}
	default:
		return ast.SyntaxSeq[token.Token]{Kind: ast.SeqEmpty}
	}
}
