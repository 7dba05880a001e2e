package parser

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// parsePattern parses a full pattern: an infix-resolved chain, optionally
// followed by a type ascription (spec.md §3, "Patterns").
func (p *Parser) parsePattern() ast.Pat {
	left := p.parseInfixPattern()
	if p.failed() != nil {
		return left
	}
	if p.at(token.COLON) {
		colon := p.advance()
		ty := p.parseType()
		return &ast.PatTyped{Inner: left, Colon: colon, Ty: ty}
	}
	return left
}

// parseInfixPattern flattens a sequence of application-level patterns
// joined by declared infix constructors (e.g. `h :: t`) and re-brackets it
// via the shared precedence-climbing algorithm.
func (p *Parser) parseInfixPattern() ast.Pat {
	first := p.parseAppPattern()
	items := []infixItem{{atom: first}}
	for {
		name, tok, ok := p.peekPatternOperator()
		if !ok {
			break
		}
		p.advance()
		next := p.parseAppPattern()
		items = append(items, infixItem{isOp: true, opName: name, opTok: tok}, infixItem{atom: next})
	}
	return p.resolvePatInfix(items)
}

// peekPatternOperator reports whether the current token is usable as an
// infix operator in pattern position: a symbolic identifier (always
// operator-shaped without `op`), or a plain identifier explicitly declared
// infix and not shadowed `nonfix`.
func (p *Parser) peekPatternOperator() (name string, tok token.Token, ok bool) {
	t := p.cur()
	switch {
	case t.Is(token.SYMBOLIC):
		return t.Literal, t, true
	case t.Is(token.IDENT):
		if f, found := p.fx.Lookup(t.Literal); found && !f.IsNonfix() {
			return t.Literal, t, true
		}
	}
	return "", token.Token{}, false
}

// parseAppPattern parses a possibly `op`-prefixed identifier or long
// identifier, disambiguating between a bare identifier/variable pattern, a
// constructor applied to a single atomic argument, and an as-pattern.
func (p *Parser) parseAppPattern() ast.Pat {
	if p.at(token.OP) || p.identLike() {
		op := p.opPrefix()
		longid := p.longIdent()
		if p.failed() != nil {
			return &ast.PatId{Op: op, LongId: longid}
		}
		if p.canStartAtomPattern() {
			arg := p.parseAtomicPattern()
			return &ast.PatCon{Op: op, LongId: longid, Arg: arg}
		}
		if len(longid.Qualifiers) == 0 {
			if pat, ok := p.tryAsPattern(op, longid.Name); ok {
				return pat
			}
		}
		return &ast.PatId{Op: op, LongId: longid}
	}
	return p.parseAtomicPattern()
}

// tryAsPattern attempts the trailing "[: ty] as pat" suffix of an
// as-pattern, backtracking cleanly if no `as` materializes (the leading
// ": ty" is otherwise consumed by the caller's general pat:ty rule).
func (p *Parser) tryAsPattern(op *token.Token, name token.Token) (ast.Pat, bool) {
	savePos, saveErr := p.pos, p.err
	var colon *token.Token
	var ty ast.Ty
	if p.at(token.COLON) {
		c := p.advance()
		t := p.parseType()
		if p.failed() == nil && p.at(token.AS) {
			colon, ty = &c, t
		} else {
			p.pos, p.err = savePos, saveErr
		}
	}
	if !p.at(token.AS) {
		return nil, false
	}
	asTok := p.advance()
	inner := p.parsePattern()
	return &ast.PatAs{Op: op, Name: name, Colon: colon, Ty: ty, As: asTok, Inner: inner}, true
}

// canStartAtomPattern reports whether the current token can begin an
// atomic pattern, used to decide whether a preceding identifier is applied
// as a constructor. The parser has no constructor environment (that is a
// static-semantic distinction, out of scope per spec.md §1 non-goals), so
// any identifier immediately followed by another atom-starting token is
// treated as a constructor application.
func (p *Parser) canStartAtomPattern() bool {
	switch p.cur().Kind {
	case token.UNDERSCORE, token.INT, token.WORD, token.REAL, token.CHAR, token.STRING,
		token.LPAREN, token.LBRACK, token.LBRACE, token.OP, token.IDENT:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtomicPattern() ast.Pat {
	switch {
	case p.at(token.UNDERSCORE):
		return &ast.PatWildcard{Tok: p.advance()}

	case p.atAny(token.INT, token.WORD, token.REAL, token.CHAR, token.STRING):
		return &ast.PatConst{Tok: p.advance()}

	case p.at(token.OP) || p.identLike():
		return p.parseAppPattern()

	case p.at(token.LPAREN):
		return p.parseParenPattern()

	case p.at(token.LBRACK):
		return p.parseListPattern()

	case p.at(token.LBRACE):
		return p.parseRecordPattern()

	default:
		p.fail("expected pattern", "expected a wildcard, literal, identifier, parenthesized, list, or record pattern")
		return &ast.PatWildcard{}
	}
}

func (p *Parser) parseParenPattern() ast.Pat {
	lparen := p.advance()
	if p.at(token.RPAREN) {
		rparen := p.advance()
		return &ast.PatUnit{LParen: lparen, RParen: rparen}
	}
	first := p.parsePattern()
	if p.at(token.COMMA) {
		seq := ast.One(first)
		for p.at(token.COMMA) {
			comma := p.advance()
			seq.Rest = append(seq.Rest, ast.SeqTail[ast.Pat]{Delim: comma, Item: p.parsePattern()})
		}
		rparen := p.expect(token.RPAREN, "expected `)` to close tuple pattern")
		return &ast.PatTuple{LParen: lparen, Elems: seq, RParen: rparen}
	}
	rparen := p.expect(token.RPAREN, "expected `)` to close parenthesized pattern")
	return &ast.PatParen{LParen: lparen, Inner: first, RParen: rparen}
}

func (p *Parser) parseListPattern() ast.Pat {
	lbrack := p.advance()
	if p.at(token.RBRACK) {
		rbrack := p.advance()
		return &ast.PatList{LBrack: lbrack, RBrack: rbrack}
	}
	elems := []ast.Pat{p.parsePattern()}
	var delims []token.Token
	for p.at(token.COMMA) {
		delims = append(delims, p.advance())
		elems = append(elems, p.parsePattern())
	}
	rbrack := p.expect(token.RBRACK, "expected `]` to close list pattern")
	return &ast.PatList{LBrack: lbrack, Elems: elems, Delims: delims, RBrack: rbrack}
}

func (p *Parser) parseRecordPattern() ast.Pat {
	lbrace := p.advance()
	if p.at(token.RBRACE) {
		rbrace := p.advance()
		return &ast.PatRecord{LBrace: lbrace, RBrace: rbrace}
	}
	var fields []ast.PatRecordField
	var delims []token.Token
	var flex *token.Token
	for {
		if p.at(token.DOTDOTDOT) {
			t := p.advance()
			flex = &t
			break
		}
		fields = append(fields, p.parsePatRecordField())
		if !p.at(token.COMMA) {
			break
		}
		delims = append(delims, p.advance())
	}
	rbrace := p.expect(token.RBRACE, "expected `}` to close record pattern")
	return &ast.PatRecord{LBrace: lbrace, Fields: fields, Delims: delims, Flex: flex, RBrace: rbrace}
}

func (p *Parser) parsePatRecordField() ast.PatRecordField {
	label := p.identComponent()
	if p.at(token.EQUALS) {
		eq := p.advance()
		return ast.PatRecordField{Label: label, Equal: &eq, Pat: p.parsePattern()}
	}
	return ast.PatRecordField{Label: label}
}
