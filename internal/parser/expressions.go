package parser

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// parseExp parses a full expression. The leading-keyword forms (if/while/
// raise/case/fn) sit above the operator chain and, per real usage, require
// explicit parentheses to appear as an operand of `andalso`/`orelse`/infix/
// `handle`/application — mirrored here by returning them directly instead
// of threading them through parseOrElseExp.
func (p *Parser) parseExp() ast.Exp {
	switch {
	case p.at(token.IF):
		return p.parseIfExp()
	case p.at(token.WHILE):
		return p.parseWhileExp()
	case p.at(token.RAISE):
		return p.parseRaiseExp()
	case p.at(token.CASE):
		return p.parseCaseExp()
	case p.at(token.FN):
		return p.parseFnExp()
	default:
		left := p.parseOrElseExp()
		if p.at(token.COLON) {
			colon := p.advance()
			ty := p.parseType()
			return &ast.ExpTyped{Inner: left, Colon: colon, Ty: ty}
		}
		return left
	}
}

func (p *Parser) parseOrElseExp() ast.Exp {
	left := p.parseAndAlsoExp()
	for p.at(token.ORELSE) {
		tok := p.advance()
		right := p.parseAndAlsoExp()
		left = &ast.ExpOrElse{Left: left, OrElse: tok, Right: right}
	}
	return left
}

func (p *Parser) parseAndAlsoExp() ast.Exp {
	left := p.parseInfixExp()
	for p.at(token.ANDALSO) {
		tok := p.advance()
		right := p.parseInfixExp()
		left = &ast.ExpAndAlso{Left: left, AndAlso: tok, Right: right}
	}
	return left
}

// parseInfixExp flattens a sequence of handle-level expressions joined by
// declared infix operators and re-brackets it via precedence climbing
// (spec.md §4.2 item 1).
func (p *Parser) parseInfixExp() ast.Exp {
	first := p.parseHandleExp()
	items := []infixItem{{atom: first}}
	for {
		name, tok, ok := p.peekExpOperator()
		if !ok {
			break
		}
		p.advance()
		next := p.parseHandleExp()
		items = append(items, infixItem{isOp: true, opName: name, opTok: tok}, infixItem{atom: next})
	}
	return p.resolveExpInfix(items)
}

func (p *Parser) peekExpOperator() (name string, tok token.Token, ok bool) {
	t := p.cur()
	switch {
	case t.Is(token.SYMBOLIC) || t.Is(token.IDENT):
		if f, found := p.fx.Lookup(t.Literal); found && !f.IsNonfix() {
			return t.Literal, t, true
		}
	}
	return "", token.Token{}, false
}

// parseHandleExp implements the rule that `handle` binds tighter than
// infix operators but looser than application (spec.md §4.2 item 5).
func (p *Parser) parseHandleExp() ast.Exp {
	left := p.parseAppExp()
	for p.at(token.HANDLE) {
		tok := p.advance()
		matches := p.parseMatchSeq()
		left = &ast.ExpHandle{Inner: left, Handle: tok, Match: matches}
	}
	return left
}

func (p *Parser) parseAppExp() ast.Exp {
	fn := p.parseAtomicExp()
	for p.canStartAtomExp() {
		arg := p.parseAtomicExp()
		fn = &ast.ExpApp{Fn: fn, Arg: arg}
	}
	return fn
}

func (p *Parser) canStartAtomExp() bool {
	switch p.cur().Kind {
	case token.INT, token.WORD, token.REAL, token.CHAR, token.STRING,
		token.LPAREN, token.LBRACK, token.LBRACE, token.HASH, token.LET, token.OP:
		return true
	case token.IDENT:
		if f, ok := p.fx.Lookup(p.cur().Literal); ok && !f.IsNonfix() {
			return false
		}
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtomicExp() ast.Exp {
	switch {
	case p.atAny(token.INT, token.WORD, token.REAL, token.CHAR, token.STRING):
		return &ast.ExpConst{Tok: p.advance()}

	case p.at(token.HASH):
		hash := p.advance()
		label := p.identComponent()
		return &ast.ExpSelector{Hash: hash, Label: label}

	case p.at(token.OP) || p.identLike():
		op := p.opPrefix()
		longid := p.longIdent()
		return &ast.ExpId{Op: op, LongId: longid}

	case p.at(token.LPAREN):
		return p.parseParenExp()

	case p.at(token.LBRACK):
		return p.parseListExp()

	case p.at(token.LBRACE):
		return p.parseRecordExp()

	case p.at(token.LET):
		return p.parseLetExp()

	default:
		p.fail("expected expression", "expected a literal, identifier, parenthesized expression, list, record, or `let` expression")
		return &ast.ExpUnit{}
	}
}

func (p *Parser) parseParenExp() ast.Exp {
	lparen := p.advance()
	if p.at(token.RPAREN) {
		rparen := p.advance()
		return &ast.ExpUnit{LParen: lparen, RParen: rparen}
	}
	first := p.parseExp()
	switch {
	case p.at(token.COMMA):
		seq := ast.One(first)
		for p.at(token.COMMA) {
			comma := p.advance()
			seq.Rest = append(seq.Rest, ast.SeqTail[ast.Exp]{Delim: comma, Item: p.parseExp()})
		}
		rparen := p.expect(token.RPAREN, "expected `)` to close tuple expression")
		return &ast.ExpTuple{LParen: lparen, Elems: seq, RParen: rparen}

	case p.at(token.SEMICOLON):
		seq := ast.One(first)
		for p.at(token.SEMICOLON) {
			semi := p.advance()
			seq.Rest = append(seq.Rest, ast.SeqTail[ast.Exp]{Delim: semi, Item: p.parseExp()})
		}
		rparen := p.expect(token.RPAREN, "expected `)` to close sequence expression")
		return &ast.ExpSeq{LParen: lparen, Elems: seq, RParen: rparen}

	default:
		rparen := p.expect(token.RPAREN, "expected `)` to close parenthesized expression")
		return &ast.ExpParen{LParen: lparen, Inner: first, RParen: rparen}
	}
}

func (p *Parser) parseListExp() ast.Exp {
	lbrack := p.advance()
	if p.at(token.RBRACK) {
		rbrack := p.advance()
		return &ast.ExpList{LBrack: lbrack, RBrack: rbrack}
	}
	elems := []ast.Exp{p.parseExp()}
	var delims []token.Token
	for p.at(token.COMMA) {
		delims = append(delims, p.advance())
		elems = append(elems, p.parseExp())
	}
	rbrack := p.expect(token.RBRACK, "expected `]` to close list expression")
	return &ast.ExpList{LBrack: lbrack, Elems: elems, Delims: delims, RBrack: rbrack}
}

func (p *Parser) parseRecordExp() ast.Exp {
	lbrace := p.advance()
	if p.at(token.RBRACE) {
		rbrace := p.advance()
		return &ast.ExpRecord{LBrace: lbrace, RBrace: rbrace}
	}
	field := p.parseExpRecordField()
	seq := ast.One(field)
	for p.at(token.COMMA) {
		comma := p.advance()
		seq.Rest = append(seq.Rest, ast.SeqTail[ast.ExpRecordField]{Delim: comma, Item: p.parseExpRecordField()})
	}
	rbrace := p.expect(token.RBRACE, "expected `}` to close record expression")
	return &ast.ExpRecord{LBrace: lbrace, Fields: seq, RBrace: rbrace}
}

func (p *Parser) parseExpRecordField() ast.ExpRecordField {
	label := p.identComponent()
	eq := p.expect(token.EQUALS, "expected `=` after record field label")
	return ast.ExpRecordField{Label: label, Equal: eq, Exp: p.parseExp()}
}

func (p *Parser) parseLetExp() ast.Exp {
	let := p.advance()
	p.fx.PushFrame()
	decs := p.parseDecs()
	in := p.expect(token.IN, "expected `in` after `let` declarations")
	body := ast.One(p.parseExp())
	for p.at(token.SEMICOLON) {
		semi := p.advance()
		body.Rest = append(body.Rest, ast.SeqTail[ast.Exp]{Delim: semi, Item: p.parseExp()})
	}
	end := p.expect(token.END, "expected `end` to close `let` expression")
	p.fx.PopFrame()
	return &ast.ExpLet{Let: let, Decs: decs, In: in, Body: body, End: end}
}

func (p *Parser) parseIfExp() ast.Exp {
	ifTok := p.advance()
	cond := p.parseExp()
	then := p.expect(token.THEN, "expected `then` after `if` condition")
	conseq := p.parseExp()
	elseTok := p.expect(token.ELSE, "expected `else` branch of `if`")
	alt := p.parseExp()
	return &ast.ExpIf{If: ifTok, Cond: cond, Then: then, Conseq: conseq, Else: elseTok, Alt: alt}
}

func (p *Parser) parseWhileExp() ast.Exp {
	while := p.advance()
	cond := p.parseExp()
	do := p.expect(token.DO, "expected `do` after `while` condition")
	body := p.parseExp()
	return &ast.ExpWhile{While: while, Cond: cond, Do: do, Body: body}
}

func (p *Parser) parseRaiseExp() ast.Exp {
	raise := p.advance()
	return &ast.ExpRaise{Raise: raise, Exn: p.parseExp()}
}

func (p *Parser) parseCaseExp() ast.Exp {
	caseTok := p.advance()
	scrut := p.parseExp()
	of := p.expect(token.OF, "expected `of` after `case` scrutinee")
	matches := p.parseMatchSeq()
	return &ast.ExpCase{Case: caseTok, Scrut: scrut, Of: of, Match: matches}
}

func (p *Parser) parseFnExp() ast.Exp {
	fn := p.advance()
	return &ast.ExpFn{Fn: fn, Match: p.parseMatchSeq()}
}

// parseMatchSeq parses a "|"-separated sequence of "pat => exp" clauses,
// shared by fn, case, and handle (spec.md §3).
func (p *Parser) parseMatchSeq() ast.Seq[ast.Match] {
	seq := ast.One(p.parseMatch())
	for p.at(token.PIPE) {
		pipe := p.advance()
		seq.Rest = append(seq.Rest, ast.SeqTail[ast.Match]{Delim: pipe, Item: p.parseMatch()})
	}
	return seq
}

func (p *Parser) parseMatch() ast.Match {
	pat := p.parsePattern()
	arrow := p.expect(token.DARROW, "expected `=>` after pattern in match clause")
	return ast.Match{Pat: pat, Arrow: arrow, Body: p.parseExp()}
}
