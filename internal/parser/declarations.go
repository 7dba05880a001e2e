package parser

import (
	"fmt"
	"strconv"

	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/fixity"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// isDecStart reports whether the current token can begin a core
// declaration, including a lone ";" (the empty declaration).
func (p *Parser) isDecStart() bool {
	return p.atAny(token.VAL, token.FUN, token.TYPE, token.DATATYPE, token.ABSTYPE,
		token.EXCEPTION, token.LOCAL, token.OPEN, token.INFIX, token.INFIXR, token.NONFIX,
		token.SEMICOLON)
}

// parseDecs parses a maximal run of adjacent core declarations, the shape
// shared by `let`, `local`, and `abstype` bodies.
func (p *Parser) parseDecs() []ast.Dec {
	var decs []ast.Dec
	for p.failed() == nil && p.isDecStart() {
		if p.at(token.SEMICOLON) {
			semi := p.advance()
			decs = append(decs, &ast.DecEmpty{Semi: &semi})
			continue
		}
		decs = append(decs, p.parseOneDec())
	}
	return decs
}

func (p *Parser) parseOneDec() ast.Dec {
	switch {
	case p.at(token.VAL):
		return p.parseDecVal()
	case p.at(token.FUN):
		return p.parseDecFun()
	case p.at(token.TYPE):
		return p.parseDecType()
	case p.at(token.DATATYPE):
		return p.parseDecDatatype()
	case p.at(token.ABSTYPE):
		return p.parseDecAbstype()
	case p.at(token.EXCEPTION):
		return p.parseDecException()
	case p.at(token.LOCAL):
		return p.parseDecLocal()
	case p.at(token.OPEN):
		return p.parseDecOpen()
	case p.atAny(token.INFIX, token.INFIXR, token.NONFIX):
		return p.parseFixityDirective()
	default:
		p.fail("expected declaration", "expected val, fun, type, datatype, abstype, exception, local, open, or a fixity directive")
		return &ast.DecEmpty{}
	}
}

func (p *Parser) parseDecVal() ast.Dec {
	val := p.advance()
	tyvars := p.parseTyVarSeq()
	binds := ast.One(p.parseValBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.ValBind]{Delim: and, Item: p.parseValBind()})
	}
	return &ast.DecVal{Val: val, TyVars: tyvars, Binds: binds}
}

func (p *Parser) parseValBind() ast.ValBind {
	var rec *token.Token
	if p.at(token.REC) {
		t := p.advance()
		rec = &t
	}
	pat := p.parsePattern()
	eq := p.expect(token.EQUALS, "expected `=` in `val` binding")
	return ast.ValBind{Rec: rec, Pat: pat, Equal: eq, Exp: p.parseExp()}
}

// tryParseAtomicPattern attempts an atomic pattern, restoring cursor and
// error state cleanly on failure. Used to disambiguate infix `fun` clause
// headers from prefix ones without committing to either shape early.
func (p *Parser) tryParseAtomicPattern() (ast.Pat, bool) {
	save := p.pos
	pat := p.parseAtomicPattern()
	if p.err != nil {
		p.pos, p.err = save, nil
		return nil, false
	}
	return pat, true
}

// infixNameAhead reports whether the current token can serve as an infix
// `fun` clause name: a symbolic identifier, or a plain identifier already
// declared infix (spec.md §4.2 item 2).
func (p *Parser) infixNameAhead() bool {
	t := p.cur()
	if t.Is(token.SYMBOLIC) {
		return true
	}
	if t.Is(token.IDENT) {
		f, ok := p.fx.Lookup(t.Literal)
		return ok && !f.IsNonfix()
	}
	return false
}

func (p *Parser) parseFunHeader() ast.FunHeader {
	save, saveErr := p.pos, p.err

	if p.at(token.LPAREN) {
		lparen := p.advance()
		if firstPat, ok := p.tryParseAtomicPattern(); ok && p.infixNameAhead() {
			nameTok := p.advance()
			if secondPat, ok2 := p.tryParseAtomicPattern(); ok2 && p.at(token.RPAREN) {
				rparen := p.advance()
				args := []ast.Pat{firstPat, secondPat}
				for p.canStartAtomPattern() {
					args = append(args, p.parseAtomicPattern())
				}
				l, r := lparen, rparen
				return ast.FunHeader{Name: nameTok, Args: args, Infix: true, LParen: &l, RParen: &r}
			}
		}
		p.pos, p.err = save, saveErr
	} else if firstPat, ok := p.tryParseAtomicPattern(); ok && p.infixNameAhead() {
		nameTok := p.advance()
		secondPat := p.parseAtomicPattern()
		return ast.FunHeader{Name: nameTok, Args: []ast.Pat{firstPat, secondPat}, Infix: true}
	} else {
		p.pos, p.err = save, saveErr
	}

	op := p.opPrefix()
	name := p.identComponent()
	var args []ast.Pat
	for p.canStartAtomPattern() {
		args = append(args, p.parseAtomicPattern())
	}
	if p.failed() == nil && len(args) == 0 {
		p.fail("expected function parameter", "a `fun` clause needs at least one parameter pattern")
	}
	return ast.FunHeader{Op: op, Name: name, Args: args}
}

func (p *Parser) parseFunClause() ast.FunClause {
	header := p.parseFunHeader()
	var colon *token.Token
	var ty ast.Ty
	if p.at(token.COLON) {
		c := p.advance()
		colon = &c
		ty = p.parseType()
	}
	eq := p.expect(token.EQUALS, "expected `=` in `fun` clause")
	return ast.FunClause{Header: header, Colon: colon, Ty: ty, Equal: eq, Exp: p.parseExp()}
}

func (p *Parser) parseFunBind() ast.FunBind {
	seq := ast.One(p.parseFunClause())
	for p.at(token.PIPE) {
		pipe := p.advance()
		seq.Rest = append(seq.Rest, ast.SeqTail[ast.FunClause]{Delim: pipe, Item: p.parseFunClause()})
	}
	return ast.FunBind{Clauses: seq}
}

func (p *Parser) parseDecFun() ast.Dec {
	fun := p.advance()
	tyvars := p.parseTyVarSeq()
	binds := ast.One(p.parseFunBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.FunBind]{Delim: and, Item: p.parseFunBind()})
	}
	d := &ast.DecFun{Fun: fun, TyVars: tyvars, Binds: binds}
	p.checkFunArity(d)
	return d
}

// checkFunArity enforces spec.md §4.2 item 2: every clause of one function
// must agree on name and arity, checked once the whole clause list exists.
func (p *Parser) checkFunArity(d *ast.DecFun) {
	for _, bind := range d.Binds.All() {
		clauses := bind.Clauses.All()
		name := clauses[0].Header.Name
		arity := len(clauses[0].Header.Args)
		for _, c := range clauses[1:] {
			if c.Header.Name.Literal != name.Literal {
				p.failAt(c.Header.Name.Span, "fun clause name mismatch",
					fmt.Sprintf("all clauses of one function must share the name %q, found %q", name.Literal, c.Header.Name.Literal))
				return
			}
			if len(c.Header.Args) != arity {
				p.failAt(c.Header.Name.Span, "fun clause arity mismatch",
					fmt.Sprintf("all clauses of function %q must take %d argument(s)", name.Literal, arity))
				return
			}
		}
	}
}

func (p *Parser) parseDecType() ast.Dec {
	typeTok := p.advance()
	binds := ast.One(p.parseTypeBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.TypeBind]{Delim: and, Item: p.parseTypeBind()})
	}
	return &ast.DecType{Type: typeTok, Binds: binds}
}

func (p *Parser) parseTypeBind() ast.TypeBind {
	tyvars := p.parseTyVarSeq()
	name := p.identComponent()
	eq := p.expect(token.EQUALS, "expected `=` in `type` binding")
	return ast.TypeBind{TyVars: tyvars, Name: name, Equal: eq, Ty: p.parseType()}
}

func (p *Parser) parseDecDatatype() ast.Dec {
	dt := p.advance()

	// Replication form: "datatype tycon = datatype longtycon".
	if p.identLike() && p.peek().Is(token.EQUALS) && p.peekAt(2).Is(token.DATATYPE) {
		name := p.advance()
		eq := p.advance()
		eqDt := p.advance()
		longid := p.longIdent()
		return &ast.DecDatatype{Datatype: dt, ReplicName: &name, ReplicEqual: &eq, ReplicDatatype: &eqDt, ReplicOf: &longid}
	}

	binds := ast.One(p.parseDatatypeBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.DatatypeBind]{Delim: and, Item: p.parseDatatypeBind()})
	}
	return &ast.DecDatatype{Datatype: dt, Binds: binds, WithType: p.parseWithTypeClause()}
}

func (p *Parser) parseWithTypeClause() *ast.WithTypeClause {
	if !p.at(token.WITHTYPE) {
		return nil
	}
	w := p.advance()
	binds := ast.One(p.parseTypeBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.TypeBind]{Delim: and, Item: p.parseTypeBind()})
	}
	return &ast.WithTypeClause{Withtype: w, Binds: binds}
}

func (p *Parser) parseDatatypeBind() ast.DatatypeBind {
	tyvars := p.parseTyVarSeq()
	name := p.identComponent()
	eq := p.expect(token.EQUALS, "expected `=` in `datatype` binding")
	cons := ast.One(p.parseConBind())
	for p.at(token.PIPE) {
		pipe := p.advance()
		cons.Rest = append(cons.Rest, ast.SeqTail[ast.ConBind]{Delim: pipe, Item: p.parseConBind()})
	}
	return ast.DatatypeBind{TyVars: tyvars, Name: name, Equal: eq, Cons: cons}
}

func (p *Parser) parseConBind() ast.ConBind {
	op := p.opPrefix()
	name := p.identComponent()
	var of *token.Token
	var ty ast.Ty
	if p.at(token.OF) {
		o := p.advance()
		of = &o
		ty = p.parseType()
	}
	return ast.ConBind{Op: op, Name: name, Of: of, Ty: ty}
}

// parseDecAbstype implements the abstype form for real rather than leaving
// it a placeholder (spec.md §9 open question).
func (p *Parser) parseDecAbstype() ast.Dec {
	abs := p.advance()
	binds := ast.One(p.parseDatatypeBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.DatatypeBind]{Delim: and, Item: p.parseDatatypeBind()})
	}
	wt := p.parseWithTypeClause()
	with := p.expect(token.WITH, "expected `with` after `abstype` bindings")
	decs := p.parseDecs()
	end := p.expect(token.END, "expected `end` to close `abstype`")
	return &ast.DecAbstype{Abstype: abs, Binds: binds, WithType: wt, With: with, Decs: decs, End: end}
}

func (p *Parser) parseDecException() ast.Dec {
	exTok := p.advance()
	binds := ast.One(p.parseExBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.ExBind]{Delim: and, Item: p.parseExBind()})
	}
	return &ast.DecException{Exception: exTok, Binds: binds}
}

func (p *Parser) parseExBind() ast.ExBind {
	op := p.opPrefix()
	name := p.identComponent()
	if p.at(token.EQUALS) {
		eq := p.advance()
		eqOp := p.opPrefix()
		longid := p.longIdent()
		return ast.ExBind{Op: op, Name: name, Equal: &eq, EqOp: eqOp, LongId: &longid}
	}
	var of *token.Token
	var ty ast.Ty
	if p.at(token.OF) {
		o := p.advance()
		of = &o
		ty = p.parseType()
	}
	return ast.ExBind{Op: op, Name: name, Of: of, Ty: ty}
}

// parseDecLocal pushes a single fixity frame spanning both declaration
// groups, so the second group can see fixities declared in the first, and
// pops it after `end` so nothing declared inside `local` leaks out
// (spec.md §4.2: "entering a ... local in-segment ... pushes a new frame;
// leaving pops it").
func (p *Parser) parseDecLocal() ast.Dec {
	local := p.advance()
	p.fx.PushFrame()
	decs1 := p.parseDecs()
	in := p.expect(token.IN, "expected `in` after `local` declarations")
	decs2 := p.parseDecs()
	end := p.expect(token.END, "expected `end` to close `local`")
	p.fx.PopFrame()
	return &ast.DecLocal{Local: local, Decs1: decs1, In: in, Decs2: decs2, End: end}
}

func (p *Parser) parseDecOpen() ast.Dec {
	open := p.advance()
	ids := []ast.LongIdent{p.longIdent()}
	for p.identLike() {
		ids = append(ids, p.longIdent())
	}
	return &ast.DecOpen{Open: open, LongIds: ids}
}

// parseFixityDirective applies infix/infixr/nonfix to the live fixity
// environment as it parses (spec.md §4.2: "side-effecting on the parser's
// fixity environment").
func (p *Parser) parseFixityDirective() ast.Dec {
	kw := p.advance()
	var level *token.Token
	prec := 0
	if p.at(token.INT) {
		l := p.advance()
		level = &l
		if n, err := strconv.Atoi(l.Literal); err == nil {
			prec = n
		}
	}
	var ids []token.Token
	for p.identLike() || p.at(token.SYMBOLIC) {
		ids = append(ids, p.advance())
	}
	if p.failed() == nil && len(ids) == 0 {
		p.fail("expected identifier", "expected at least one identifier after a fixity directive")
	}
	for _, id := range ids {
		switch kw.Kind {
		case token.INFIX:
			p.fx.Extend(id.Literal, fixity.Fixity{Precedence: prec, Assoc: fixity.Left})
		case token.INFIXR:
			p.fx.Extend(id.Literal, fixity.Fixity{Precedence: prec, Assoc: fixity.Right})
		case token.NONFIX:
			p.fx.SetNonfix(id.Literal)
		}
	}
	return &ast.FixityDirective{Keyword: kw, Level: level, Ids: ids}
}
