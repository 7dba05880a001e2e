package parser

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

func (p *Parser) isSpecStart() bool {
	return p.atAny(token.VAL, token.TYPE, token.EQTYPE, token.DATATYPE,
		token.EXCEPTION, token.STRUCTURE, token.INCLUDE, token.SHARING)
}

// parseSpecs parses a maximal run of specs, collapsing to a single Spec
// when there is exactly one with no trailing separator.
func (p *Parser) parseSpecs() ast.Spec {
	var items []ast.Spec
	var semis []*token.Token
	for p.failed() == nil && p.isSpecStart() {
		items = append(items, p.parseOneSpec())
		if p.at(token.SEMICOLON) {
			s := p.advance()
			semis = append(semis, &s)
		} else {
			semis = append(semis, nil)
		}
	}
	if len(items) == 0 {
		return &ast.SpecSeq{}
	}
	if len(items) == 1 && semis[0] == nil {
		return items[0]
	}
	return &ast.SpecSeq{Specs: items, Semis: semis}
}

func (p *Parser) parseOneSpec() ast.Spec {
	switch {
	case p.at(token.VAL):
		return p.parseSpecVal()
	case p.at(token.TYPE):
		return p.parseSpecType()
	case p.at(token.EQTYPE):
		return p.parseSpecEqtype()
	case p.at(token.DATATYPE):
		return p.parseSpecDatatype()
	case p.at(token.EXCEPTION):
		return p.parseSpecException()
	case p.at(token.STRUCTURE):
		return p.parseSpecStructure()
	case p.at(token.INCLUDE):
		return p.parseSpecInclude()
	case p.at(token.SHARING):
		return p.parseSpecSharing()
	default:
		p.fail("expected spec", "expected val, type, eqtype, datatype, exception, structure, include, or sharing")
		return &ast.SpecSeq{}
	}
}

func (p *Parser) parseSpecVal() ast.Spec {
	val := p.advance()
	binds := ast.One(p.parseSpecValBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.SpecValBind]{Delim: and, Item: p.parseSpecValBind()})
	}
	return &ast.SpecVal{Val: val, Binds: binds}
}

func (p *Parser) parseSpecValBind() ast.SpecValBind {
	name := p.identComponent()
	colon := p.expect(token.COLON, "expected `:` in `val` spec")
	return ast.SpecValBind{Name: name, Colon: colon, Ty: p.parseType()}
}

// parseSpecType disambiguates bare abstract-type specs from abbreviation
// specs by checking for "=" after the first tycon name.
func (p *Parser) parseSpecType() ast.Spec {
	typeTok := p.advance()
	tyvars := p.parseTyVarSeq()
	name := p.identComponent()

	if p.at(token.EQUALS) {
		eq := p.advance()
		binds := ast.One(ast.TypeBind{TyVars: tyvars, Name: name, Equal: eq, Ty: p.parseType()})
		for p.at(token.AND) {
			and := p.advance()
			binds.Rest = append(binds.Rest, ast.SeqTail[ast.TypeBind]{Delim: and, Item: p.parseTypeBind()})
		}
		return &ast.SpecTypeAbbrev{Type: typeTok, Binds: binds}
	}

	binds := ast.One(ast.SyntaxSeqNamed{TyVars: tyvars, Name: name})
	for p.at(token.AND) {
		and := p.advance()
		tv := p.parseTyVarSeq()
		nm := p.identComponent()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.SyntaxSeqNamed]{Delim: and, Item: ast.SyntaxSeqNamed{TyVars: tv, Name: nm}})
	}
	return &ast.SpecType{Type: typeTok, Binds: binds}
}

func (p *Parser) parseSpecEqtype() ast.Spec {
	eqTok := p.advance()
	tyvars := p.parseTyVarSeq()
	name := p.identComponent()
	binds := ast.One(ast.SyntaxSeqNamed{TyVars: tyvars, Name: name})
	for p.at(token.AND) {
		and := p.advance()
		tv := p.parseTyVarSeq()
		nm := p.identComponent()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.SyntaxSeqNamed]{Delim: and, Item: ast.SyntaxSeqNamed{TyVars: tv, Name: nm}})
	}
	return &ast.SpecEqtype{Eqtype: eqTok, Binds: binds}
}

func (p *Parser) parseSpecDatatype() ast.Spec {
	dt := p.advance()
	if p.identLike() && p.peek().Is(token.EQUALS) && p.peekAt(2).Is(token.DATATYPE) {
		name := p.advance()
		eq := p.advance()
		eqDt := p.advance()
		return &ast.SpecReplicDatatype{Datatype: dt, Name: name, Equal: eq, EqDatatype: eqDt, LongId: p.longIdent()}
	}
	binds := ast.One(p.parseDatatypeBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.DatatypeBind]{Delim: and, Item: p.parseDatatypeBind()})
	}
	return &ast.SpecDatatype{Datatype: dt, Binds: binds}
}

func (p *Parser) parseSpecException() ast.Spec {
	exTok := p.advance()
	binds := ast.One(p.parseConBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.ConBind]{Delim: and, Item: p.parseConBind()})
	}
	return &ast.SpecException{Exception: exTok, Binds: binds}
}

func (p *Parser) parseSpecStructure() ast.Spec {
	structureTok := p.advance()
	binds := ast.One(p.parseSpecStructureBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.SpecStructureBind]{Delim: and, Item: p.parseSpecStructureBind()})
	}
	return &ast.SpecStructure{Structure: structureTok, Binds: binds}
}

func (p *Parser) parseSpecStructureBind() ast.SpecStructureBind {
	name := p.identComponent()
	colon := p.expect(token.COLON, "expected `:` in `structure` spec")
	return ast.SpecStructureBind{Name: name, Colon: colon, SigExp: p.parseSigExp()}
}

// parseSpecInclude distinguishes the single-sigexp form from the derived
// multi-name form "include id id ...": a lone identifier followed
// immediately by another identifier commits to the multi-name form;
// otherwise a single name may still carry a "where type" refinement tail.
func (p *Parser) parseSpecInclude() ast.Spec {
	inc := p.advance()
	if p.at(token.SIG) {
		return &ast.SpecInclude{Include: inc, SigExp: p.parseSigExp()}
	}
	names := []token.Token{p.identComponent()}
	for p.identLike() {
		names = append(names, p.identComponent())
	}
	if len(names) > 1 {
		return &ast.SpecInclude{Include: inc, Names: names}
	}
	sigExp := p.parseSigExpWhereTail(&ast.SigExpId{Name: names[0]})
	return &ast.SpecInclude{Include: inc, SigExp: sigExp}
}

func (p *Parser) parseSpecSharing() ast.Spec {
	sharing := p.advance()
	var typeTok *token.Token
	if p.at(token.TYPE) {
		t := p.advance()
		typeTok = &t
	}
	ids := []ast.LongIdent{p.longIdent()}
	var eqs []token.Token
	for p.at(token.EQUALS) {
		eqs = append(eqs, p.advance())
		ids = append(ids, p.longIdent())
	}
	return &ast.SpecSharing{Sharing: sharing, Type: typeTok, LongIds: ids, Equals: eqs}
}

func (p *Parser) parseSigExp() ast.SigExp {
	var base ast.SigExp
	switch {
	case p.at(token.SIG):
		sigTok := p.advance()
		spec := p.parseSpecs()
		end := p.expect(token.END, "expected `end` to close `sig`")
		base = &ast.SigExpSig{Sig: sigTok, Spec: spec, End: end}
	case p.identLike():
		base = &ast.SigExpId{Name: p.identComponent()}
	default:
		p.fail("expected signature expression", "expected `sig ... end` or a signature identifier")
		return &ast.SigExpId{}
	}
	return p.parseSigExpWhereTail(base)
}

func (p *Parser) parseSigExpWhereTail(base ast.SigExp) ast.SigExp {
	for p.at(token.WHERE) {
		where := p.advance()
		typeTok := p.expect(token.TYPE, "expected `type` after `where`")
		tyvars := p.parseTyVarSeq()
		longid := p.longIdent()
		eq := p.expect(token.EQUALS, "expected `=` in `where type` clause")
		ty := p.parseType()
		base = &ast.SigExpWhereType{SigExp: base, Where: where, Type: typeTok, TyVars: tyvars, LongId: longid, Equal: eq, Ty: ty}
	}
	return base
}

func (p *Parser) parseSignatureDec() *ast.SignatureDec {
	sigKw := p.advance()
	binds := ast.One(p.parseSignatureBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.SignatureBind]{Delim: and, Item: p.parseSignatureBind()})
	}
	return &ast.SignatureDec{Signature: sigKw, Binds: binds}
}

func (p *Parser) parseSignatureBind() ast.SignatureBind {
	name := p.identComponent()
	eq := p.expect(token.EQUALS, "expected `=` in `signature` binding")
	return ast.SignatureBind{Name: name, Equal: eq, SigExp: p.parseSigExp()}
}
