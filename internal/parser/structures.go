package parser

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// isStrDecStart reports whether the current token can begin a
// structure-level declaration: either a core declaration or `structure`/
// `local` at structure scope.
func (p *Parser) isStrDecStart() bool {
	return p.isDecStart() || p.atAny(token.STRUCTURE, token.LOCAL)
}

func (p *Parser) parseStrDecs() ast.StrDec {
	var items []ast.StrDec
	for p.failed() == nil && p.isStrDecStart() {
		items = append(items, p.parseOneStrDec())
	}
	switch len(items) {
	case 0:
		return &ast.StrDecSeq{}
	case 1:
		return items[0]
	default:
		return &ast.StrDecSeq{Decs: items}
	}
}

func (p *Parser) parseOneStrDec() ast.StrDec {
	switch {
	case p.at(token.STRUCTURE):
		return p.parseStrDecStructure()
	case p.at(token.LOCAL):
		return p.parseStrDecLocal()
	case p.at(token.SEMICOLON):
		semi := p.advance()
		return &ast.StrDecCore{Dec: &ast.DecEmpty{Semi: &semi}}
	case p.isDecStart():
		return &ast.StrDecCore{Dec: p.parseOneDec()}
	default:
		p.fail("expected structure-level declaration", "expected a core declaration, `structure`, or `local`")
		return &ast.StrDecCore{Dec: &ast.DecEmpty{}}
	}
}

func (p *Parser) parseStrDecStructure() *ast.StrDecStructure {
	structureTok := p.advance()
	binds := ast.One(p.parseStructureBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.StructureBind]{Delim: and, Item: p.parseStructureBind()})
	}
	return &ast.StrDecStructure{Structure: structureTok, Binds: binds}
}

func (p *Parser) parseStructureBind() ast.StructureBind {
	name := p.identComponent()
	var constraint *ast.SigConstraint
	if p.atAny(token.COLON, token.COLONGT) {
		colon := p.advance()
		constraint = &ast.SigConstraint{Colon: colon, Opaque: colon.Is(token.COLONGT), SigExp: p.parseSigExp()}
	}
	eq := p.expect(token.EQUALS, "expected `=` in `structure` binding")
	return ast.StructureBind{Name: name, Constraint: constraint, Equal: eq, StrExp: p.parseStrExp()}
}

// parseStrDecLocal, like its core-level counterpart, spans both
// declaration groups with a single fixity frame (spec.md §4.2).
func (p *Parser) parseStrDecLocal() *ast.StrDecLocal {
	local := p.advance()
	p.fx.PushFrame()
	d1 := p.parseStrDecs()
	in := p.expect(token.IN, "expected `in` after `local` structure declarations")
	d2 := p.parseStrDecs()
	end := p.expect(token.END, "expected `end` to close `local`")
	p.fx.PopFrame()
	return &ast.StrDecLocal{Local: local, StrDec1: d1, In: in, StrDec2: d2, End: end}
}

func (p *Parser) parseStrExp() ast.StrExp {
	base := p.parseAtomicStrExp()
	for p.atAny(token.COLON, token.COLONGT) {
		colon := p.advance()
		base = &ast.StrExpConstraint{StrExp: base, Colon: colon, Opaque: colon.Is(token.COLONGT), SigExp: p.parseSigExp()}
	}
	return base
}

func (p *Parser) parseAtomicStrExp() ast.StrExp {
	switch {
	case p.at(token.STRUCT):
		structTok := p.advance()
		p.fx.PushFrame()
		strdec := p.parseStrDecs()
		end := p.expect(token.END, "expected `end` to close `struct`")
		p.fx.PopFrame()
		return &ast.StrExpStruct{Struct: structTok, StrDec: strdec, End: end}

	case p.at(token.LET):
		let := p.advance()
		p.fx.PushFrame()
		strdec := p.parseStrDecs()
		in := p.expect(token.IN, "expected `in` after `let` structure declarations")
		body := p.parseStrExp()
		end := p.expect(token.END, "expected `end` to close `let`")
		p.fx.PopFrame()
		return &ast.StrExpLet{Let: let, StrDec: strdec, In: in, StrExp: body, End: end}

	case p.identLike():
		if !p.peek().Is(token.DOT) && p.peek().Is(token.LPAREN) {
			funid := p.advance()
			lparen := p.advance()
			if p.isStrDecStart() {
				argDec := p.parseStrDecs()
				rparen := p.expect(token.RPAREN, "expected `)` to close functor application")
				return &ast.StrExpFunctorApp{FunId: funid, LParen: lparen, ArgDec: argDec, RParen: rparen}
			}
			arg := p.parseStrExp()
			rparen := p.expect(token.RPAREN, "expected `)` to close functor application")
			return &ast.StrExpFunctorApp{FunId: funid, LParen: lparen, Arg: arg, RParen: rparen}
		}
		return &ast.StrExpId{LongId: p.longIdent()}

	default:
		p.fail("expected structure expression", "expected `struct ... end`, a structure identifier, a functor application, or `let ... end`")
		return &ast.StrExpId{}
	}
}

func (p *Parser) parseFunctorDec() *ast.FunctorDec {
	functorTok := p.advance()
	binds := ast.One(p.parseFunctorBind())
	for p.at(token.AND) {
		and := p.advance()
		binds.Rest = append(binds.Rest, ast.SeqTail[ast.FunctorBind]{Delim: and, Item: p.parseFunctorBind()})
	}
	return &ast.FunctorDec{Functor: functorTok, Binds: binds}
}

// parseFunctorBind disambiguates the two parameter forms by checking for
// "id :" immediately inside the parens; any other shape is the derived
// spec-argument form.
func (p *Parser) parseFunctorBind() ast.FunctorBind {
	funid := p.identComponent()
	lparen := p.expect(token.LPAREN, "expected `(` after functor name")

	var paramId *token.Token
	var paramColon *token.Token
	var paramSig ast.SigExp
	var paramSpec ast.Spec
	if p.identLike() && p.peek().Is(token.COLON) {
		id := p.advance()
		colon := p.advance()
		paramId, paramColon = &id, &colon
		paramSig = p.parseSigExp()
	} else {
		paramSpec = p.parseSpecs()
	}
	rparen := p.expect(token.RPAREN, "expected `)` to close functor parameter")

	var result *ast.SigConstraint
	if p.atAny(token.COLON, token.COLONGT) {
		colon := p.advance()
		result = &ast.SigConstraint{Colon: colon, Opaque: colon.Is(token.COLONGT), SigExp: p.parseSigExp()}
	}
	eq := p.expect(token.EQUALS, "expected `=` in functor binding")
	return ast.FunctorBind{
		FunId: funid, LParen: lparen, ParamId: paramId, ParamColon: paramColon,
		ParamSig: paramSig, ParamSpec: paramSpec, RParen: rparen, Result: result,
		Equal: eq, Body: p.parseStrExp(),
	}
}
