package parser

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// parseAst parses a full compilation unit: a sequence of top-level
// declarations, each with an optional trailing ";" retained verbatim
// (spec.md §4.2 item 6).
func (p *Parser) parseAst() *ast.Ast {
	var items []ast.TopDecItem
	for p.failed() == nil && !p.at(token.EOF) {
		if p.at(token.SEMICOLON) {
			semi := p.advance()
			items = append(items, ast.TopDecItem{Dec: &ast.StrDecCore{Dec: &ast.DecEmpty{Semi: &semi}}})
			continue
		}
		dec := p.parseTopDec()
		if p.failed() != nil {
			break
		}
		var semi *token.Token
		if p.at(token.SEMICOLON) {
			s := p.advance()
			semi = &s
		}
		items = append(items, ast.TopDecItem{Dec: dec, Semi: semi})
	}
	return &ast.Ast{Items: items}
}

func (p *Parser) parseTopDec() ast.TopDec {
	switch {
	case p.at(token.SIGNATURE):
		return p.parseSignatureDec()
	case p.at(token.FUNCTOR):
		return p.parseFunctorDec()
	case p.at(token.STRUCTURE):
		return p.parseStrDecStructure()
	case p.at(token.LOCAL):
		return p.parseStrDecLocal()
	case p.isDecStart():
		return &ast.StrDecCore{Dec: p.parseOneDec()}
	default:
		p.fail("expected top-level declaration", "expected a core declaration, `structure`, `signature`, `functor`, or `local`")
		return &ast.StrDecCore{Dec: &ast.DecEmpty{}}
	}
}
