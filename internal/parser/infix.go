package parser

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/fixity"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// infixItem is one element of the flat atom/operator sequence collected
// before precedence climbing (spec.md §4.2 item 1). The sequence strictly
// alternates atom, operator, atom, operator, ..., atom.
type infixItem struct {
	atom   any // ast.Exp or ast.Pat, valid when isOp == false
	isOp   bool
	opName string
	opTok  token.Token
}

// climb re-brackets a flat alternating atom/operator sequence into a tree
// built by combine(), using precedence climbing against fx. Ties between
// two operators of equal precedence bind according to their shared
// associativity; a tie between opposite associativities is reported through
// fail (spec.md §4.2 item 1).
func climb(items []infixItem, fx *fixity.Env, combine func(left, right any, op token.Token) any, fail func(what, explain string)) any {
	pos := 0
	var parseLevel func(minPrec int, parent *fixity.Fixity) any
	parseLevel = func(minPrec int, parent *fixity.Fixity) any {
		left := items[pos].atom
		pos++
		for pos < len(items) {
			opItem := items[pos]
			f, ok := fx.Lookup(opItem.opName)
			if !ok || f.IsNonfix() || f.Precedence < minPrec {
				break
			}
			if parent != nil && f.Precedence == parent.Precedence && f.Assoc != parent.Assoc {
				fail("ambiguous fixity", "mixing left- and right-associative operators at the same precedence requires explicit parentheses")
				return left
			}
			opTok := opItem.opTok
			pos++
			nextMin := f.Precedence + 1
			if f.Assoc == fixity.Right {
				nextMin = f.Precedence
			}
			right := parseLevel(nextMin, &f)

			if pos < len(items) {
				nf, ok := fx.Lookup(items[pos].opName)
				if ok && !nf.IsNonfix() && nf.Precedence == f.Precedence && nf.Assoc != f.Assoc {
					fail("ambiguous fixity", "mixing left- and right-associative operators at the same precedence requires explicit parentheses")
					return left
				}
			}
			left = combine(left, right, opTok)
		}
		return left
	}
	return parseLevel(0, nil)
}

// resolveExpInfix re-brackets a flattened expression/operator sequence.
func (p *Parser) resolveExpInfix(items []infixItem) ast.Exp {
	if len(items) == 1 {
		return items[0].atom.(ast.Exp)
	}
	result := climb(items, p.fx, func(l, r any, op token.Token) any {
		return &ast.ExpInfix{Left: l.(ast.Exp), Op: op, Right: r.(ast.Exp)}
	}, p.fail)
	return result.(ast.Exp)
}

// resolvePatInfix is the pattern-level analogue, producing PatInfix nodes
// (used for infixed constructors such as `h :: t`).
func (p *Parser) resolvePatInfix(items []infixItem) ast.Pat {
	if len(items) == 1 {
		return items[0].atom.(ast.Pat)
	}
	result := climb(items, p.fx, func(l, r any, op token.Token) any {
		return &ast.PatInfix{Left: l.(ast.Pat), Op: op, Right: r.(ast.Pat)}
	}, p.fail)
	return result.(ast.Pat)
}
