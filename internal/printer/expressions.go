package printer

import (
	"strings"

	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/doc"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

func (p *printer) printExp(e ast.Exp, indent int) doc.Doc {
	switch exp := e.(type) {
	case *ast.ExpConst:
		return p.tok(exp.Tok, indent)
	case *ast.ExpUnit:
		return doc.Concat(p.tok(exp.LParen, indent), p.tok(exp.RParen, indent))
	case *ast.ExpId:
		return p.printOpLongIdent(exp.Op, exp.LongId, indent)
	case *ast.ExpParen:
		return doc.Concat(p.tok(exp.LParen, indent), p.printExp(exp.Inner, indent), p.tok(exp.RParen, indent))
	case *ast.ExpTuple:
		return p.printExpTuple(exp, indent)
	case *ast.ExpSeq:
		return p.printExpSeqExp(exp, indent)
	case *ast.ExpList:
		return p.printExpList(exp, indent)
	case *ast.ExpRecord:
		return p.printExpRecord(exp, indent)
	case *ast.ExpSelector:
		return doc.Concat(p.tok(exp.Hash, indent), p.tok(exp.Label, indent))
	case *ast.ExpApp:
		return doc.Group(doc.Concat(p.printExp(exp.Fn, indent), sp(), p.printExp(exp.Arg, indent)))
	case *ast.ExpInfix:
		return doc.Group(doc.Concat(p.printExp(exp.Left, indent), sp(), p.tok(exp.Op, indent), sp(), p.printExp(exp.Right, indent)))
	case *ast.ExpAndAlso:
		return doc.Group(doc.Concat(p.printExp(exp.Left, indent), sp(), p.tok(exp.AndAlso, indent), sp(), p.printExp(exp.Right, indent)))
	case *ast.ExpOrElse:
		return doc.Group(doc.Concat(p.printExp(exp.Left, indent), sp(), p.tok(exp.OrElse, indent), sp(), p.printExp(exp.Right, indent)))
	case *ast.ExpTyped:
		return doc.Group(doc.Concat(p.printExp(exp.Inner, indent), doc.Text(" : "), p.printTy(exp.Ty, indent)))
	case *ast.ExpIf:
		return p.printExpIf(exp, indent)
	case *ast.ExpWhile:
		return p.printExpWhile(exp, indent)
	case *ast.ExpRaise:
		return doc.Group(doc.Concat(p.tok(exp.Raise, indent), sp(), p.printExp(exp.Exn, indent)))
	case *ast.ExpHandle:
		return p.printExpHandle(exp, indent)
	case *ast.ExpCase:
		return p.printExpCase(exp, indent)
	case *ast.ExpFn:
		return p.printExpFn(exp, indent)
	case *ast.ExpLet:
		return p.printExpLet(exp, indent)
	default:
		return p.placeholder("exp")
	}
}

func (p *printer) printExpTuple(e *ast.ExpTuple, indent int) doc.Doc {
	elems := e.Elems.All()
	docs := make([]doc.Doc, len(elems))
	for i, x := range elems {
		docs[i] = p.printExp(x, indent)
	}
	return doc.Sequence(p.tok(e.LParen, indent), p.tok(e.RParen, indent), ",", docs)
}

// printExpSeq renders a ";"-separated sequence of expressions, used for a
// let body.
func (p *printer) printExpSeq(seq ast.Seq[ast.Exp], indent int) doc.Doc {
	return joinSeq(seq,
		func(e ast.Exp) doc.Doc { return p.printExp(e, indent) },
		func(semi token.Token) doc.Doc { return doc.Beside(p.tok(semi, indent), sp()) },
	)
}

func (p *printer) printExpSeqExp(e *ast.ExpSeq, indent int) doc.Doc {
	elems := e.Elems.All()
	docs := make([]doc.Doc, len(elems))
	for i, x := range elems {
		docs[i] = p.printExp(x, indent)
	}
	return doc.Sequence(p.tok(e.LParen, indent), p.tok(e.RParen, indent), ";", docs)
}

func (p *printer) printExpList(e *ast.ExpList, indent int) doc.Doc {
	docs := make([]doc.Doc, len(e.Elems))
	for i, x := range e.Elems {
		docs[i] = p.printExp(x, indent)
	}
	return doc.Sequence(p.tok(e.LBrack, indent), p.tok(e.RBrack, indent), ",", docs)
}

func (p *printer) printExpRecordField(f ast.ExpRecordField, indent int) doc.Doc {
	return doc.Concat(p.tok(f.Label, indent), doc.Text(" = "), p.printExp(f.Exp, indent))
}

func (p *printer) printExpRecord(e *ast.ExpRecord, indent int) doc.Doc {
	fields := e.Fields.All()
	docs := make([]doc.Doc, len(fields))
	for i, f := range fields {
		docs[i] = p.printExpRecordField(f, indent)
	}
	return doc.Sequence(p.tok(e.LBrace, indent), p.tok(e.RBrace, indent), ",", docs)
}

// printExpIf always spans multiple lines once broken; scenario A of
// spec.md §8 shows this even for a condition that would otherwise fit flat.
func (p *printer) printExpIf(e *ast.ExpIf, indent int) doc.Doc {
	bodyIndent := indent + p.cfg.IndentWidth
	header := doc.Group(doc.Concat(p.tok(e.If, indent), sp(), p.printExp(e.Cond, indent), sp(), p.tok(e.Then, indent)))
	conseq := p.printExp(e.Conseq, bodyIndent)
	part1 := doc.Indent(p.cfg.IndentWidth, doc.AboveOrSpace(header, conseq))
	alt := p.printExp(e.Alt, bodyIndent)
	part2 := doc.Indent(p.cfg.IndentWidth, doc.AboveOrSpace(p.tok(e.Else, indent), alt))
	return doc.Break(doc.AboveOrSpace(part1, part2))
}

func (p *printer) printExpWhile(e *ast.ExpWhile, indent int) doc.Doc {
	bodyIndent := indent + p.cfg.IndentWidth
	header := doc.Group(doc.Concat(p.tok(e.While, indent), sp(), p.printExp(e.Cond, indent), sp(), p.tok(e.Do, indent)))
	body := p.printExp(e.Body, bodyIndent)
	return doc.Break(doc.Indent(p.cfg.IndentWidth, doc.AboveOrSpace(header, body)))
}

// printMatchKw renders kw immediately followed by the match's first clause,
// then any remaining clauses each preceded by a preserved "|" two spaces
// left of the clause body's indent (spec.md §4.5).
func (p *printer) printMatchKw(kw doc.Doc, m ast.Seq[ast.Match], indent int) doc.Doc {
	clauseIndent := indent + p.cfg.IndentWidth
	pipeIndent := clauseIndent - 2
	if pipeIndent < indent {
		pipeIndent = indent
	}
	d := p.printOneMatchBody(kw, m.First, indent, clauseIndent)
	for _, tail := range m.Rest {
		pipe := doc.TextTabWidth("\n"+strings.Repeat(" ", pipeIndent), p.cfg.TabWidth)
		pipeKw := doc.Concat(p.tok(tail.Delim, indent), sp())
		clause := p.printOneMatchBody(pipeKw, tail.Item, indent, clauseIndent)
		d = doc.Beside(d, doc.Beside(pipe, clause))
	}
	return doc.Group(d)
}

func (p *printer) printOneMatchBody(kw doc.Doc, m ast.Match, indent, bodyIndent int) doc.Doc {
	header := doc.Concat(kw, p.printPat(m.Pat, indent), sp(), p.tok(m.Arrow, indent))
	body := p.printExp(m.Body, bodyIndent)
	return doc.Indent(p.cfg.IndentWidth, doc.AboveOrSpace(header, body))
}

func (p *printer) printExpCase(e *ast.ExpCase, indent int) doc.Doc {
	kw := doc.Concat(p.tok(e.Case, indent), sp(), p.printExp(e.Scrut, indent), sp(), p.tok(e.Of, indent), sp())
	return p.printMatchKw(kw, e.Match, indent)
}

func (p *printer) printExpFn(e *ast.ExpFn, indent int) doc.Doc {
	kw := doc.Concat(p.tok(e.Fn, indent), sp())
	return p.printMatchKw(kw, e.Match, indent)
}

func (p *printer) printExpHandle(e *ast.ExpHandle, indent int) doc.Doc {
	kw := doc.Concat(p.printExp(e.Inner, indent), sp(), p.tok(e.Handle, indent), sp())
	return p.printMatchKw(kw, e.Match, indent)
}

// printExpLet always spans at least three lines (spec.md §4.5); the "let
// ... in" header may itself render flat only when the bound declaration is
// a single non-sequence declaration.
func (p *printer) printExpLet(e *ast.ExpLet, indent int) doc.Doc {
	bodyIndent := indent + p.cfg.IndentWidth
	header := p.printLetHeader(e.Let, e.Decs, e.In, indent)
	body := p.printExpSeq(e.Body, bodyIndent)
	end := p.tok(e.End, indent)
	inner := doc.AboveOrSpace(header, doc.Indent(p.cfg.IndentWidth, body))
	inner = doc.AboveOrSpace(inner, end)
	return doc.Break(inner)
}

// printLetHeader renders "let <decs> in", grouped flat only when decs is a
// single non-sequence declaration (spec.md §4.5).
func (p *printer) printLetHeader(letTok token.Token, decs []ast.Dec, inTok token.Token, indent int) doc.Doc {
	let := p.tok(letTok, indent)
	in := p.tok(inTok, indent)
	bodyIndent := indent + p.cfg.IndentWidth
	if len(decs) == 1 {
		if _, multi := decs[0].(*ast.DecSeq); !multi {
			decDoc := p.printDec(decs[0], bodyIndent)
			header := doc.Group(doc.Indent(p.cfg.IndentWidth, doc.AboveOrSpace(let, decDoc)))
			return doc.AboveOrBeside(header, doc.Beside(sp(), in))
		}
	}
	decsDoc := p.printDecList(decs, bodyIndent)
	header := doc.AboveOrSpace(let, doc.Indent(p.cfg.IndentWidth, decsDoc))
	return doc.AboveOrSpace(header, in)
}
