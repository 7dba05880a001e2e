package printer

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/doc"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

func (p *printer) printPat(pat ast.Pat, indent int) doc.Doc {
	switch pt := pat.(type) {
	case *ast.PatWildcard:
		return p.tok(pt.Tok, indent)
	case *ast.PatConst:
		return p.tok(pt.Tok, indent)
	case *ast.PatUnit:
		return doc.Concat(p.tok(pt.LParen, indent), p.tok(pt.RParen, indent))
	case *ast.PatId:
		return p.printOpLongIdent(pt.Op, pt.LongId, indent)
	case *ast.PatParen:
		return doc.Concat(p.tok(pt.LParen, indent), p.printPat(pt.Inner, indent), p.tok(pt.RParen, indent))
	case *ast.PatTuple:
		return p.printPatTuple(pt, indent)
	case *ast.PatList:
		return p.printPatList(pt, indent)
	case *ast.PatRecord:
		return p.printPatRecord(pt, indent)
	case *ast.PatCon:
		return p.printPatCon(pt, indent)
	case *ast.PatTyped:
		return doc.Group(doc.Concat(p.printPat(pt.Inner, indent), doc.Text(" : "), p.printTy(pt.Ty, indent)))
	case *ast.PatAs:
		return p.printPatAs(pt, indent)
	case *ast.PatInfix:
		return doc.Group(doc.Concat(p.printPat(pt.Left, indent), sp(), p.tok(pt.Op, indent), sp(), p.printPat(pt.Right, indent)))
	default:
		return p.placeholder("pat")
	}
}

func (p *printer) printOpLongIdent(op *token.Token, id ast.LongIdent, indent int) doc.Doc {
	if op == nil {
		return p.printLongIdent(id, indent)
	}
	return doc.Concat(p.tok(*op, indent), sp(), p.printLongIdent(id, indent))
}

func (p *printer) printPatTuple(pt *ast.PatTuple, indent int) doc.Doc {
	elems := pt.Elems.All()
	docs := make([]doc.Doc, len(elems))
	for i, e := range elems {
		docs[i] = p.printPat(e, indent)
	}
	return doc.Sequence(p.tok(pt.LParen, indent), p.tok(pt.RParen, indent), ",", docs)
}

func (p *printer) printPatList(pt *ast.PatList, indent int) doc.Doc {
	docs := make([]doc.Doc, len(pt.Elems))
	for i, e := range pt.Elems {
		docs[i] = p.printPat(e, indent)
	}
	return doc.Sequence(p.tok(pt.LBrack, indent), p.tok(pt.RBrack, indent), ",", docs)
}

func (p *printer) printPatRecordField(f ast.PatRecordField, indent int) doc.Doc {
	if f.Equal == nil {
		return p.tok(f.Label, indent)
	}
	return doc.Concat(p.tok(f.Label, indent), doc.Text(" = "), p.printPat(f.Pat, indent))
}

func (p *printer) printPatRecord(pt *ast.PatRecord, indent int) doc.Doc {
	docs := make([]doc.Doc, 0, len(pt.Fields)+1)
	for _, f := range pt.Fields {
		docs = append(docs, p.printPatRecordField(f, indent))
	}
	if pt.Flex != nil {
		docs = append(docs, p.tok(*pt.Flex, indent))
	}
	return doc.Sequence(p.tok(pt.LBrace, indent), p.tok(pt.RBrace, indent), ",", docs)
}

func (p *printer) printPatCon(pt *ast.PatCon, indent int) doc.Doc {
	name := p.printOpLongIdent(pt.Op, pt.LongId, indent)
	if pt.Arg == nil {
		return name
	}
	return doc.Group(doc.Concat(name, sp(), p.printPat(pt.Arg, indent)))
}

func (p *printer) printPatAs(pt *ast.PatAs, indent int) doc.Doc {
	d := doc.Empty()
	if pt.Op != nil {
		d = doc.Concat(p.tok(*pt.Op, indent), sp())
	}
	d = doc.Concat(d, p.tok(pt.Name, indent))
	if pt.Colon != nil {
		d = doc.Concat(d, doc.Text(" : "), p.printTy(pt.Ty, indent))
	}
	return doc.Group(doc.Concat(d, sp(), p.tok(pt.As, indent), sp(), p.printPat(pt.Inner, indent)))
}
