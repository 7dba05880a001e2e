package printer

import (
	"strings"

	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/doc"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

func (p *printer) printDec(dec ast.Dec, indent int) doc.Doc {
	switch d := dec.(type) {
	case *ast.DecVal:
		return p.printDecVal(d, indent)
	case *ast.DecFun:
		return p.printDecFun(d, indent)
	case *ast.DecType:
		return p.printDecType(d, indent)
	case *ast.DecDatatype:
		return p.printDecDatatype(d, indent)
	case *ast.DecAbstype:
		return p.printDecAbstype(d, indent)
	case *ast.DecException:
		return p.printDecException(d, indent)
	case *ast.DecLocal:
		return p.printDecLocal(d, indent)
	case *ast.DecOpen:
		return p.printDecOpen(d, indent)
	case *ast.FixityDirective:
		return p.printFixityDirective(d, indent)
	case *ast.DecSeq:
		return p.printDecSeq(d, indent)
	case *ast.DecEmpty:
		return p.printDecEmpty(d, indent)
	default:
		return p.placeholder("dec")
	}
}

// printDecList lays out a plain sequence of declarations (a let/local/
// abstype body), one after another.
func (p *printer) printDecList(decs []ast.Dec, indent int) doc.Doc {
	if len(decs) == 0 {
		return doc.Empty()
	}
	d := p.printDec(decs[0], indent)
	for _, dec := range decs[1:] {
		d = doc.AboveOrSpace(d, p.printDec(dec, indent))
	}
	return d
}

func (p *printer) printValBind(v ast.ValBind, indent int) doc.Doc {
	header := doc.Empty()
	if v.Rec != nil {
		header = doc.Concat(p.tok(*v.Rec, indent), sp())
	}
	header = doc.Concat(header, p.printPat(v.Pat, indent), sp(), p.tok(v.Equal, indent))
	body := p.printExp(v.Exp, indent+p.cfg.IndentWidth)
	return p.headerBodyDoc(header, body)
}

func (p *printer) printDecVal(d *ast.DecVal, indent int) doc.Doc {
	kw := doc.Concat(p.tok(d.Val, indent), sp(), p.printTyVarSeq(d.TyVars, indent))
	return bindGroup(p, kw, d.Binds, indent, (*printer).printValBind)
}

func (p *printer) printFunHeader(h ast.FunHeader, indent int) doc.Doc {
	nameDoc := doc.Empty()
	if h.Op != nil {
		nameDoc = doc.Concat(p.tok(*h.Op, indent), sp())
	}
	nameDoc = doc.Concat(nameDoc, p.tok(h.Name, indent))
	if !h.Infix {
		out := nameDoc
		for _, a := range h.Args {
			out = doc.Concat(out, sp(), p.printPat(a, indent))
		}
		return out
	}
	inner := doc.Concat(p.printPat(h.Args[0], indent), sp(), nameDoc, sp(), p.printPat(h.Args[1], indent))
	if h.LParen != nil {
		inner = doc.Concat(p.tok(*h.LParen, indent), inner, p.tok(*h.RParen, indent))
	}
	for _, a := range h.Args[2:] {
		inner = doc.Concat(inner, sp(), p.printPat(a, indent))
	}
	return inner
}

func (p *printer) printFunClause(c ast.FunClause, indent int) doc.Doc {
	header := p.printFunHeader(c.Header, indent)
	if c.Colon != nil {
		header = doc.Concat(header, doc.Text(" : "), p.printTy(c.Ty, indent))
	}
	header = doc.Concat(header, sp(), p.tok(c.Equal, indent))
	body := p.printExp(c.Exp, indent+p.cfg.IndentWidth)
	return p.headerBodyDoc(header, body)
}

// printFunBind joins a fun binding's clauses with the same "| two spaces
// left of clause body" rule used for match arms (spec.md §4.5).
func (p *printer) printFunBind(fb ast.FunBind, indent int) doc.Doc {
	clauseIndent := indent + p.cfg.IndentWidth
	pipeIndent := clauseIndent - 2
	if pipeIndent < indent {
		pipeIndent = indent
	}
	d := p.printFunClause(fb.Clauses.First, indent)
	for _, tail := range fb.Clauses.Rest {
		pipe := doc.TextTabWidth("\n"+strings.Repeat(" ", pipeIndent), p.cfg.TabWidth)
		clause := doc.Concat(p.tok(tail.Delim, indent), sp(), p.printFunClause(tail.Item, indent))
		d = doc.Beside(d, doc.Beside(pipe, clause))
	}
	return doc.Group(d)
}

func (p *printer) printDecFun(d *ast.DecFun, indent int) doc.Doc {
	kw := doc.Concat(p.tok(d.Fun, indent), sp(), p.printTyVarSeq(d.TyVars, indent))
	return bindGroup(p, kw, d.Binds, indent, (*printer).printFunBind)
}

func (p *printer) printTypeBind(tb ast.TypeBind, indent int) doc.Doc {
	header := doc.Concat(p.printTyVarSeq(tb.TyVars, indent), p.tok(tb.Name, indent), sp(), p.tok(tb.Equal, indent))
	body := p.printTy(tb.Ty, indent+p.cfg.IndentWidth)
	return p.headerBodyDoc(header, body)
}

func (p *printer) printDecType(d *ast.DecType, indent int) doc.Doc {
	kw := doc.Concat(p.tok(d.Type, indent), sp())
	return bindGroup(p, kw, d.Binds, indent, (*printer).printTypeBind)
}

func (p *printer) printConBind(cb ast.ConBind, indent int) doc.Doc {
	name := doc.Empty()
	if cb.Op != nil {
		name = doc.Concat(p.tok(*cb.Op, indent), sp())
	}
	name = doc.Concat(name, p.tok(cb.Name, indent))
	if cb.Of == nil {
		return name
	}
	return doc.Group(doc.Concat(name, sp(), p.tok(*cb.Of, indent), sp(), p.printTy(cb.Ty, indent)))
}

func (p *printer) printDatatypeBind(db ast.DatatypeBind, indent int) doc.Doc {
	header := doc.Concat(p.printTyVarSeq(db.TyVars, indent), p.tok(db.Name, indent), sp(), p.tok(db.Equal, indent), sp())
	clauseIndent := indent + p.cfg.IndentWidth
	pipeIndent := clauseIndent - 2
	if pipeIndent < indent {
		pipeIndent = indent
	}
	d := doc.Concat(header, p.printConBind(db.Cons.First, indent))
	for _, tail := range db.Cons.Rest {
		pipe := doc.TextTabWidth("\n"+strings.Repeat(" ", pipeIndent), p.cfg.TabWidth)
		clause := doc.Concat(p.tok(tail.Delim, indent), sp(), p.printConBind(tail.Item, indent))
		d = doc.Beside(d, doc.Beside(pipe, clause))
	}
	return doc.Group(d)
}

func (p *printer) printWithType(wt *ast.WithTypeClause, indent int) doc.Doc {
	kw := doc.Concat(p.tok(wt.Withtype, indent), sp())
	return bindGroup(p, kw, wt.Binds, indent, (*printer).printTypeBind)
}

func (p *printer) printDecDatatype(d *ast.DecDatatype, indent int) doc.Doc {
	if d.ReplicName != nil {
		return doc.Concat(
			p.tok(d.Datatype, indent), sp(), p.tok(*d.ReplicName, indent), sp(),
			p.tok(*d.ReplicEqual, indent), sp(), p.tok(*d.ReplicDatatype, indent), sp(),
			p.printLongIdent(*d.ReplicOf, indent),
		)
	}
	kw := doc.Concat(p.tok(d.Datatype, indent), sp())
	main := bindGroup(p, kw, d.Binds, indent, (*printer).printDatatypeBind)
	if d.WithType == nil {
		return main
	}
	return doc.AboveOrSpace(main, p.printWithType(d.WithType, indent))
}

func (p *printer) printDecAbstype(d *ast.DecAbstype, indent int) doc.Doc {
	kw := doc.Concat(p.tok(d.Abstype, indent), sp())
	header := bindGroup(p, kw, d.Binds, indent, (*printer).printDatatypeBind)
	if d.WithType != nil {
		header = doc.AboveOrSpace(header, p.printWithType(d.WithType, indent))
	}
	bodyIndent := indent + p.cfg.IndentWidth
	withHeader := doc.AboveOrSpace(header, p.tok(d.With, indent))
	body := p.printDecList(d.Decs, bodyIndent)
	inner := doc.AboveOrSpace(withHeader, doc.Indent(p.cfg.IndentWidth, body))
	inner = doc.AboveOrSpace(inner, p.tok(d.End, indent))
	return doc.Break(inner)
}

func (p *printer) printExBind(eb ast.ExBind, indent int) doc.Doc {
	name := doc.Empty()
	if eb.Op != nil {
		name = doc.Concat(p.tok(*eb.Op, indent), sp())
	}
	name = doc.Concat(name, p.tok(eb.Name, indent))
	if eb.Equal != nil {
		d := doc.Concat(name, sp(), p.tok(*eb.Equal, indent), sp())
		if eb.EqOp != nil {
			d = doc.Concat(d, p.tok(*eb.EqOp, indent), sp())
		}
		return doc.Concat(d, p.printLongIdent(*eb.LongId, indent))
	}
	if eb.Of == nil {
		return name
	}
	return doc.Group(doc.Concat(name, sp(), p.tok(*eb.Of, indent), sp(), p.printTy(eb.Ty, indent)))
}

func (p *printer) printDecException(d *ast.DecException, indent int) doc.Doc {
	kw := doc.Concat(p.tok(d.Exception, indent), sp())
	return bindGroup(p, kw, d.Binds, indent, (*printer).printExBind)
}

// printDecLocal, like printExpLet, always spans at least three lines.
func (p *printer) printDecLocal(d *ast.DecLocal, indent int) doc.Doc {
	bodyIndent := indent + p.cfg.IndentWidth
	header := doc.AboveOrSpace(p.tok(d.Local, indent), doc.Indent(p.cfg.IndentWidth, p.printDecList(d.Decs1, bodyIndent)))
	header = doc.AboveOrSpace(header, p.tok(d.In, indent))
	body := p.printDecList(d.Decs2, bodyIndent)
	inner := doc.AboveOrSpace(header, doc.Indent(p.cfg.IndentWidth, body))
	inner = doc.AboveOrSpace(inner, p.tok(d.End, indent))
	return doc.Break(inner)
}

func (p *printer) printDecOpen(d *ast.DecOpen, indent int) doc.Doc {
	body := p.printLongIdent(d.LongIds[0], indent)
	for _, id := range d.LongIds[1:] {
		body = doc.Concat(body, sp(), p.printLongIdent(id, indent))
	}
	return doc.Group(doc.Concat(p.tok(d.Open, indent), sp(), body))
}

func (p *printer) printFixityDirective(d *ast.FixityDirective, indent int) doc.Doc {
	out := p.tok(d.Keyword, indent)
	if d.Level != nil {
		out = doc.Concat(out, sp(), p.tok(*d.Level, indent))
	}
	for _, id := range d.Ids {
		out = doc.Concat(out, sp(), p.tok(id, indent))
	}
	return doc.Group(out)
}

func (p *printer) printDecSeq(d *ast.DecSeq, indent int) doc.Doc {
	if len(d.Decs) == 0 {
		return doc.Empty()
	}
	out := p.printDec(d.Decs[0], indent)
	for i := 1; i < len(d.Decs); i++ {
		if i-1 < len(d.Semis) && d.Semis[i-1] != nil {
			out = doc.Beside(out, p.tok(*d.Semis[i-1], indent))
		}
		out = doc.AboveOrSpace(out, p.printDec(d.Decs[i], indent))
	}
	return out
}

func (p *printer) printDecEmpty(d *ast.DecEmpty, indent int) doc.Doc {
	if d.Semi == nil {
		return doc.Empty()
	}
	return p.tok(*d.Semi, indent)
}

// printTyVarSeq renders an optional type-variable prefix with its own
// trailing space, or nothing when empty.
func (p *printer) printTyVarSeq(ts ast.SyntaxSeq[token.Token], indent int) doc.Doc {
	switch ts.Kind {
	case ast.SeqEmpty:
		return doc.Empty()
	case ast.SeqOne:
		return doc.Concat(p.tok(ts.One, indent), sp())
	default:
		docs := make([]doc.Doc, len(ts.Elems))
		for i, e := range ts.Elems {
			docs[i] = p.tok(e, indent)
		}
		return doc.Concat(doc.Sequence(p.tok(ts.Left, indent), p.tok(ts.Right, indent), ",", docs), sp())
	}
}
