package printer

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/doc"
)

func (p *printer) printStrExp(s ast.StrExp, indent int) doc.Doc {
	switch se := s.(type) {
	case *ast.StrExpId:
		return p.printLongIdent(se.LongId, indent)
	case *ast.StrExpStruct:
		bodyIndent := indent + p.cfg.IndentWidth
		header := p.tok(se.Struct, indent)
		body := p.printStrDec(se.StrDec, bodyIndent)
		inner := doc.AboveOrSpace(header, doc.Indent(p.cfg.IndentWidth, body))
		inner = doc.AboveOrSpace(inner, p.tok(se.End, indent))
		return doc.Break(inner)
	case *ast.StrExpConstraint:
		colonText := " : "
		if se.Opaque {
			colonText = " :> "
		}
		return doc.Group(doc.Concat(p.printStrExp(se.StrExp, indent), doc.Text(colonText), p.printSigExp(se.SigExp, indent)))
	case *ast.StrExpFunctorApp:
		bodyIndent := indent + p.cfg.IndentWidth
		var arg doc.Doc
		if se.ArgDec != nil {
			arg = p.printStrDec(se.ArgDec, bodyIndent)
		} else {
			arg = p.printStrExp(se.Arg, bodyIndent)
		}
		return doc.Group(doc.Concat(p.tok(se.FunId, indent), p.tok(se.LParen, indent), arg, p.tok(se.RParen, indent)))
	case *ast.StrExpLet:
		bodyIndent := indent + p.cfg.IndentWidth
		header := doc.AboveOrSpace(p.tok(se.Let, indent), doc.Indent(p.cfg.IndentWidth, p.printStrDec(se.StrDec, bodyIndent)))
		header = doc.AboveOrSpace(header, p.tok(se.In, indent))
		body := p.printStrExp(se.StrExp, bodyIndent)
		inner := doc.AboveOrSpace(header, doc.Indent(p.cfg.IndentWidth, body))
		inner = doc.AboveOrSpace(inner, p.tok(se.End, indent))
		return doc.Break(inner)
	default:
		return p.placeholder("strexp")
	}
}

func (p *printer) printSigConstraint(c *ast.SigConstraint, indent int) doc.Doc {
	if c == nil {
		return doc.Empty()
	}
	text := " : "
	if c.Opaque {
		text = " :> "
	}
	return doc.Concat(doc.Text(text), p.printSigExp(c.SigExp, indent))
}

func (p *printer) printStructureBind(b ast.StructureBind, indent int) doc.Doc {
	header := doc.Concat(p.tok(b.Name, indent), p.printSigConstraint(b.Constraint, indent), sp(), p.tok(b.Equal, indent))
	return p.headerBodyDoc(header, p.printStrExp(b.StrExp, indent+p.cfg.IndentWidth))
}

func (p *printer) printStrDecStructure(d *ast.StrDecStructure, indent int) doc.Doc {
	kw := doc.Concat(p.tok(d.Structure, indent), sp())
	return bindGroup(p, kw, d.Binds, indent, (*printer).printStructureBind)
}

func (p *printer) printStrDecLocal(d *ast.StrDecLocal, indent int) doc.Doc {
	bodyIndent := indent + p.cfg.IndentWidth
	header := doc.AboveOrSpace(p.tok(d.Local, indent), doc.Indent(p.cfg.IndentWidth, p.printStrDec(d.StrDec1, bodyIndent)))
	header = doc.AboveOrSpace(header, p.tok(d.In, indent))
	body := p.printStrDec(d.StrDec2, bodyIndent)
	inner := doc.AboveOrSpace(header, doc.Indent(p.cfg.IndentWidth, body))
	inner = doc.AboveOrSpace(inner, p.tok(d.End, indent))
	return doc.Break(inner)
}

func (p *printer) printStrDec(s ast.StrDec, indent int) doc.Doc {
	switch sd := s.(type) {
	case *ast.StrDecStructure:
		return p.printStrDecStructure(sd, indent)
	case *ast.StrDecLocal:
		return p.printStrDecLocal(sd, indent)
	case *ast.StrDecCore:
		return p.printDec(sd.Dec, indent)
	case *ast.StrDecSeq:
		return p.printStrDecSeq(sd, indent)
	default:
		return p.placeholder("strdec")
	}
}

func (p *printer) printStrDecSeq(d *ast.StrDecSeq, indent int) doc.Doc {
	if len(d.Decs) == 0 {
		return doc.Empty()
	}
	out := p.printStrDec(d.Decs[0], indent)
	for i := 1; i < len(d.Decs); i++ {
		if i-1 < len(d.Semis) && d.Semis[i-1] != nil {
			out = doc.Beside(out, p.tok(*d.Semis[i-1], indent))
		}
		out = doc.AboveOrSpace(out, p.printStrDec(d.Decs[i], indent))
	}
	return out
}

func (p *printer) printFunctorParam(b ast.FunctorBind, indent int) doc.Doc {
	if b.ParamId != nil {
		return doc.Concat(p.tok(*b.ParamId, indent), sp(), p.tok(*b.ParamColon, indent), sp(), p.printSigExp(b.ParamSig, indent))
	}
	return p.printSpec(b.ParamSpec, indent)
}

func (p *printer) printFunctorBind(b ast.FunctorBind, indent int) doc.Doc {
	header := doc.Concat(p.tok(b.FunId, indent), p.tok(b.LParen, indent), p.printFunctorParam(b, indent), p.tok(b.RParen, indent), p.printSigConstraint(b.Result, indent), sp(), p.tok(b.Equal, indent))
	return p.headerBodyDoc(header, p.printStrExp(b.Body, indent+p.cfg.IndentWidth))
}

func (p *printer) printFunctorDec(d *ast.FunctorDec, indent int) doc.Doc {
	kw := doc.Concat(p.tok(d.Functor, indent), sp())
	return bindGroup(p, kw, d.Binds, indent, (*printer).printFunctorBind)
}
