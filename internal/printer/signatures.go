package printer

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/doc"
)

func (p *printer) printSpec(s ast.Spec, indent int) doc.Doc {
	switch sp := s.(type) {
	case *ast.SpecVal:
		return p.printSpecVal(sp, indent)
	case *ast.SpecType:
		return p.printSpecType(sp, indent)
	case *ast.SpecTypeAbbrev:
		return p.printSpecTypeAbbrev(sp, indent)
	case *ast.SpecEqtype:
		return p.printSpecEqtype(sp, indent)
	case *ast.SpecDatatype:
		return p.printSpecDatatype(sp, indent)
	case *ast.SpecReplicDatatype:
		return p.printSpecReplicDatatype(sp, indent)
	case *ast.SpecException:
		return p.printSpecException(sp, indent)
	case *ast.SpecStructure:
		return p.printSpecStructure(sp, indent)
	case *ast.SpecInclude:
		return p.printSpecInclude(sp, indent)
	case *ast.SpecSharing:
		return p.printSpecSharing(sp, indent)
	case *ast.SpecSeq:
		return p.printSpecSeq(sp, indent)
	default:
		return p.placeholder("spec")
	}
}

func (p *printer) printSpecValBind(b ast.SpecValBind, indent int) doc.Doc {
	header := doc.Concat(p.tok(b.Name, indent), sp(), p.tok(b.Colon, indent))
	return p.headerBodyDoc(header, p.printTy(b.Ty, indent+p.cfg.IndentWidth))
}

func (p *printer) printSpecVal(s *ast.SpecVal, indent int) doc.Doc {
	kw := doc.Concat(p.tok(s.Val, indent), sp())
	return bindGroup(p, kw, s.Binds, indent, (*printer).printSpecValBind)
}

func (p *printer) printSyntaxSeqNamed(n ast.SyntaxSeqNamed, indent int) doc.Doc {
	return doc.Concat(p.printTyVarSeq(n.TyVars, indent), p.tok(n.Name, indent))
}

func (p *printer) printSpecType(s *ast.SpecType, indent int) doc.Doc {
	kw := doc.Concat(p.tok(s.Type, indent), sp())
	return bindGroup(p, kw, s.Binds, indent, (*printer).printSyntaxSeqNamed)
}

func (p *printer) printSpecTypeAbbrev(s *ast.SpecTypeAbbrev, indent int) doc.Doc {
	kw := doc.Concat(p.tok(s.Type, indent), sp())
	return bindGroup(p, kw, s.Binds, indent, (*printer).printTypeBind)
}

func (p *printer) printSpecEqtype(s *ast.SpecEqtype, indent int) doc.Doc {
	kw := doc.Concat(p.tok(s.Eqtype, indent), sp())
	return bindGroup(p, kw, s.Binds, indent, (*printer).printSyntaxSeqNamed)
}

func (p *printer) printSpecDatatype(s *ast.SpecDatatype, indent int) doc.Doc {
	kw := doc.Concat(p.tok(s.Datatype, indent), sp())
	return bindGroup(p, kw, s.Binds, indent, (*printer).printDatatypeBind)
}

func (p *printer) printSpecReplicDatatype(s *ast.SpecReplicDatatype, indent int) doc.Doc {
	return doc.Concat(
		p.tok(s.Datatype, indent), sp(), p.tok(s.Name, indent), sp(),
		p.tok(s.Equal, indent), sp(), p.tok(s.EqDatatype, indent), sp(),
		p.printLongIdent(s.LongId, indent),
	)
}

func (p *printer) printSpecException(s *ast.SpecException, indent int) doc.Doc {
	kw := doc.Concat(p.tok(s.Exception, indent), sp())
	return bindGroup(p, kw, s.Binds, indent, (*printer).printConBind)
}

func (p *printer) printSpecStructureBind(b ast.SpecStructureBind, indent int) doc.Doc {
	header := doc.Concat(p.tok(b.Name, indent), sp(), p.tok(b.Colon, indent))
	return p.headerBodyDoc(header, p.printSigExp(b.SigExp, indent+p.cfg.IndentWidth))
}

func (p *printer) printSpecStructure(s *ast.SpecStructure, indent int) doc.Doc {
	kw := doc.Concat(p.tok(s.Structure, indent), sp())
	return bindGroup(p, kw, s.Binds, indent, (*printer).printSpecStructureBind)
}

func (p *printer) printSpecInclude(s *ast.SpecInclude, indent int) doc.Doc {
	if s.SigExp != nil {
		return doc.Group(doc.Concat(p.tok(s.Include, indent), sp(), p.printSigExp(s.SigExp, indent)))
	}
	out := p.tok(s.Include, indent)
	for _, n := range s.Names {
		out = doc.Concat(out, sp(), p.tok(n, indent))
	}
	return doc.Group(out)
}

func (p *printer) printSpecSharing(s *ast.SpecSharing, indent int) doc.Doc {
	out := p.tok(s.Sharing, indent)
	if s.Type != nil {
		out = doc.Concat(out, sp(), p.tok(*s.Type, indent))
	}
	out = doc.Concat(out, sp(), p.printLongIdent(s.LongIds[0], indent))
	for i, id := range s.LongIds[1:] {
		out = doc.Concat(out, sp(), p.tok(s.Equals[i], indent), sp(), p.printLongIdent(id, indent))
	}
	return doc.Group(out)
}

func (p *printer) printSpecSeq(s *ast.SpecSeq, indent int) doc.Doc {
	if len(s.Specs) == 0 {
		return doc.Empty()
	}
	out := p.printSpec(s.Specs[0], indent)
	for i := 1; i < len(s.Specs); i++ {
		if i-1 < len(s.Semis) && s.Semis[i-1] != nil {
			out = doc.Beside(out, p.tok(*s.Semis[i-1], indent))
		}
		out = doc.AboveOrSpace(out, p.printSpec(s.Specs[i], indent))
	}
	return out
}

func (p *printer) printSigExp(s ast.SigExp, indent int) doc.Doc {
	switch se := s.(type) {
	case *ast.SigExpId:
		return p.tok(se.Name, indent)
	case *ast.SigExpSig:
		bodyIndent := indent + p.cfg.IndentWidth
		header := p.tok(se.Sig, indent)
		body := p.printSpec(se.Spec, bodyIndent)
		inner := doc.AboveOrSpace(header, doc.Indent(p.cfg.IndentWidth, body))
		inner = doc.AboveOrSpace(inner, p.tok(se.End, indent))
		return doc.Break(inner)
	case *ast.SigExpWhereType:
		header := doc.Concat(p.printSigExp(se.SigExp, indent), sp(), p.tok(se.Where, indent), sp(), p.tok(se.Type, indent), sp(), p.printTyVarSeq(se.TyVars, indent), p.printLongIdent(se.LongId, indent), sp(), p.tok(se.Equal, indent))
		return p.headerBodyDoc(header, p.printTy(se.Ty, indent+p.cfg.IndentWidth))
	default:
		return p.placeholder("sigexp")
	}
}

func (p *printer) printSignatureBind(b ast.SignatureBind, indent int) doc.Doc {
	header := doc.Concat(p.tok(b.Name, indent), sp(), p.tok(b.Equal, indent))
	return p.headerBodyDoc(header, p.printSigExp(b.SigExp, indent+p.cfg.IndentWidth))
}

func (p *printer) printSignatureDec(d *ast.SignatureDec, indent int) doc.Doc {
	kw := doc.Concat(p.tok(d.Signature, indent), sp())
	return bindGroup(p, kw, d.Binds, indent, (*printer).printSignatureBind)
}
