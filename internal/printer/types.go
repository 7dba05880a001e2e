package printer

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/doc"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

func (p *printer) printTy(t ast.Ty, indent int) doc.Doc {
	switch ty := t.(type) {
	case *ast.TyVar:
		return p.tok(ty.Tok, indent)
	case *ast.TyCon:
		return p.printTyCon(ty, indent)
	case *ast.TyParen:
		return doc.Concat(p.tok(ty.LParen, indent), p.printTy(ty.Inner, indent), p.tok(ty.RParen, indent))
	case *ast.TyTuple:
		return p.printTyTuple(ty, indent)
	case *ast.TyRecord:
		return p.printTyRecord(ty, indent)
	case *ast.TyArrow:
		return doc.Group(doc.Concat(p.printTy(ty.Domain, indent), doc.Text(" -> "), p.printTy(ty.Range, indent)))
	default:
		return p.placeholder("ty")
	}
}

func (p *printer) printTyCon(ty *ast.TyCon, indent int) doc.Doc {
	name := p.printLongIdent(ty.Name, indent)
	switch len(ty.Args) {
	case 0:
		return name
	case 1:
		return doc.Group(doc.Concat(p.printTy(ty.Args[0], indent), sp(), name))
	default:
		elems := make([]doc.Doc, len(ty.Args))
		for i, a := range ty.Args {
			elems[i] = p.printTy(a, indent)
		}
		seq := doc.Sequence(p.tok(*ty.Left, indent), p.tok(*ty.Right, indent), ",", elems)
		return doc.Concat(seq, sp(), name)
	}
}

func (p *printer) printTyTuple(t *ast.TyTuple, indent int) doc.Doc {
	d := joinSeq(t.Elems,
		func(e ast.Ty) doc.Doc { return p.printTy(e, indent) },
		func(star token.Token) doc.Doc { return doc.Concat(sp(), p.tok(star, indent), sp()) },
	)
	return doc.Group(d)
}

func (p *printer) printTyRecordField(f ast.TyRecordField, indent int) doc.Doc {
	return doc.Concat(p.tok(f.Label, indent), doc.Text(" : "), p.printTy(f.Ty, indent))
}

func (p *printer) printTyRecord(r *ast.TyRecord, indent int) doc.Doc {
	fields := r.Fields.All()
	docs := make([]doc.Doc, len(fields))
	for i, f := range fields {
		docs[i] = p.printTyRecordField(f, indent)
	}
	return doc.Sequence(p.tok(r.LBrace, indent), p.tok(r.RBrace, indent), ",", docs)
}
