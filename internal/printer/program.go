package printer

import (
	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/doc"
)

func (p *printer) printAst(a *ast.Ast) doc.Doc {
	if len(a.Items) == 0 {
		return doc.Empty()
	}
	out := p.printTopDecItem(a.Items[0])
	for _, item := range a.Items[1:] {
		out = doc.Beside(out, doc.Beside(doc.Text("\n\n"), p.printTopDecItem(item)))
	}
	return out
}

func (p *printer) printTopDecItem(item ast.TopDecItem) doc.Doc {
	d := p.printTopDec(item.Dec, 0)
	if item.Semi != nil {
		d = doc.Beside(d, p.tok(*item.Semi, 0))
	}
	return d
}

func (p *printer) printTopDec(d ast.TopDec, indent int) doc.Doc {
	switch td := d.(type) {
	case *ast.StrDecStructure:
		return p.printStrDecStructure(td, indent)
	case *ast.StrDecLocal:
		return p.printStrDecLocal(td, indent)
	case *ast.StrDecCore:
		return p.printDec(td.Dec, indent)
	case *ast.StrDecSeq:
		return p.printStrDecSeq(td, indent)
	case *ast.SignatureDec:
		return p.printSignatureDec(td, indent)
	case *ast.FunctorDec:
		return p.printFunctorDec(td, indent)
	default:
		return p.placeholder("topdec")
	}
}
