package ast

import "github.com/go-smlfmt/smlfmt/internal/token"

// TopDec is any top-level item: a core declaration, a structure-level
// declaration, a signature declaration, or a functor declaration, each
// optionally followed by a ";".
type TopDec interface{ isTopDec() }

func (*StrDecStructure) isTopDec() {}
func (*StrDecLocal) isTopDec()     {}
func (*StrDecCore) isTopDec()      {}
func (*StrDecSeq) isTopDec()       {}
func (*SignatureDec) isTopDec()    {}
func (*FunctorDec) isTopDec()      {}

// TopDecItem is one top-level declaration together with its optional
// trailing ";", preserved so the printer can decide whether to keep it.
type TopDecItem struct {
	Dec  TopDec
	Semi *token.Token
}

// Ast is the root of a parsed compilation unit: a sequence of top-level
// declarations in source order.
type Ast struct {
	Items []TopDecItem
}
