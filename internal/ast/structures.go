package ast

import "github.com/go-smlfmt/smlfmt/internal/token"

// StrExpId references a named structure, possibly qualified.
type StrExpId struct {
	LongId LongIdent
}

func (*StrExpId) isStrExp() {}

// StrExpStruct is "struct strdec end".
type StrExpStruct struct {
	Struct token.Token
	StrDec StrDec
	End    token.Token
}

func (*StrExpStruct) isStrExp() {}

// StrExpConstraint is "strexp : sigexp" (opaque if Colon is ":>", transparent
// if ":").
type StrExpConstraint struct {
	StrExp StrExp
	Colon  token.Token // ":" or ":>"
	Opaque bool
	SigExp SigExp
}

func (*StrExpConstraint) isStrExp() {}

// StrExpFunctorApp is "funid (strexp)" or the derived-form "funid (strdec)".
type StrExpFunctorApp struct {
	FunId  token.Token
	LParen token.Token
	Arg    StrExp // the strexp form
	ArgDec StrDec // the derived strdec-as-argument form, set instead of Arg
	RParen token.Token
}

func (*StrExpFunctorApp) isStrExp() {}

// StrExpLet is "let strdec in strexp end".
type StrExpLet struct {
	Let    token.Token
	StrDec StrDec
	In     token.Token
	StrExp StrExp
	End    token.Token
}

func (*StrExpLet) isStrExp() {}

// SigConstraint is an optional ": sigexp" or ":> sigexp" attached directly
// to a structure binding's name, as opposed to its right-hand strexp.
type SigConstraint struct {
	Colon  token.Token
	Opaque bool
	SigExp SigExp
}

// StructureBind is one "id [sigconstraint] = strexp" binding.
type StructureBind struct {
	Name       token.Token
	Constraint *SigConstraint
	Equal      token.Token
	StrExp     StrExp
}

// StrDecStructure is "structure bind and bind ...".
type StrDecStructure struct {
	Structure token.Token
	Binds     Seq[StructureBind]
}

func (*StrDecStructure) isStrDec() {}

// StrDecLocal is "local strdec1 in strdec2 end".
type StrDecLocal struct {
	Local   token.Token
	StrDec1 StrDec
	In      token.Token
	StrDec2 StrDec
	End     token.Token
}

func (*StrDecLocal) isStrDec() {}

// StrDecCore wraps a core-level declaration appearing directly in a
// structure body (val/fun/type/datatype/exception/open/local/infix/...).
type StrDecCore struct {
	Dec Dec
}

func (*StrDecCore) isStrDec() {}

// StrDecSeq is an explicit sequence of structure-level declarations,
// optionally ";"-separated.
type StrDecSeq struct {
	Decs  []StrDec
	Semis []*token.Token
}

func (*StrDecSeq) isStrDec() {}

// FunctorBind is one "funid (strid : sigexp) [: sigexp] = strexp" binding,
// or its spec-argument derived form "funid (spec) ... = strexp".
type FunctorBind struct {
	FunId      token.Token
	LParen     token.Token
	ParamId    *token.Token // set for the "strid : sigexp" form
	ParamColon *token.Token
	ParamSig   SigExp // set for the "strid : sigexp" form
	ParamSpec  Spec   // set for the derived "spec" form instead
	RParen     token.Token
	Result     *SigConstraint
	Equal      token.Token
	Body       StrExp
}

// FunctorDec is "functor bind and bind ...".
type FunctorDec struct {
	Functor token.Token
	Binds   Seq[FunctorBind]
}
