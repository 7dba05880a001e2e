package ast

import "github.com/go-smlfmt/smlfmt/internal/token"

// ValBind is one "[rec] pat = exp" binding within a `val` declaration.
type ValBind struct {
	Rec   *token.Token
	Pat   Pat
	Equal token.Token
	Exp   Exp
}

// DecVal is "val [tyvarseq] bind and bind ...".
type DecVal struct {
	Val     token.Token
	TyVars  SyntaxSeq[token.Token]
	Binds   Seq[ValBind]
}

func (*DecVal) isDec() {}

// FunHeader names the function being defined by one clause and its formal
// parameter patterns. Three source forms collapse to the same shape:
// prefix "f p1 p2", infix "p1 f p2", and parenthesized-infix "(p1 f p2) p3".
type FunHeader struct {
	Op     *token.Token
	Name   token.Token
	Args   []Pat
	Infix  bool // true when Name appeared between the first two Args
	LParen *token.Token // set when the infix form was parenthesized
	RParen *token.Token
}

// FunClause is one "header [: ty] = exp" clause.
type FunClause struct {
	Header FunHeader
	Colon  *token.Token
	Ty     Ty
	Equal  token.Token
	Exp    Exp
}

// FunBind is one "|"-separated group of clauses, all naming the same
// function, within a `fun` declaration.
type FunBind struct {
	Clauses Seq[FunClause] // delimiters are "|" tokens
}

// DecFun is "fun [tyvarseq] bind and bind ...".
type DecFun struct {
	Fun    token.Token
	TyVars SyntaxSeq[token.Token]
	Binds  Seq[FunBind]
}

func (*DecFun) isDec() {}

// TypeBind is one "tyvarseq tycon = ty" binding.
type TypeBind struct {
	TyVars SyntaxSeq[token.Token]
	Name   token.Token
	Equal  token.Token
	Ty     Ty
}

// DecType is "type bind and bind ...".
type DecType struct {
	Type  token.Token
	Binds Seq[TypeBind]
}

func (*DecType) isDec() {}

// ConBind is one constructor in a datatype binding: "Name [of ty]".
type ConBind struct {
	Op   *token.Token
	Name token.Token
	Of   *token.Token
	Ty   Ty
}

// DatatypeBind is one "tyvarseq tycon = conbind | conbind ..." binding.
type DatatypeBind struct {
	TyVars SyntaxSeq[token.Token]
	Name   token.Token
	Equal  token.Token
	Cons   Seq[ConBind] // delimiters are "|" tokens
}

// WithTypeClause is the trailing "withtype bind and bind ..." attached to a
// datatype declaration.
type WithTypeClause struct {
	Withtype token.Token
	Binds    Seq[TypeBind]
}

// DecDatatype is "datatype bind and bind ... [withtype ...]". It also covers
// the replication form "datatype tycon = datatype longtycon" via ReplicOf.
type DecDatatype struct {
	Datatype token.Token
	Binds    Seq[DatatypeBind]
	WithType *WithTypeClause

	// Replication form fields; set instead of Binds when ReplicName != nil.
	ReplicName      *token.Token
	ReplicEqual     *token.Token
	ReplicDatatype  *token.Token // the second "datatype" keyword
	ReplicOf        *LongIdent
}

func (*DecDatatype) isDec() {}

// DecAbstype is "abstype bind and bind ... [withtype ...] with decs end".
type DecAbstype struct {
	Abstype  token.Token
	Binds    Seq[DatatypeBind]
	WithType *WithTypeClause
	With     token.Token
	Decs     []Dec
	End      token.Token
}

func (*DecAbstype) isDec() {}

// ExBind is one binding within an `exception` declaration: either a nullary
// or carrying-a-value declaration ("Name [of ty]") or an exception
// replication ("Name = longid").
type ExBind struct {
	Op   *token.Token
	Name token.Token

	// Declaration form.
	Of *token.Token
	Ty Ty

	// Replication form; set instead of Of/Ty.
	Equal  *token.Token
	EqOp   *token.Token
	LongId *LongIdent
}

// DecException is "exception bind and bind ...".
type DecException struct {
	Exception token.Token
	Binds     Seq[ExBind]
}

func (*DecException) isDec() {}

// DecLocal is "local decs1 in decs2 end".
type DecLocal struct {
	Local token.Token
	Decs1 []Dec
	In    token.Token
	Decs2 []Dec
	End   token.Token
}

func (*DecLocal) isDec() {}

// DecOpen is "open longid longid ...".
type DecOpen struct {
	Open    token.Token
	LongIds []LongIdent
}

func (*DecOpen) isDec() {}

// FixityDirective is "infix|infixr|nonfix [digit] id id ...", recorded as a
// declaration so the printer can render it and so the parser can apply its
// effect to the live fixity.Env in source order.
type FixityDirective struct {
	Keyword token.Token // INFIX, INFIXR, or NONFIX
	Level   *token.Token
	Ids     []token.Token
}

func (*FixityDirective) isDec() {}

// DecSeq is an explicit sequence of declarations, optionally ";"-separated.
type DecSeq struct {
	Decs   []Dec
	Semis  []*token.Token // len(Decs)-1 entries; nil element when adjacent decs had no ";"
}

func (*DecSeq) isDec() {}

// DecEmpty is the empty declaration, spelled as a bare ";" or as nothing at
// all depending on context.
type DecEmpty struct {
	Semi *token.Token
}

func (*DecEmpty) isDec() {}
