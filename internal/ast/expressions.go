package ast

import "github.com/go-smlfmt/smlfmt/internal/token"

// ExpConst is a literal constant: 1, "s", #"c", 1.0.
type ExpConst struct{ Tok token.Token }

func (*ExpConst) isExp() {}

// ExpUnit is "()".
type ExpUnit struct {
	LParen token.Token
	RParen token.Token
}

func (*ExpUnit) isExp() {}

// ExpId is an identifier reference, optionally `op`-prefixed and possibly
// qualified: x, op +, A.B.x.
type ExpId struct {
	Op     *token.Token
	LongId LongIdent
}

func (*ExpId) isExp() {}

// ExpParen is an explicitly parenthesized expression.
type ExpParen struct {
	LParen token.Token
	Inner  Exp
	RParen token.Token
}

func (*ExpParen) isExp() {}

// ExpTuple is "(e1, e2, ...)".
type ExpTuple struct {
	LParen token.Token
	Elems  Seq[Exp]
	RParen token.Token
}

func (*ExpTuple) isExp() {}

// ExpSeq is a sequence expression "(e1; e2; ...)".
type ExpSeq struct {
	LParen token.Token
	Elems  Seq[Exp] // delimiters are ";" tokens
	RParen token.Token
}

func (*ExpSeq) isExp() {}

// ExpList is "[e1, e2, ...]".
type ExpList struct {
	LBrack token.Token
	Elems  []Exp // nil for "[]"
	Delims []token.Token
	RBrack token.Token
}

func (*ExpList) isExp() {}

// ExpRecordField is one "label = exp" entry.
type ExpRecordField struct {
	Label token.Token
	Equal token.Token
	Exp   Exp
}

// ExpRecord is a record expression: { x = 1, y = 2 }.
type ExpRecord struct {
	LBrace token.Token
	Fields Seq[ExpRecordField]
	RBrace token.Token
}

func (*ExpRecord) isExp() {}

// ExpSelector is a record field selector: #label.
type ExpSelector struct {
	Hash  token.Token
	Label token.Token
}

func (*ExpSelector) isExp() {}

// ExpApp is function application: e1 e2. Juxtaposition is left-associative
// and binds tighter than any infix operator.
type ExpApp struct {
	Fn  Exp
	Arg Exp
}

func (*ExpApp) isExp() {}

// ExpInfix is an infix operator application resolved from a flat atom/
// operator sequence by the fixity-driven precedence climb (spec.md §4.3).
type ExpInfix struct {
	Left  Exp
	Op    token.Token
	Right Exp
}

func (*ExpInfix) isExp() {}

// ExpAndAlso is short-circuiting conjunction: e1 andalso e2.
type ExpAndAlso struct {
	Left    Exp
	AndAlso token.Token
	Right   Exp
}

func (*ExpAndAlso) isExp() {}

// ExpOrElse is short-circuiting disjunction: e1 orelse e2.
type ExpOrElse struct {
	Left   Exp
	OrElse token.Token
	Right  Exp
}

func (*ExpOrElse) isExp() {}

// ExpTyped is a type-ascribed expression: exp : ty.
type ExpTyped struct {
	Inner Exp
	Colon token.Token
	Ty    Ty
}

func (*ExpTyped) isExp() {}

// ExpIf is "if e1 then e2 else e3".
type ExpIf struct {
	If   token.Token
	Cond Exp
	Then token.Token
	Conseq Exp
	Else token.Token
	Alt  Exp
}

func (*ExpIf) isExp() {}

// ExpWhile is "while e1 do e2".
type ExpWhile struct {
	While token.Token
	Cond  Exp
	Do    token.Token
	Body  Exp
}

func (*ExpWhile) isExp() {}

// ExpRaise is "raise e".
type ExpRaise struct {
	Raise token.Token
	Exn   Exp
}

func (*ExpRaise) isExp() {}

// ExpHandle is "e handle match".
type ExpHandle struct {
	Inner  Exp
	Handle token.Token
	Match  Seq[Match]
}

func (*ExpHandle) isExp() {}

// ExpCase is "case e of match".
type ExpCase struct {
	Case  token.Token
	Scrut Exp
	Of    token.Token
	Match Seq[Match]
}

func (*ExpCase) isExp() {}

// ExpFn is "fn match".
type ExpFn struct {
	Fn    token.Token
	Match Seq[Match]
}

func (*ExpFn) isExp() {}

// ExpLet is "let decs in exps end".
type ExpLet struct {
	Let  token.Token
	Decs []Dec
	In   token.Token
	Body Seq[Exp] // ";"-separated body expressions
	End  token.Token
}

func (*ExpLet) isExp() {}

// Match is one "pat => exp" clause of a fn/case/handle match.
type Match struct {
	Pat   Pat
	Arrow token.Token
	Body  Exp
}
