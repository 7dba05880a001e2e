package ast

import "github.com/go-smlfmt/smlfmt/internal/token"

// PatWildcard is "_".
type PatWildcard struct{ Tok token.Token }

func (*PatWildcard) isPat() {}

// PatConst is a literal constant pattern: 1, "s", #"c", 1.0.
type PatConst struct{ Tok token.Token }

func (*PatConst) isPat() {}

// PatUnit is "()".
type PatUnit struct {
	LParen token.Token
	RParen token.Token
}

func (*PatUnit) isPat() {}

// PatId is an identifier pattern, optionally `op`-prefixed and possibly a
// long identifier (for nullary constructor references).
type PatId struct {
	Op     *token.Token
	LongId LongIdent
}

func (*PatId) isPat() {}

// PatParen is an explicitly parenthesized pattern.
type PatParen struct {
	LParen token.Token
	Inner  Pat
	RParen token.Token
}

func (*PatParen) isPat() {}

// PatTuple is "(p1, p2, ...)".
type PatTuple struct {
	LParen token.Token
	Elems  Seq[Pat]
	RParen token.Token
}

func (*PatTuple) isPat() {}

// PatList is "[p1, p2, ...]".
type PatList struct {
	LBrack token.Token
	Elems  []Pat // nil for "[]"
	Delims []token.Token
	RBrack token.Token
}

func (*PatList) isPat() {}

// PatRecordField is one "label = pat" entry, or a punned "label" entry
// (Pat == nil) short for "label = label".
type PatRecordField struct {
	Label token.Token
	Equal *token.Token
	Pat   Pat
}

// PatRecord is a record pattern, with an optional flexible "..." row.
type PatRecord struct {
	LBrace token.Token
	Fields []PatRecordField
	Delims []token.Token
	Flex   *token.Token // "..." when the row is flexible
	RBrace token.Token
}

func (*PatRecord) isPat() {}

// PatCon is a constructor application pattern: SOME x, Cons (h, t).
type PatCon struct {
	Op     *token.Token
	LongId LongIdent
	Arg    Pat
}

func (*PatCon) isPat() {}

// PatTyped is a type-ascribed pattern: pat : ty.
type PatTyped struct {
	Inner Pat
	Colon token.Token
	Ty    Ty
}

func (*PatTyped) isPat() {}

// PatAs is an as-pattern: id [: ty] as pat.
type PatAs struct {
	Op     *token.Token
	Name   token.Token
	Colon  *token.Token
	Ty     Ty
	As     token.Token
	Inner  Pat
}

func (*PatAs) isPat() {}

// PatInfix is an infix constructor pattern such as "h :: t", resolved from
// the flat token sequence by the fixity-driven precedence climb.
type PatInfix struct {
	Left  Pat
	Op    token.Token
	Right Pat
}

func (*PatInfix) isPat() {}
