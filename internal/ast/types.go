package ast

import "github.com/go-smlfmt/smlfmt/internal/token"

// TyVar is a type variable occurrence: 'a, ''eq.
type TyVar struct {
	Tok token.Token
}

func (*TyVar) isTy() {}

// TyCon is a type constructor application: int, 'a list, (int,int) t,
// A.B.t. Zero args is an ordinary type constructor reference.
type TyCon struct {
	Args  []Ty          // zero args: bare name; one: prefix "ty name"; many: "(ty,...) name"
	Left  *token.Token  // "(" when Args has 2+ elements
	Delim []token.Token // commas between Args, when present
	Right *token.Token  // ")" matching Left
	Name  LongIdent
}

func (*TyCon) isTy() {}

// TyParen is an explicitly parenthesized type.
type TyParen struct {
	LParen token.Token
	Inner  Ty
	RParen token.Token
}

func (*TyParen) isTy() {}

// TyTuple is a "*"-separated tuple type: ty1 * ty2 * ty3.
type TyTuple struct {
	Elems Seq[Ty] // delimiters are the "*" tokens
}

func (*TyTuple) isTy() {}

// TyRecordField is one `label : ty` entry in a record type.
type TyRecordField struct {
	Label token.Token
	Colon token.Token
	Ty    Ty
}

// TyRecord is a record type: { x : int, y : real }.
type TyRecord struct {
	LBrace token.Token
	Fields Seq[TyRecordField]
	RBrace token.Token
}

func (*TyRecord) isTy() {}

// TyArrow is a function type: dom -> range. Right-associative; the parser
// is responsible for nesting repeated arrows accordingly.
type TyArrow struct {
	Domain Ty
	Arrow  token.Token
	Range  Ty
}

func (*TyArrow) isTy() {}
