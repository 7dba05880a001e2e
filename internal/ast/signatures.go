package ast

import "github.com/go-smlfmt/smlfmt/internal/token"

// SpecValBind is one "id : ty" entry in a `val` spec.
type SpecValBind struct {
	Name  token.Token
	Colon token.Token
	Ty    Ty
}

// SpecVal is "val bind and bind ...".
type SpecVal struct {
	Val   token.Token
	Binds Seq[SpecValBind]
}

func (*SpecVal) isSpec() {}

// SpecType is "type bind and bind ...", each binding a bare abstract type
// (no "=" right-hand side).
type SpecType struct {
	Type  token.Token
	Binds Seq[SyntaxSeqNamed]
}

func (*SpecType) isSpec() {}

// SpecTypeAbbrev is "type bind and bind ...", each binding a concrete
// abbreviation ("tyvarseq tycon = ty").
type SpecTypeAbbrev struct {
	Type  token.Token
	Binds Seq[TypeBind]
}

func (*SpecTypeAbbrev) isSpec() {}

// SpecEqtype is "eqtype bind and bind ...".
type SpecEqtype struct {
	Eqtype token.Token
	Binds  Seq[SyntaxSeqNamed]
}

func (*SpecEqtype) isSpec() {}

// SyntaxSeqNamed pairs a type-variable sequence with the type constructor
// name it scopes over, used by bare abstract-type specs.
type SyntaxSeqNamed struct {
	TyVars SyntaxSeq[token.Token]
	Name   token.Token
}

// SpecDatatype is "datatype bind and bind ...".
type SpecDatatype struct {
	Datatype token.Token
	Binds    Seq[DatatypeBind]
}

func (*SpecDatatype) isSpec() {}

// SpecReplicDatatype is "datatype tycon = datatype longtycon".
type SpecReplicDatatype struct {
	Datatype token.Token
	Name     token.Token
	Equal    token.Token
	EqDatatype token.Token
	LongId   LongIdent
}

func (*SpecReplicDatatype) isSpec() {}

// SpecException is "exception bind and bind ...", each binding "Name [of
// ty]".
type SpecException struct {
	Exception token.Token
	Binds     Seq[ConBind]
}

func (*SpecException) isSpec() {}

// SpecStructure is "structure bind and bind ...", each binding "id : sigexp".
type SpecStructureBind struct {
	Name   token.Token
	Colon  token.Token
	SigExp SigExp
}

type SpecStructure struct {
	Structure token.Token
	Binds     Seq[SpecStructureBind]
}

func (*SpecStructure) isSpec() {}

// SpecInclude is "include sigexp" or, in its multi-name form, "include id
// id ...".
type SpecInclude struct {
	Include token.Token
	SigExp  SigExp   // set for the single-sigexp form
	Names   []token.Token // set for the multi-name form
}

func (*SpecInclude) isSpec() {}

// SpecSharing is "spec sharing type longid = longid = ...", attaching a
// sharing constraint to the preceding spec sequence.
type SpecSharing struct {
	Sharing token.Token
	Type    *token.Token // present for "sharing type"; absent for structure sharing
	LongIds []LongIdent
	Equals  []token.Token // len(LongIds)-1
}

func (*SpecSharing) isSpec() {}

// SpecSeq is an explicit sequence of specs, optionally ";"-terminated.
type SpecSeq struct {
	Specs []Spec
	Semis []*token.Token
}

func (*SpecSeq) isSpec() {}

// SigExpId references a named signature.
type SigExpId struct {
	Name token.Token
}

func (*SigExpId) isSigExp() {}

// SigExpSig is "sig spec end".
type SigExpSig struct {
	Sig  token.Token
	Spec Spec
	End  token.Token
}

func (*SigExpSig) isSigExp() {}

// SigExpWhereType is "sigexp where type tyvarseq longtycon = ty", which may
// chain ("where type ... where type ...").
type SigExpWhereType struct {
	SigExp SigExp
	Where  token.Token
	Type   token.Token
	TyVars SyntaxSeq[token.Token]
	LongId LongIdent
	Equal  token.Token
	Ty     Ty
}

func (*SigExpWhereType) isSigExp() {}

// SignatureBind is one "id = sigexp" binding in a top-level `signature`
// declaration.
type SignatureBind struct {
	Name   token.Token
	Equal  token.Token
	SigExp SigExp
}

// SignatureDec is "signature bind and bind ...".
type SignatureDec struct {
	Signature token.Token
	Binds     Seq[SignatureBind]
}
