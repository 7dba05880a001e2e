// Package ast defines the abstract syntax tree produced by the parser.
//
// Every node that contains a keyword or punctuation token retains that
// token verbatim (spec.md §3), so the printer can recover exact spellings
// (`op` presence, original casing where the language is case-sensitive,
// comment attachment) without consulting the source buffer again.
package ast

import "github.com/go-smlfmt/smlfmt/internal/token"

// Ty is any type-expression node (spec.md §3, "Types").
type Ty interface{ isTy() }

// Pat is any pattern node ("Patterns").
type Pat interface{ isPat() }

// Exp is any expression node ("Expressions").
type Exp interface{ isExp() }

// Dec is any core declaration node ("Core declarations").
type Dec interface{ isDec() }

// Spec is any signature-body item ("Signatures").
type Spec interface{ isSpec() }

// SigExp is any signature expression.
type SigExp interface{ isSigExp() }

// StrExp is any structure expression.
type StrExp interface{ isStrExp() }

// StrDec is any structure-level declaration.
type StrDec interface{ isStrDec() }

// LongIdent is a possibly-dot-qualified identifier such as A.B.x. Lexically
// each component and each "." is a distinct token; the parser assembles
// them into one LongIdent on request (spec.md §4.1).
type LongIdent struct {
	Qualifiers []token.Token // zero or more leading structure identifiers
	Dots       []token.Token // one dot per qualifier, same length as Qualifiers
	Name       token.Token   // the final component
}

// String renders the long identifier using its original token text.
func (id LongIdent) String() string {
	s := ""
	for _, q := range id.Qualifiers {
		s += q.Literal + "."
	}
	return s + id.Name.Literal
}

// Span covers every token making up the long identifier.
func (id LongIdent) Span() token.Span {
	if len(id.Qualifiers) == 0 {
		return id.Name.Span
	}
	return token.Join(id.Qualifiers[0].Span, id.Name.Span)
}

// SeqTail is one (delimiter, item) pair following the first element of a
// delimited sequence, preserving the delimiter token in source order
// (spec.md §3: "Sequences of elements with delimiters are stored as
// (elements[0], (delim_i, elements[i+1])*)").
type SeqTail[T any] struct {
	Delim token.Token
	Item  T
}

// Seq is a non-empty delimiter-preserving sequence: a comma list, an
// `and`-separated binding group, a `|`-separated clause list, and so on.
type Seq[T any] struct {
	First T
	Rest  []SeqTail[T]
}

// One builds a single-element Seq.
func One[T any](item T) Seq[T] { return Seq[T]{First: item} }

// All flattens the sequence into a plain slice, discarding delimiters.
func (s Seq[T]) All() []T {
	out := make([]T, 0, len(s.Rest)+1)
	out = append(out, s.First)
	for _, tail := range s.Rest {
		out = append(out, tail.Item)
	}
	return out
}

// Len reports the number of elements, including First.
func (s Seq[T]) Len() int { return len(s.Rest) + 1 }

// SyntaxSeqKind discriminates the three SyntaxSeq shapes (spec.md §4.2
// item 3).
type SyntaxSeqKind int

const (
	SeqEmpty SyntaxSeqKind = iota
	SeqOne
	SeqMany
)

// SyntaxSeq is the shared shape for optional parenthesized lists such as a
// type variable sequence ahead of a type/datatype binding: `t`, `'a t`, or
// `('a, 'b) t`. The parser commits to SeqMany on seeing "("
// followed by a type variable.
type SyntaxSeq[T any] struct {
	Kind   SyntaxSeqKind
	One    T // valid when Kind == SeqOne
	Left   token.Token
	Elems  []T
	Delims []token.Token // len(Elems)-1 commas, valid when Kind == SeqMany
	Right  token.Token
}

// All flattens the sequence regardless of shape.
func (s SyntaxSeq[T]) All() []T {
	switch s.Kind {
	case SeqOne:
		return []T{s.One}
	case SeqMany:
		return s.Elems
	default:
		return nil
	}
}
