// Package doc implements the Wadler/Leijen-style document algebra used to
// lay out formatted source text: a small closed set of combinators (empty,
// text, space, softspace, beside, aboveOrSpace, aboveOrBeside, group) plus
// an indent combinator, each carrying its own precomputed flat width so the
// renderer never re-measures a subtree twice.
package doc

import "strings"

type kind int

const (
	kindEmpty kind = iota
	kindText
	kindSpace
	kindSoftSpace
	kindBeside
	kindAboveOrSpace
	kindAboveOrBeside
	kindGroup
	kindIndent
	kindBreak
)

// Infinity marks a document whose flat width can never be measured — it
// contains an embedded hard line break (a multi-line comment's literal
// text). Any group containing it can never render flat.
const Infinity = 1 << 30

// Doc is an immutable document value. Its zero value is Empty.
type Doc struct {
	kind  kind
	text  string
	n     int
	a, b  *Doc
	width int
}

func addWidth(a, b int) int {
	if a >= Infinity || b >= Infinity {
		return Infinity
	}
	return a + b
}

// Empty is the zero-width document.
func Empty() Doc { return Doc{kind: kindEmpty} }

// Text is a raw, unbreakable run of characters with no embedded tabs. Use
// TextTabWidth for string/comment literal text where tab characters must be
// measured against the configured tab width (spec.md §4.4).
func Text(s string) Doc { return textDoc(s, 1) }

// TextTabWidth is Text, but each tab character in s counts as tabWidth
// columns instead of one.
func TextTabWidth(s string, tabWidth int) Doc {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	return textDoc(s, tabWidth)
}

func textDoc(s string, tabWidth int) Doc {
	if strings.IndexByte(s, '\n') >= 0 {
		return Doc{kind: kindText, text: s, width: Infinity}
	}
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabWidth
		} else {
			w++
		}
	}
	return Doc{kind: kindText, text: s, width: w}
}

// Space is a single literal space, present in both flat and broken layout.
func Space() Doc { return Doc{kind: kindSpace, width: 1} }

// SoftSpace is a space in flat layout and nothing in broken layout.
func SoftSpace() Doc { return Doc{kind: kindSoftSpace, width: 1} }

// Beside concatenates a and b on the same line with no separator.
func Beside(a, b Doc) Doc {
	return Doc{kind: kindBeside, a: &a, b: &b, width: addWidth(a.width, b.width)}
}

// AboveOrSpace renders as "a b" in flat mode, or a followed by a new line
// at the current base indentation in broken mode (spec.md §4.4).
func AboveOrSpace(a, b Doc) Doc {
	return Doc{kind: kindAboveOrSpace, a: &a, b: &b, width: addWidth(addWidth(a.width, 1), b.width)}
}

// AboveOrBeside renders as Beside(a, b) in flat mode, or a followed by a new
// line continuing at the column where a's own last line began (spec.md
// §4.4) — this is what lets sequence elements align under the first one.
func AboveOrBeside(a, b Doc) Doc {
	return Doc{kind: kindAboveOrBeside, a: &a, b: &b, width: addWidth(a.width, b.width)}
}

// Group picks flat layout for d if it fits the remaining width/ribbon
// budget at the point it is rendered, else broken layout; the choice is
// local to this group (spec.md §4.4).
func Group(d Doc) Doc {
	return Doc{kind: kindGroup, a: &d, width: d.width}
}

// Indent increases the base indentation in effect for d's broken-mode
// descendants by n columns. This is not one of the named combinators in
// spec.md §3/§4.4, but the spec's own translator rules ("body indented by
// indent_width") require some way to thread a base indent deeper, so it is
// added here as the idiomatic nest/indent operation every Wadler-style
// pretty-printing library provides (see DESIGN.md).
func Indent(n int, d Doc) Doc {
	return Doc{kind: kindIndent, n: n, a: &d, width: d.width}
}

// Break marks d as never eligible for flat layout by overriding its
// measured width to Infinity, without changing how d itself renders once a
// mode is chosen. This lets the printer force constructs such as
// if/then/else or let/in/end to always span multiple lines (spec.md §4.5),
// since no combinator in the literal algebra expresses "never flat" on its
// own (see DESIGN.md).
func Break(d Doc) Doc {
	return Doc{kind: kindBreak, a: &d, width: Infinity}
}

// Concat beside-joins a run of documents left to right.
func Concat(docs ...Doc) Doc {
	out := Empty()
	for _, d := range docs {
		out = Beside(out, d)
	}
	return out
}

// Sequence renders open, elems joined by delim with a leading softspace,
// and close, as one document: flat when it fits, broken with the delimiter
// leading each continuation line, aligned under the first element
// (spec.md §4.5: "sequence(open, delims, close, elems)").
func Sequence(open, close Doc, delim string, elems []Doc) Doc {
	if len(elems) == 0 {
		return Beside(open, close)
	}
	body := Beside(open, elems[0])
	for _, e := range elems[1:] {
		cont := Beside(Beside(Text(delim), SoftSpace()), e)
		body = AboveOrBeside(body, cont)
	}
	return Group(Beside(body, close))
}

// FlatWidth reports d's precomputed flat-mode width, or Infinity if d can
// never be rendered on a single line.
func (d Doc) FlatWidth() int { return d.width }
