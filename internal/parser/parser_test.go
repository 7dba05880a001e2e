package parser_test

import (
	"testing"

	"github.com/go-smlfmt/smlfmt/internal/ast"
	"github.com/go-smlfmt/smlfmt/internal/lexer"
	"github.com/go-smlfmt/smlfmt/internal/parser"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Ast {
	t.Helper()
	lexResult := lexer.Lex("t.sml", src)
	require.Nil(t, lexResult.Err, "lex error: %v", lexResult.Err)
	parseResult := parser.Parse(lexResult.Tokens)
	require.Nil(t, parseResult.Err, "parse error: %v", parseResult.Err)
	return parseResult.Ast
}

func soleDec(t *testing.T, a *ast.Ast) ast.Dec {
	t.Helper()
	require.Len(t, a.Items, 1)
	core, ok := a.Items[0].Dec.(*ast.StrDecCore)
	require.True(t, ok, "expected a core declaration, got %T", a.Items[0].Dec)
	return core.Dec
}

func TestParseValBinding(t *testing.T) {
	a := mustParse(t, "val x = 1")
	dv, ok := soleDec(t, a).(*ast.DecVal)
	require.True(t, ok)
	require.Equal(t, 1, 1+len(dv.Binds.Rest))
	require.Equal(t, "x", dv.Binds.First.Pat.(*ast.PatId).LongId.Name.Literal)
}

// Scenario F (spec.md §8): long identifiers parse into their qualifier
// chain rather than being merged into one token.
func TestParseLongIdentifier(t *testing.T) {
	a := mustParse(t, "val z = A.B.c")
	dv := soleDec(t, a).(*ast.DecVal)
	id, ok := dv.Binds.First.Exp.(*ast.ExpId)
	require.True(t, ok)
	require.Len(t, id.LongId.Qualifiers, 2)
	require.Equal(t, "A", id.LongId.Qualifiers[0].Literal)
	require.Equal(t, "B", id.LongId.Qualifiers[1].Literal)
	require.Equal(t, "c", id.LongId.Name.Literal)
}

// Scenario E (spec.md §8): fixity declarations change how a flat
// atom/operator sequence resolves into an ExpInfix tree.
func TestFixityDeterminesGrouping(t *testing.T) {
	a := mustParse(t, "val x = 1 + 2 * 3")
	dv := soleDec(t, a).(*ast.DecVal)
	top, ok := dv.Binds.First.Exp.(*ast.ExpInfix)
	require.True(t, ok)
	require.Equal(t, "+", top.Op.Literal)

	right, ok := top.Right.(*ast.ExpInfix)
	require.True(t, ok, "2 * 3 should bind tighter and nest under +")
	require.Equal(t, "*", right.Op.Literal)
}

func TestCustomInfixDeclarationAffectsParsing(t *testing.T) {
	a := mustParse(t, "infix 6 @@\nval x = 1 @@ 2 @@ 3")
	require.Len(t, a.Items, 2)
	core, ok := a.Items[1].Dec.(*ast.StrDecCore)
	require.True(t, ok)
	dv := core.Dec.(*ast.DecVal)

	top, ok := dv.Binds.First.Exp.(*ast.ExpInfix)
	require.True(t, ok)
	require.Equal(t, "@@", top.Op.Literal)

	left, ok := top.Left.(*ast.ExpInfix)
	require.True(t, ok, "left-associative @@ nests the earlier application on the left")
	require.Equal(t, "@@", left.Op.Literal)
}

func TestRightAssociativeConsOperator(t *testing.T) {
	a := mustParse(t, "val xs = 1 :: 2 :: nil")
	dv := soleDec(t, a).(*ast.DecVal)
	top, ok := dv.Binds.First.Exp.(*ast.ExpInfix)
	require.True(t, ok)
	require.Equal(t, "::", top.Op.Literal)

	right, ok := top.Right.(*ast.ExpInfix)
	require.True(t, ok, "right-associative :: nests the later application on the right")
	require.Equal(t, "::", right.Op.Literal)
}

func TestParseFunctionApplication(t *testing.T) {
	a := mustParse(t, "val y = f x z")
	dv := soleDec(t, a).(*ast.DecVal)
	outer, ok := dv.Binds.First.Exp.(*ast.ExpApp)
	require.True(t, ok)
	inner, ok := outer.Fn.(*ast.ExpApp)
	require.True(t, ok, "juxtaposition is left-associative: (f x) z")
	fnId := inner.Fn.(*ast.ExpId)
	require.Equal(t, "f", fnId.LongId.Name.Literal)
}

func TestParseIfThenElse(t *testing.T) {
	a := mustParse(t, "val y = if true then 1 else 2")
	dv := soleDec(t, a).(*ast.DecVal)
	_, ok := dv.Binds.First.Exp.(*ast.ExpIf)
	require.True(t, ok)
}

func TestParseDatatypeBinding(t *testing.T) {
	a := mustParse(t, "datatype color = Red | Green | Blue")
	dt, ok := soleDec(t, a).(*ast.DecDatatype)
	require.True(t, ok)
	require.Equal(t, "color", dt.Binds.First.Name.Literal)
	require.Equal(t, 2, len(dt.Binds.First.Cons.Rest))
}

func TestParseFunWithMultipleClauses(t *testing.T) {
	a := mustParse(t, "fun len [] = 0\n  | len (x :: xs) = 1 + len xs")
	df, ok := soleDec(t, a).(*ast.DecFun)
	require.True(t, ok)
	require.Len(t, df.Binds.First.Clauses.Rest, 1)
}

func TestParseErrorReportsPosition(t *testing.T) {
	lexResult := lexer.Lex("bad.sml", "val = 1")
	require.Nil(t, lexResult.Err)
	result := parser.Parse(lexResult.Tokens)
	require.False(t, result.OK())
	require.Equal(t, "bad.sml", result.Err.Pos.Source)
}
