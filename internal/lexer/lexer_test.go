package lexer_test

import (
	"testing"

	"github.com/go-smlfmt/smlfmt/internal/lexer"
	"github.com/go-smlfmt/smlfmt/internal/token"
	"github.com/stretchr/testify/require"
)

func kinds(t []token.Token) []token.Kind {
	out := make([]token.Kind, len(t))
	for i, tok := range t {
		out[i] = tok.Kind
	}
	return out
}

func TestLexBasicDeclaration(t *testing.T) {
	res := lexer.Lex("t.sml", "val x = 1 + 2")
	require.True(t, res.OK(), "unexpected lex error: %v", res.Err)

	want := []token.Kind{
		token.VAL, token.IDENT, token.EQUALS, token.INT, token.SYMBOLIC, token.INT, token.EOF,
	}
	require.Equal(t, want, kinds(res.Tokens))
}

func TestLexKeywordsAreNotIdentifiers(t *testing.T) {
	res := lexer.Lex("t.sml", "fun andalso orelse datatype")
	require.True(t, res.OK())
	require.Equal(t,
		[]token.Kind{token.FUN, token.ANDALSO, token.ORELSE, token.DATATYPE, token.EOF},
		kinds(res.Tokens))
}

func TestLexNumericForms(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"123", token.INT},
		{"~123", token.INT},
		{"0x2A", token.INT},
		{"0w12", token.WORD},
		{"0wx2A", token.WORD},
		{"1.5", token.REAL},
		{"1.5e10", token.REAL},
		{"~1.5e~10", token.REAL},
	}
	for _, tt := range tests {
		res := lexer.Lex("t.sml", tt.src)
		require.True(t, res.OK(), "lexing %q", tt.src)
		require.Len(t, res.Tokens, 2, "lexing %q", tt.src)
		require.Equal(t, tt.kind, res.Tokens[0].Kind, "lexing %q", tt.src)
		require.Equal(t, tt.src, res.Tokens[0].Literal)
	}
}

func TestLexStringEscapes(t *testing.T) {
	res := lexer.Lex("t.sml", `"a\nb\t\"\\c\065\u0041"`)
	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	require.Len(t, res.Tokens, 2)
	require.Equal(t, token.STRING, res.Tokens[0].Kind)
}

func TestLexUnterminatedString(t *testing.T) {
	res := lexer.Lex("t.sml", `val s = "unterminated`)
	require.False(t, res.OK())
	require.Equal(t, "unterminated string literal", res.Err.What)

	wantPartial := []token.Kind{token.VAL, token.IDENT, token.EQUALS}
	require.Equal(t, wantPartial, kinds(res.Tokens))
}

func TestLexUnterminatedComment(t *testing.T) {
	res := lexer.Lex("t.sml", "val x = 1 (* oops")
	require.False(t, res.OK())
	require.Equal(t, "unterminated comment", res.Err.What)
}

func TestLexNestedComment(t *testing.T) {
	res := lexer.Lex("t.sml", "(* outer (* inner *) still outer *) val x = 1")
	require.True(t, res.OK())
	require.Equal(t, token.BLOCKCOMMENT, res.Tokens[0].Kind)
	require.Equal(t, "(* outer (* inner *) still outer *)", res.Tokens[0].Literal)
}

func TestCommentAttachesToFollowingToken(t *testing.T) {
	res := lexer.Lex("t.sml", "(* c *) val x = 1")
	require.True(t, res.OK())
	require.Equal(t, token.BLOCKCOMMENT, res.Tokens[0].Kind)
	require.Equal(t, token.VAL, res.Tokens[1].Kind)
	require.Len(t, res.Tokens[1].LeadingComments, 1)
	require.Equal(t, "(* c *)", res.Tokens[1].LeadingComments[0].Text)
}

func TestLexLongIdentifierComponents(t *testing.T) {
	res := lexer.Lex("t.sml", "A.B.x")
	require.True(t, res.OK())
	require.Equal(t,
		[]token.Kind{token.IDENT, token.DOT, token.IDENT, token.DOT, token.IDENT, token.EOF},
		kinds(res.Tokens))
}

func TestLexSymbolicIdentifierVsReservedSymbol(t *testing.T) {
	res := lexer.Lex("t.sml", "@@ => -> :> : |")
	require.True(t, res.OK())
	require.Equal(t,
		[]token.Kind{token.SYMBOLIC, token.DARROW, token.ARROW, token.COLONGT, token.COLON, token.PIPE, token.EOF},
		kinds(res.Tokens))
	require.Equal(t, "@@", res.Tokens[0].Literal)
}

func TestLexTypeVariable(t *testing.T) {
	res := lexer.Lex("t.sml", "'a ''eq")
	require.True(t, res.OK())
	require.Equal(t, []token.Kind{token.TYVAR, token.TYVAR, token.EOF}, kinds(res.Tokens))
	require.Equal(t, "'a", res.Tokens[0].Literal)
	require.Equal(t, "''eq", res.Tokens[1].Literal)
}

func TestLexWildcardVsIdentifier(t *testing.T) {
	res := lexer.Lex("t.sml", "_ x")
	require.True(t, res.OK())
	require.Equal(t, []token.Kind{token.UNDERSCORE, token.IDENT, token.EOF}, kinds(res.Tokens))
}

func TestLexMLBPathVariable(t *testing.T) {
	res := lexer.Lex("t.mlb", "$(SML_LIB)/basis/basis.mlb")
	require.True(t, res.OK())
	require.Equal(t, token.MLBPATH, res.Tokens[0].Kind)
	require.Equal(t, "$(SML_LIB)", res.Tokens[0].Literal)
}

func TestLexPositions(t *testing.T) {
	res := lexer.Lex("t.sml", "val\nx = 1")
	require.True(t, res.OK())
	require.Equal(t, 1, res.Tokens[0].Span.Start.Line)
	require.Equal(t, 2, res.Tokens[1].Span.Start.Line)
	require.Equal(t, 1, res.Tokens[1].Span.Start.Column)
}

func TestLexIllegalCharacter(t *testing.T) {
	res := lexer.Lex("t.sml", "val x = `")
	require.False(t, res.OK())
	require.Contains(t, res.Err.What, "illegal character")
}
