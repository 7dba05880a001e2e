package printer_test

import (
	"testing"

	"github.com/go-smlfmt/smlfmt/internal/lexer"
	"github.com/go-smlfmt/smlfmt/internal/parser"
	"github.com/go-smlfmt/smlfmt/internal/printer"
	"github.com/go-smlfmt/smlfmt/internal/token"
	"github.com/stretchr/testify/require"
)

func format(t *testing.T, src string) string {
	t.Helper()
	lexResult := lexer.Lex("t.sml", src)
	require.Nil(t, lexResult.Err, "lex error: %v", lexResult.Err)

	parseResult := parser.Parse(lexResult.Tokens)
	require.Nil(t, parseResult.Err, "parse error: %v", parseResult.Err)

	out, diagErr := printer.Print(parseResult.Ast, printer.DefaultConfig())
	require.Nil(t, diagErr, "print error: %v", diagErr)
	return out
}

// Scenario A (spec.md §8): basic fun binding with a forced-broken if/then/else.
func TestScenarioA_BasicFun(t *testing.T) {
	src := "fun fib n = if n < 2 then n\n else fib (n-1)\n  + fib (n-2)"
	want := "fun fib n =\n  if n < 2 then\n    n\n  else\n    fib (n - 1) + fib (n - 2)\n"
	require.Equal(t, want, format(t, src))
}

// Scenario C (spec.md §8): a group of one-line val bindings stays one line each.
func TestScenarioC_ValGroup(t *testing.T) {
	src := "val f5 = fib 5\nval f10 =\n  fib 10\nval f15 = fib 15"
	out := format(t, src)
	require.Equal(t, "val f5 = fib 5\nval f10 = fib 10\nval f15 = fib 15\n", out)
}

// Scenario B (spec.md §8): a comment attached to a token inside the
// if/then/else example survives into the formatted output, on its own
// line ahead of the token it leads.
func TestScenarioB_CommentPreservation(t *testing.T) {
	src := "fun test n = if n < 2 then (* base case *) n else fib n"
	want := "fun test n =\n  if n < 2 then\n    (* base case *)\n    n\n  else\n    fib n\n"
	require.Equal(t, want, format(t, src))
}

// Invariant 5 (spec.md §8): every comment token present in tokens(S)
// appears as text in print(parse(S)), regardless of where it attaches.
func TestCommentPreservationInvariant(t *testing.T) {
	src := `(* header comment *)
val x = 1 (* trailing comment on the next token's lead *)
fun f a =
  (* comment before the body *)
  a + 1
structure M = struct
  (* comment before a structure member *)
  val y = 2
end`

	lexResult := lexer.Lex("t.sml", src)
	require.Nil(t, lexResult.Err)

	var comments []string
	for _, tok := range lexResult.Tokens {
		if tok.Is(token.BLOCKCOMMENT) {
			comments = append(comments, tok.Literal)
		}
	}
	require.NotEmpty(t, comments, "fixture must actually contain comments")

	out := format(t, src)
	for _, c := range comments {
		require.Contains(t, out, c)
	}
}

// Scenario F (spec.md §8): a long identifier reference re-prints verbatim.
func TestScenarioF_LongIdentifier(t *testing.T) {
	src := "structure A = struct val z = B.C.d end"
	out := format(t, src)
	require.Contains(t, out, "B.C.d")
}

// Scenario E (spec.md §8): fixity declarations affect how infix chains
// print once parsed, here checked via the printed text rather than internal
// AST shape (the printer has no opinion on precedence, only on what the parser
// already grouped).
func TestScenarioE_FixityRoundTrip(t *testing.T) {
	src := "infix 6 @@\nval x = 1 @@ 2 + 3"
	out := format(t, src)
	require.Contains(t, out, "infix 6 @@")
	require.Contains(t, out, "1 @@ 2 + 3")
}

// Idempotence (invariant 3, spec.md §8): print(parse(print(parse(S)))) ==
// print(parse(S)).
func TestIdempotence(t *testing.T) {
	srcs := []string{
		"fun fib n = if n < 2 then n else fib (n-1) + fib (n-2)",
		"val f5 = fib 5\nval f10 = fib 10",
		"structure A = struct val z = B.C.d end",
		"datatype 'a tree = Leaf | Node of 'a tree * 'a * 'a tree",
		"fun map f [] = []\n  | map f (x :: xs) = f x :: map f xs",
	}
	for _, src := range srcs {
		once := format(t, src)
		twice := format(t, once)
		require.Equal(t, once, twice, "not idempotent for %q", src)
	}
}

// Width bound (invariant 4, spec.md §8): no line should exceed max_width
// unless it is a single atom wider than max_width.
func TestWidthBound(t *testing.T) {
	src := "fun longFunctionNameThatKeepsGoing a b c d e f g h = a + b + c + d + e + f + g + h"
	lexResult := lexer.Lex("t.sml", src)
	require.Nil(t, lexResult.Err)
	parseResult := parser.Parse(lexResult.Tokens)
	require.Nil(t, parseResult.Err)

	cfg := printer.DefaultConfig()
	cfg.MaxWidth = 40
	out, diagErr := printer.Print(parseResult.Ast, cfg)
	require.Nil(t, diagErr)

	for _, line := range splitLines(out) {
		require.LessOrEqual(t, len([]rune(line)), 40, "line exceeds max width: %q", line)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
