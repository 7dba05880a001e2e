package manifest_test

import (
	"testing"

	"github.com/go-smlfmt/smlfmt/internal/manifest"
	"github.com/stretchr/testify/require"
)

func TestParseListsSourcePaths(t *testing.T) {
	src := `basis bas = bas
structure Foo
in
  local.sml
  helper.sig
  impl.fun
end
`
	result := manifest.Parse(src, nil)
	require.NoError(t, result.Err)
	require.Equal(t, []string{"local.sml", "helper.sig", "impl.fun"}, result.Paths)
}

func TestParseSkipsKeywordsAndBoundIdentifiers(t *testing.T) {
	src := `let open Foo in main.sml end`
	result := manifest.Parse(src, nil)
	require.NoError(t, result.Err)
	require.Equal(t, []string{"main.sml"}, result.Paths)
}

func TestParseSkipsComments(t *testing.T) {
	src := "(* this mentions fake.sml but is a comment *) real.sml"
	result := manifest.Parse(src, nil)
	require.NoError(t, result.Err)
	require.Equal(t, []string{"real.sml"}, result.Paths)
}

func TestParseUnterminatedCommentErrors(t *testing.T) {
	result := manifest.Parse("(* never closed real.sml", nil)
	require.Error(t, result.Err)
}

func TestParseQuotedPathWithSpaces(t *testing.T) {
	src := `"my file.sml"`
	result := manifest.Parse(src, nil)
	require.NoError(t, result.Err)
	require.Equal(t, []string{"my file.sml"}, result.Paths)
}

func TestParseUnterminatedQuoteErrors(t *testing.T) {
	result := manifest.Parse(`"unterminated.sml`, nil)
	require.Error(t, result.Err)
}

func TestParseExpandsPathVariables(t *testing.T) {
	src := `$(SRC_ROOT)/main.sml`
	result := manifest.Parse(src, map[string]string{"SRC_ROOT": "/home/user/proj"})
	require.NoError(t, result.Err)
	require.Equal(t, []string{"/home/user/proj/main.sml"}, result.Paths)
}

func TestParseUndefinedPathVariableErrors(t *testing.T) {
	result := manifest.Parse(`$(UNKNOWN)/main.sml`, nil)
	require.Error(t, result.Err)
}

func TestParseUnterminatedVariableErrors(t *testing.T) {
	result := manifest.Parse(`$(UNCLOSED/main.sml`, nil)
	require.Error(t, result.Err)
}

func TestParseNestedManifestPathIsReturnedNotExpanded(t *testing.T) {
	src := `basis extra.mlb in end`
	result := manifest.Parse(src, nil)
	require.NoError(t, result.Err)
	require.Equal(t, []string{"extra.mlb"}, result.Paths)
}

func TestParseEmptySource(t *testing.T) {
	result := manifest.Parse("", nil)
	require.NoError(t, result.Err)
	require.Empty(t, result.Paths)
}
