package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandManifestResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "sources.mlb")
	require.NoError(t, os.WriteFile(manifestPath, []byte("basis bas = bas\nin\n  a.sml\n  b.sig\nend\n"), 0o644))

	paths, err := expandManifest(manifestPath, nil)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.sml"),
		filepath.Join(dir, "b.sig"),
	}, paths)
}

func TestExpandManifestFollowsNestedManifests(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested.mlb")
	require.NoError(t, os.WriteFile(nested, []byte("basis bas = bas\nin\n  c.sml\nend\n"), 0o644))

	root := filepath.Join(dir, "root.mlb")
	require.NoError(t, os.WriteFile(root, []byte("basis bas = bas\nin\n  nested.mlb\nend\n"), 0o644))

	paths, err := expandManifest(root, nil)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "c.sml")}, paths)
}

func TestExpandManifestDetectsCycles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.mlb")
	b := filepath.Join(dir, "b.mlb")
	require.NoError(t, os.WriteFile(a, []byte("basis bas = bas\nin\n  b.mlb\nend\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("basis bas = bas\nin\n  a.mlb\nend\n"), 0o644))

	_, err := expandManifest(a, nil)
	require.Error(t, err)
}

func TestExpandManifestSubstitutesPathVariables(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "sources.mlb")
	require.NoError(t, os.WriteFile(manifestPath, []byte("basis bas = bas\nin\n  $(ROOT)/a.sml\nend\n"), 0o644))

	paths, err := expandManifest(manifestPath, map[string]string{"ROOT": "lib"})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "lib/a.sml")}, paths)
}
