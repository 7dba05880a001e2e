package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePathVars(t *testing.T) {
	vars, err := parsePathVars([]string{"SRC_ROOT /home/user/proj", "LIB_ROOT /opt/sml"})
	require.NoError(t, err)
	require.Equal(t, "/home/user/proj", vars["SRC_ROOT"])
	require.Equal(t, "/opt/sml", vars["LIB_ROOT"])
}

func TestParsePathVarsRejectsMalformedEntry(t *testing.T) {
	_, err := parsePathVars([]string{"NO_VALUE_HERE"})
	require.Error(t, err)
}

func TestIsSourceExt(t *testing.T) {
	require.True(t, isSourceExt("a.sml"))
	require.True(t, isSourceExt("a.sig"))
	require.True(t, isSourceExt("a.fun"))
	require.False(t, isSourceExt("a.mlb"))
	require.False(t, isSourceExt("a.txt"))
}

func TestCollectDirFilesFiltersBySourceExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sml"), []byte("val x = 1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.sig"), []byte("signature S = sig end"), 0o644))

	files, err := collectDirFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		require.True(t, isSourceExt(f))
	}
}

func TestExpandPathsPassesThroughPlainFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sml")
	require.NoError(t, os.WriteFile(path, []byte("val x = 1"), 0o644))

	out, err := expandPaths([]string{path}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{path}, out)
}

func TestExpandPathsRejectsDirectoryWithoutRecursiveFlag(t *testing.T) {
	dir := t.TempDir()
	fmtRecursive = false
	_, err := expandPaths([]string{dir}, nil)
	require.Error(t, err)
}
