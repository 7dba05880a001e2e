package smlfmt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-smlfmt/smlfmt/pkg/smlfmt"
	"github.com/stretchr/testify/require"
)

func TestFormatProducesStableOutput(t *testing.T) {
	src := "val   x    =    1"
	out, err := smlfmt.Format("t.sml", src, smlfmt.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, "val x = 1\n", out)
}

func TestFormatReturnsFormattedErrorOnLexFailure(t *testing.T) {
	_, err := smlfmt.Format("t.sml", "val x = `", smlfmt.DefaultConfig())
	require.Error(t, err)
}

func TestFormatReturnsFormattedErrorOnParseFailure(t *testing.T) {
	_, err := smlfmt.Format("t.sml", "val = 1", smlfmt.DefaultConfig())
	require.Error(t, err)
}

func TestFormatRejectsInvalidConfig(t *testing.T) {
	cfg := smlfmt.DefaultConfig()
	cfg.MaxWidth = 0
	_, err := smlfmt.Format("t.sml", "val x = 1", cfg)
	require.Error(t, err)
}

func TestFormatFileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sml")
	require.NoError(t, os.WriteFile(path, []byte("val x = 1"), 0o644))

	out, err := smlfmt.FormatFile(path, smlfmt.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, "val x = 1\n", out)
}

func TestWriteFormattedReportsNoChangeWhenAlreadyFormatted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sml")
	require.NoError(t, os.WriteFile(path, []byte("val x = 1\n"), 0o644))

	changed, err := smlfmt.WriteFormatted(path, smlfmt.DefaultConfig())
	require.NoError(t, err)
	require.False(t, changed)
}

func TestWriteFormattedRewritesFileWhenChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sml")
	require.NoError(t, os.WriteFile(path, []byte("val   x =    1"), 0o644))

	changed, err := smlfmt.WriteFormatted(path, smlfmt.DefaultConfig())
	require.NoError(t, err)
	require.True(t, changed)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "val x = 1\n", string(contents))
}
