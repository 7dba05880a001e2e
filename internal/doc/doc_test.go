package doc_test

import (
	"strings"
	"testing"

	"github.com/go-smlfmt/smlfmt/internal/doc"
	"github.com/stretchr/testify/require"
)

func TestTextWidth(t *testing.T) {
	require.Equal(t, 5, doc.Text("hello").FlatWidth())
}

func TestTextTabWidth(t *testing.T) {
	d := doc.TextTabWidth("a\tb", 4)
	require.Equal(t, 6, d.FlatWidth())
}

func TestTextWithEmbeddedNewlineIsInfinite(t *testing.T) {
	d := doc.Text("a\nb")
	require.Equal(t, doc.Infinity, d.FlatWidth())
}

func TestGroupPicksFlatWhenItFits(t *testing.T) {
	d := doc.Group(doc.AboveOrSpace(doc.Text("a"), doc.Text("b")))
	cfg := doc.DefaultConfig()
	out := doc.Render(d, cfg)
	require.Equal(t, "a b", out)
}

func TestGroupBreaksWhenTooWide(t *testing.T) {
	d := doc.Group(doc.AboveOrSpace(doc.Text(strings.Repeat("x", 40)), doc.Text(strings.Repeat("y", 40))))
	cfg := doc.DefaultConfig()
	cfg.MaxWidth = 20
	out := doc.Render(d, cfg)
	require.Equal(t, strings.Repeat("x", 40)+"\n"+strings.Repeat("y", 40), out)
}

func TestBreakForcesBrokenEvenWhenFlatWouldFit(t *testing.T) {
	d := doc.Group(doc.Break(doc.AboveOrSpace(doc.Text("a"), doc.Text("b"))))
	out := doc.Render(d, doc.DefaultConfig())
	require.Equal(t, "a\nb", out)
}

func TestIndentAppliesToBrokenDescendants(t *testing.T) {
	d := doc.Group(doc.Break(doc.Indent(2, doc.AboveOrSpace(doc.Text("a"), doc.Text("b")))))
	out := doc.Render(d, doc.DefaultConfig())
	require.Equal(t, "a\n  b", out)
}

func TestAboveOrBesideAlignsUnderFirstLine(t *testing.T) {
	d := doc.Group(doc.Break(doc.AboveOrBeside(doc.Text("abc"), doc.Text("def"))))
	out := doc.Render(d, doc.DefaultConfig())
	require.Equal(t, "abc\ndef", out)
}

func TestAboveOrBesideAlignsToEnclosingLineStart(t *testing.T) {
	d := doc.Group(doc.Break(doc.AboveOrBeside(doc.Beside(doc.Text("abc"), doc.Text("( ")), doc.Text("def"))))
	out := doc.Render(d, doc.DefaultConfig())
	require.Equal(t, "abc( \ndef", out)
}

func TestSoftSpaceFlatVsBroken(t *testing.T) {
	flat := doc.Render(doc.Group(doc.Beside(doc.Text("a"), doc.Beside(doc.SoftSpace(), doc.Text("b")))), doc.DefaultConfig())
	require.Equal(t, "a b", flat)
	broken := doc.Render(doc.Group(doc.Break(doc.Beside(doc.Text("a"), doc.Beside(doc.SoftSpace(), doc.Text("b"))))), doc.DefaultConfig())
	require.Equal(t, "ab", broken)
}

func TestSequenceFlat(t *testing.T) {
	d := doc.Sequence(doc.Text("("), doc.Text(")"), ",", []doc.Doc{doc.Text("1"), doc.Text("2"), doc.Text("3")})
	out := doc.Render(d, doc.DefaultConfig())
	require.Equal(t, "(1, 2, 3)", out)
}

func TestSequenceBroken(t *testing.T) {
	elems := []doc.Doc{
		doc.Text(strings.Repeat("a", 30)),
		doc.Text(strings.Repeat("b", 30)),
		doc.Text(strings.Repeat("c", 30)),
	}
	d := doc.Sequence(doc.Text("("), doc.Text(")"), ",", elems)
	cfg := doc.DefaultConfig()
	cfg.MaxWidth = 20
	out := doc.Render(d, cfg)
	want := "(" + strings.Repeat("a", 30) +
		"\n," + strings.Repeat("b", 30) +
		"\n," + strings.Repeat("c", 30) + ")"
	require.Equal(t, want, out)
}

func TestSequenceEmpty(t *testing.T) {
	d := doc.Sequence(doc.Text("["), doc.Text("]"), ",", nil)
	require.Equal(t, "[]", doc.Render(d, doc.DefaultConfig()))
}

func TestConfigValidateRejectsOutOfRange(t *testing.T) {
	cfg := doc.DefaultConfig()
	cfg.MaxWidth = 0
	require.NotNil(t, cfg.Validate())

	cfg = doc.DefaultConfig()
	cfg.RibbonFrac = 0
	require.NotNil(t, cfg.Validate())

	cfg = doc.DefaultConfig()
	cfg.IndentWidth = -1
	require.NotNil(t, cfg.Validate())

	cfg = doc.DefaultConfig()
	cfg.TabWidth = 0
	require.NotNil(t, cfg.Validate())

	require.Nil(t, doc.DefaultConfig().Validate())
}

func TestConfigNormalizeRepairsOutOfRange(t *testing.T) {
	cfg := doc.Config{MaxWidth: -5, RibbonFrac: 2, IndentWidth: -3, TabWidth: 0}
	got := cfg.Normalize()
	require.Equal(t, doc.DefaultConfig(), got)
}

func TestRibbonFracNarrowsBreakDecision(t *testing.T) {
	d := doc.Group(doc.AboveOrSpace(doc.Text(strings.Repeat("a", 10)), doc.Text(strings.Repeat("b", 10))))
	cfg := doc.Config{MaxWidth: 80, RibbonFrac: 0.2, IndentWidth: 2, TabWidth: 4}
	out := doc.Render(d, cfg)
	require.Equal(t, strings.Repeat("a", 10)+"\n"+strings.Repeat("b", 10), out)
}
