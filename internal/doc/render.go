package doc

import (
	"fmt"
	"strings"

	"github.com/go-smlfmt/smlfmt/internal/diag"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// emptyPos anchors configuration diagnostics, which have no source
// position of their own.
var emptyPos token.Position

// Config holds the layout parameters a translator and renderer share
// (spec.md §4.4).
type Config struct {
	MaxWidth    int     // default 80
	RibbonFrac  float64 // default 1.0, clamped to (0, 1]
	IndentWidth int     // default 2
	TabWidth    int     // default 4
}

// DefaultConfig returns spec.md §4.4's defaults.
func DefaultConfig() Config {
	return Config{MaxWidth: 80, RibbonFrac: 1.0, IndentWidth: 2, TabWidth: 4}
}

// Normalize resets each out-of-range field to its default value. Use
// Validate instead where an out-of-range value should be a configuration
// error (spec.md §7) rather than silently repaired.
func (c Config) Normalize() Config {
	if c.MaxWidth < 1 {
		c.MaxWidth = 80
	}
	if c.RibbonFrac <= 0 || c.RibbonFrac > 1 {
		c.RibbonFrac = 1.0
	}
	if c.IndentWidth < 0 {
		c.IndentWidth = 2
	}
	if c.TabWidth < 1 {
		c.TabWidth = 4
	}
	return c
}

// Validate reports a configuration error (spec.md §7) for any field outside
// its documented legal range, instead of silently repairing it the way
// Normalize does.
func (c Config) Validate() *diag.Error {
	switch {
	case c.MaxWidth < 1:
		return diag.New(diag.KindConfig, emptyPos, fmt.Sprintf("-max-width must be >= 1, got %d", c.MaxWidth))
	case c.RibbonFrac <= 0 || c.RibbonFrac > 1:
		return diag.New(diag.KindConfig, emptyPos, fmt.Sprintf("-ribbon-frac must be in (0, 1], got %v", c.RibbonFrac))
	case c.IndentWidth < 0:
		return diag.New(diag.KindConfig, emptyPos, fmt.Sprintf("-indent-width must be >= 0, got %d", c.IndentWidth))
	case c.TabWidth < 1:
		return diag.New(diag.KindConfig, emptyPos, fmt.Sprintf("-tab-width must be >= 1, got %d", c.TabWidth))
	default:
		return nil
	}
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

// Render lays d out into final text under cfg, single-pass, guided
// entirely by each node's precomputed flat width (spec.md §4.4: "linear
// time in document size").
func Render(d Doc, cfg Config) string {
	var b strings.Builder
	renderInto(&b, d, cfg, 0, 0, 0, modeBreak)
	return b.String()
}

// renderInto appends d's rendering to b and returns the resulting (column,
// lineStart): column is the cursor position after d, lineStart is the
// column at which the current (last) output line began — needed so a
// broken aboveOrBeside can align its continuation under the left operand.
func renderInto(b *strings.Builder, d Doc, cfg Config, col, lineStart, indent int, m mode) (int, int) {
	switch d.kind {
	case kindEmpty:
		return col, lineStart

	case kindText:
		if d.width >= Infinity {
			idx := strings.LastIndexByte(d.text, '\n')
			b.WriteString(d.text)
			return len(d.text) - idx - 1, 0
		}
		b.WriteString(d.text)
		return col + d.width, lineStart

	case kindSpace:
		b.WriteByte(' ')
		return col + 1, lineStart

	case kindSoftSpace:
		if m == modeFlat {
			b.WriteByte(' ')
			return col + 1, lineStart
		}
		return col, lineStart

	case kindBeside:
		col, lineStart = renderInto(b, *d.a, cfg, col, lineStart, indent, m)
		return renderInto(b, *d.b, cfg, col, lineStart, indent, m)

	case kindAboveOrSpace:
		if m == modeFlat {
			col, lineStart = renderInto(b, *d.a, cfg, col, lineStart, indent, m)
			b.WriteByte(' ')
			return renderInto(b, *d.b, cfg, col+1, lineStart, indent, m)
		}
		col, _ = renderInto(b, *d.a, cfg, col, lineStart, indent, m)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", indent))
		return renderInto(b, *d.b, cfg, indent, indent, indent, m)

	case kindAboveOrBeside:
		if m == modeFlat {
			col, lineStart = renderInto(b, *d.a, cfg, col, lineStart, indent, m)
			return renderInto(b, *d.b, cfg, col, lineStart, indent, m)
		}
		_, ls := renderInto(b, *d.a, cfg, col, lineStart, indent, m)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", ls))
		return renderInto(b, *d.b, cfg, ls, ls, indent, m)

	case kindIndent:
		return renderInto(b, *d.a, cfg, col, lineStart, indent+d.n, m)

	case kindBreak:
		return renderInto(b, *d.a, cfg, col, lineStart, indent, m)

	case kindGroup:
		if fitsFlat(*d.a, cfg, col, indent) {
			return renderInto(b, *d.a, cfg, col, lineStart, indent, modeFlat)
		}
		return renderInto(b, *d.a, cfg, col, lineStart, indent, modeBreak)

	default:
		return col, lineStart
	}
}

// fitsFlat implements spec.md §4.4's group decision rule.
func fitsFlat(d Doc, cfg Config, col, indent int) bool {
	w := d.FlatWidth()
	if w >= Infinity {
		return false
	}
	remaining := cfg.MaxWidth - col
	ribbon := int(cfg.RibbonFrac * float64(cfg.MaxWidth-indent))
	if ribbon < remaining {
		remaining = ribbon
	}
	return w <= remaining
}
