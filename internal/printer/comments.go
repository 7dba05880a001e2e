package printer

import (
	"strings"

	"github.com/go-smlfmt/smlfmt/internal/doc"
	"github.com/go-smlfmt/smlfmt/internal/token"
)

// leading renders t's attached comments as raw text preceding t, each
// followed by a line break back to indent (spec.md §4.5: "comments attached
// to the lead token of a construct are emitted as raw text preceding that
// construct at the same indent").
func (p *printer) leading(t token.Token, indent int) doc.Doc {
	if len(t.LeadingComments) == 0 {
		return doc.Empty()
	}
	out := doc.Empty()
	pad := strings.Repeat(" ", indent)
	for _, c := range t.LeadingComments {
		out = doc.Beside(out, doc.TextTabWidth(reindentComment(c.Text, indent)+"\n"+pad, p.cfg.TabWidth))
	}
	return out
}

// reindentComment keeps a comment's first line as written and reindents any
// continuation lines of a multi-line block comment to indent, stripping
// whatever common leading whitespace the original source gave them (spec.md
// §4.5: "multi-line block comments keep their original whitespace trim
// after normalizing the first-column indentation").
func reindentComment(text string, indent int) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return text
	}
	minLead := -1
	for _, l := range lines[1:] {
		trimmed := strings.TrimLeft(l, " \t")
		if trimmed == "" {
			continue
		}
		lead := len(l) - len(trimmed)
		if minLead < 0 || lead < minLead {
			minLead = lead
		}
	}
	if minLead < 0 {
		minLead = 0
	}
	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	b.WriteString(lines[0])
	for _, l := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(pad)
		trimmed := strings.TrimLeft(l, " \t")
		if len(l)-len(trimmed) >= minLead {
			b.WriteString(l[minLead:])
		} else {
			b.WriteString(trimmed)
		}
	}
	return b.String()
}
