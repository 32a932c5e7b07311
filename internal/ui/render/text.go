package render

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Truncate shortens s to at most width terminal cells, replacing the cut
// tail with an ellipsis. Grapheme clusters are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString(ellipsis)
	return b.String()
}
