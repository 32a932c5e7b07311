package layout

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/tree"
)

// Dump renders the resolved geometry of n and its descendants, one node per
// line, e.g. "Row[x=0 y=0 w=100 h=20]".
func Dump(n Node) string {
	return build(n, func(n Node) string {
		b := n.Layout()
		return fmt.Sprintf("%s[x=%g y=%g w=%g h=%g]", kindName(n), b.Pos.X, b.Pos.Y, b.Rendered.X, b.Rendered.Y)
	}).String()
}

// Describe renders the requested dimensions and preferred minimums of n and
// its descendants, e.g. "Leaf[x=10px y=1f minx=10]".
func Describe(n Node) string {
	return build(n, func(n Node) string {
		b := n.Layout()
		label := kindName(n) + "[x=" + b.Dim.X.String() + " y=" + b.Dim.Y.String()
		if p := b.Preferred[X]; p.Set {
			label += " minx=" + strconv.FormatFloat(p.Px, 'f', -1, 64)
		}
		if p := b.Preferred[Y]; p.Set {
			label += " miny=" + strconv.FormatFloat(p.Px, 'f', -1, 64)
		}
		return label + "]"
	}).String()
}

func build(n Node, label func(Node) string) *tree.Tree {
	t := tree.Root(label(n)).Enumerator(tree.RoundedEnumerator)
	if s, ok := n.(*Sequence); ok {
		for _, child := range s.Children {
			if _, nested := child.(*Sequence); nested {
				t.Child(build(child, label))
				continue
			}
			t.Child(label(child))
		}
	}
	return t
}

func kindName(n Node) string {
	switch n := n.(type) {
	case *Sequence:
		if n.Main == X {
			return "Row"
		}
		return "Column"
	default:
		return "Leaf"
	}
}
