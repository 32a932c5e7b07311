package shade

import "github.com/idursun/reshade/internal/layout"

// Classifier decides how a laid out node takes part in reshading.
type Classifier func(n layout.Node) Bounds

// FromLayout mirrors a calculated layout tree into t, one region per node,
// and returns the ID of the region created for root. The classifier supplies
// the flags and host data; Pos and Size always come from the node's rendered
// bounds.
func FromLayout(t *Tree, root layout.Node, classify Classifier) ID {
	b := classify(root)
	bounds := root.Layout().Bounds()
	b.Pos, b.Size = bounds.Pos, bounds.Size
	id := t.New(b)

	if s, ok := root.(*layout.Sequence); ok {
		for _, child := range s.Children {
			if err := t.AddChild(id, FromLayout(t, child, classify)); err != nil {
				panic(err)
			}
		}
	}
	return id
}
