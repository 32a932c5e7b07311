package shade

import (
	"testing"

	"github.com/idursun/reshade/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLayout(t *testing.T) {
	left := layout.NewLeaf(layout.Pt(30, 20))
	right := layout.NewLeaf(layout.P2(layout.Fr(1), layout.Pct(100)))
	row := layout.NewRow(layout.Pt(100, 20), layout.WithChildren(left, right))
	layout.Calculate(row, layout.V(100, 20), layout.V(100, 20), layout.V(0, 0))

	tree := NewTree()
	root := FromLayout(tree, row, func(n layout.Node) Bounds {
		_, container := n.(*layout.Sequence)
		return Bounds{Drawable: !container, Data: n}
	})

	require.Equal(t, 3, tree.Len())
	assert.Equal(t, layout.R(0, 0, 100, 20), tree.Rendered(root))

	children := tree.Children(root)
	require.Len(t, children, 2)
	assert.Equal(t, layout.R(30, 0, 70, 20), tree.Rendered(children[1]))

	got := tree.CheckReshadePoint(root, layout.V(50, 10))
	require.Len(t, got, 1)
	assert.True(t, got[0].Full)

	b, err := tree.Node(got[0].Node)
	require.NoError(t, err)
	assert.Same(t, right, b.Data)
}
