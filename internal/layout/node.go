package layout

// Node is a participant in a layout pass. The set of implementations is
// closed: *Leaf and *Sequence.
type Node interface {
	// Prefer computes the node's preferred minimum size, bottom-up.
	Prefer()

	// Render resolves the node's size against the space its parent hands it
	// and places it at offset.
	Render(available, viewport, offset Vec)

	// Move places an already rendered node at a new position.
	Move(to Vec)

	// Layout exposes the node's geometry.
	Layout() *Box

	sealed()
}

// Box holds the geometry shared by every node.
type Box struct {
	// Dim is the requested size.
	Dim Point2

	// Pos is the absolute position in pixels, set by Render and Move.
	Pos Vec

	// Rendered is the resolved absolute size in pixels.
	Rendered Vec

	// Preferred is the minimum pixel size per axis, indexed by Axis.
	Preferred [2]Min
}

func (b *Box) Layout() *Box {
	return b
}

// Render is the default: resolve Dim and take offset as the position.
func (b *Box) Render(available, viewport, offset Vec) {
	b.Rendered = b.Dim.Resolve(available, viewport)
	b.Pos = offset
}

func (b *Box) Move(to Vec) {
	b.Pos = to
}

// Bounds returns the rendered rectangle.
func (b *Box) Bounds() Rect {
	return Rect{Pos: b.Pos, Size: b.Rendered}
}

// CollidesWith reports whether point lies within the rendered rectangle,
// edges included.
func (b *Box) CollidesWith(point Vec) bool {
	return b.Bounds().Contains(point)
}

// Calculate runs a full layout pass on root: preferences bottom-up, then
// sizes and positions top-down.
func Calculate(root Node, available, viewport, offset Vec) {
	root.Prefer()
	root.Render(available, viewport, offset)
}
