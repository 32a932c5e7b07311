package layout

// Leaf is a node without children that occupies its requested size.
type Leaf struct {
	Box
}

var _ Node = (*Leaf)(nil)

// NewLeaf creates a Leaf requesting dim. Optional minimums are given per axis
// in the order x, y.
func NewLeaf(dim Point2, minimums ...Min) *Leaf {
	l := &Leaf{Box: Box{Dim: dim}}
	copy(l.Preferred[:], minimums)
	return l
}

// Prefer raises the preferred size on each pixel-sized axis to the requested
// pixel value. Other kinds leave the preference untouched.
func (l *Leaf) Prefer() {
	for _, axis := range [...]Axis{X, Y} {
		m := l.Dim.Get(axis)
		if m.Kind != Pixel {
			continue
		}
		l.Preferred[axis] = MinOf(max(l.Preferred[axis].Or0(), m.Value))
	}
}

func (l *Leaf) sealed() {}
