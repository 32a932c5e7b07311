package layout

import (
	"fmt"

	"github.com/charmbracelet/x/cellbuf"
)

// Rect is an axis-aligned rectangle in pixels.
// Pos is the top-left corner; Size holds width and height.
type Rect struct {
	Pos  Vec
	Size Vec
}

// R creates a Rect from its position and dimensions.
func R(x, y, w, h float64) Rect {
	return Rect{Pos: Vec{X: x, Y: y}, Size: Vec{X: w, Y: h}}
}

func (r Rect) Right() float64  { return r.Pos.X + r.Size.X }
func (r Rect) Bottom() float64 { return r.Pos.Y + r.Size.Y }

// IsZero reports whether either dimension is zero or negative.
func (r Rect) IsZero() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Area returns the area of the rectangle, zero for a zero-area rectangle.
func (r Rect) Area() float64 {
	if r.IsZero() {
		return 0
	}
	return r.Size.X * r.Size.Y
}

// Contains reports whether p lies inside r. All four edges are inside.
func (r Rect) Contains(p Vec) bool {
	return r.Pos.X <= p.X && p.X <= r.Right() && r.Pos.Y <= p.Y && p.Y <= r.Bottom()
}

// Intersects reports whether the two rectangles overlap. A zero-area
// rectangle intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	if r.Right() < other.Pos.X || other.Right() < r.Pos.X {
		return false
	}
	if r.Bottom() < other.Pos.Y || other.Bottom() < r.Pos.Y {
		return false
	}
	return true
}

// Union returns the bounding box of both rectangles.
// A zero-area operand is the identity.
func (r Rect) Union(other Rect) Rect {
	if r.IsZero() {
		return other
	}
	if other.IsZero() {
		return r
	}
	left := min(r.Pos.X, other.Pos.X)
	top := min(r.Pos.Y, other.Pos.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return R(left, top, right-left, bottom-top)
}

// Clip returns the overlap of both rectangles, which may be zero-area.
// A zero-area operand returns the other rectangle unchanged.
func (r Rect) Clip(other Rect) Rect {
	if r.IsZero() {
		return other
	}
	if other.IsZero() {
		return r
	}
	left := max(r.Pos.X, other.Pos.X)
	top := max(r.Pos.Y, other.Pos.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	return R(left, top, max(0, right-left), max(0, bottom-top))
}

// Cell truncates the rectangle to terminal cell coordinates.
func (r Rect) Cell() cellbuf.Rectangle {
	return cellbuf.Rect(int(r.Pos.X), int(r.Pos.Y), int(r.Size.X), int(r.Size.Y))
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y)
}
