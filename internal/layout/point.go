package layout

import "fmt"

// Axis selects one of the two layout dimensions.
type Axis uint8

const (
	X Axis = iota
	Y
)

// Other returns the orthogonal axis.
func (a Axis) Other() Axis {
	if a == X {
		return Y
	}
	return X
}

func (a Axis) String() string {
	if a == X {
		return "x"
	}
	return "y"
}

// Vec is an absolute pixel pair.
type Vec struct {
	X, Y float64
}

func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Get returns the component on axis a.
func (v Vec) Get(a Axis) float64 {
	if a == X {
		return v.X
	}
	return v.Y
}

// With returns a copy of v with the component on axis a replaced.
func (v Vec) With(a Axis, f float64) Vec {
	if a == X {
		v.X = f
	} else {
		v.Y = f
	}
	return v
}

// Point2 pairs a Measurement per axis.
type Point2 struct {
	X, Y Measurement
}

// Pt builds a pixel Point2.
func Pt(x, y float64) Point2 {
	return Point2{X: Px(x), Y: Px(y)}
}

// P2 builds a Point2 from two measurements.
func P2(x, y Measurement) Point2 {
	return Point2{X: x, Y: y}
}

// ParsePoint2 parses one unit literal per axis.
func ParsePoint2(x, y string) (Point2, error) {
	mx, err := Parse(x)
	if err != nil {
		return Point2{}, err
	}
	my, err := Parse(y)
	if err != nil {
		return Point2{}, err
	}
	return Point2{X: mx, Y: my}, nil
}

func (p Point2) Get(a Axis) Measurement {
	if a == X {
		return p.X
	}
	return p.Y
}

func (p Point2) With(a Axis, m Measurement) Point2 {
	if a == X {
		p.X = m
	} else {
		p.Y = m
	}
	return p
}

// Resolve converts both components to pixels. Viewport units read the
// viewport width or height according to their kind, not their axis.
func (p Point2) Resolve(available, viewport Vec) Vec {
	return Vec{
		X: p.X.Resolve(available.X, viewportAxis(p.X.Kind, viewport)),
		Y: p.Y.Resolve(available.Y, viewportAxis(p.Y.Kind, viewport)),
	}
}

func viewportAxis(k Kind, viewport Vec) float64 {
	if k == ViewportHeight {
		return viewport.Y
	}
	return viewport.X
}

func (p Point2) apply(other Point2, op func(a, b Measurement) (Measurement, error)) (Point2, error) {
	x, err := op(p.X, other.X)
	if err != nil {
		return Point2{}, fmt.Errorf("x: %w", err)
	}
	y, err := op(p.Y, other.Y)
	if err != nil {
		return Point2{}, fmt.Errorf("y: %w", err)
	}
	return Point2{X: x, Y: y}, nil
}

func (p Point2) Add(other Point2) (Point2, error) { return p.apply(other, Measurement.Add) }
func (p Point2) Sub(other Point2) (Point2, error) { return p.apply(other, Measurement.Sub) }
func (p Point2) Mul(other Point2) (Point2, error) { return p.apply(other, Measurement.Mul) }
func (p Point2) Div(other Point2) (Point2, error) { return p.apply(other, Measurement.Div) }

func (p Point2) String() string {
	return "(" + p.X.String() + ", " + p.Y.String() + ")"
}

// Min is an optional minimum size in pixels.
type Min struct {
	Px  float64
	Set bool
}

func MinOf(px float64) Min {
	return Min{Px: px, Set: true}
}

// Or0 returns the minimum, treating an unset value as zero.
func (m Min) Or0() float64 {
	if !m.Set {
		return 0
	}
	return m.Px
}
