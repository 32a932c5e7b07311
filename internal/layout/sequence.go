package layout

import "fmt"

// Sequence lays its children out one after another along its main axis.
// Rows use X as the main axis, columns use Y.
type Sequence struct {
	Box
	Children []Node
	Main     Axis
	Cross    Axis
	Justify  Justify
	Align    Align
}

var _ Node = (*Sequence)(nil)

type SequenceOption func(*Sequence)

// WithAxes sets the main and cross axis. They must differ.
func WithAxes(main, cross Axis) SequenceOption {
	return func(s *Sequence) {
		s.Main = main
		s.Cross = cross
	}
}

func WithJustify(j Justify) SequenceOption {
	return func(s *Sequence) { s.Justify = j }
}

func WithAlign(a Align) SequenceOption {
	return func(s *Sequence) { s.Align = a }
}

func WithChildren(children ...Node) SequenceOption {
	return func(s *Sequence) { s.Children = append(s.Children, children...) }
}

// NewSequence creates a Sequence requesting dim. Without WithAxes the main
// axis is X.
func NewSequence(dim Point2, opts ...SequenceOption) (*Sequence, error) {
	s := &Sequence{Box: Box{Dim: dim}, Main: X, Cross: Y}
	for _, opt := range opts {
		opt(s)
	}
	if s.Main > Y || s.Cross > Y || s.Main == s.Cross {
		return nil, fmt.Errorf("%w: main axis %s and cross axis %s must be opposite", ErrConfiguration, s.Main, s.Cross)
	}
	return s, nil
}

// NewRow creates a Sequence laid out along X.
func NewRow(dim Point2, opts ...SequenceOption) *Sequence {
	s, _ := NewSequence(dim, append(opts, WithAxes(X, Y))...)
	return s
}

// NewColumn creates a Sequence laid out along Y.
func NewColumn(dim Point2, opts ...SequenceOption) *Sequence {
	s, _ := NewSequence(dim, append(opts, WithAxes(Y, X))...)
	return s
}

// Append adds children at the end of the sequence.
func (s *Sequence) Append(children ...Node) {
	s.Children = append(s.Children, children...)
}

// Prefer sums the children's preferred main sizes and takes the largest
// preferred cross size. A pixel-sized axis on the sequence itself overrides
// what the children ask for.
func (s *Sequence) Prefer() {
	var main, cross float64
	for _, child := range s.Children {
		child.Prefer()
		p := child.Layout().Preferred
		main += p[s.Main].Or0()
		cross = max(cross, p[s.Cross].Or0())
	}
	s.Preferred[s.Main] = MinOf(main)
	s.Preferred[s.Cross] = MinOf(cross)

	for _, axis := range [...]Axis{s.Main, s.Cross} {
		if m := s.Dim.Get(axis); m.Kind == Pixel {
			s.Preferred[axis] = MinOf(m.Value)
		}
	}
}

// Render sizes the sequence, hands out main-axis space to the children and
// positions them.
//
// Fixed children (px, %, vw, vh) are served first in declared order, so an
// earlier child keeps its size when a later one no longer fits. Flex children
// share what is left by weight in two rounds: a child whose preferred size is
// larger than its share is pinned at that size, then the rest split the
// remainder once. A minimum that the second round would have satisfied is not
// revisited, and a minimum broken by the second round is not corrected. When
// pinned children overdraw the remainder, the second-round unit is clamped
// to zero instead of going negative.
func (s *Sequence) Render(available, viewport, offset Vec) {
	s.Rendered = s.Dim.Resolve(available, viewport)
	s.Pos = offset
	space := s.Rendered
	mainSize := space.Get(s.Main)

	consumed := 0.0
	for _, child := range s.Children {
		b := child.Layout()
		if b.Dim.Get(s.Main).Kind == Flex {
			continue
		}
		child.Render(space, viewport, offset)
		if consumed+b.Rendered.Get(s.Main) > mainSize {
			b.Rendered = b.Rendered.With(s.Main, mainSize-consumed)
		}
		consumed = min(consumed+b.Rendered.Get(s.Main), mainSize)
	}

	s.distributeFlex(space, viewport, offset, mainSize-consumed)
	s.position(offset)
}

func (s *Sequence) distributeFlex(space, viewport, offset Vec, remaining float64) {
	var flex []Node
	weight := 0.0
	for _, child := range s.Children {
		if m := child.Layout().Dim.Get(s.Main); m.Kind == Flex {
			flex = append(flex, child)
			weight += m.Value
		}
	}
	if len(flex) == 0 {
		return
	}

	extensible := flex
	if weight != 0 {
		extensible = nil
		unit := remaining / weight
		for _, child := range flex {
			b := child.Layout()
			w := b.Dim.Get(s.Main).Value
			if preferred := b.Preferred[s.Main].Or0(); preferred > unit*w {
				child.Render(space.With(s.Main, preferred), viewport, offset)
				weight -= w
				remaining -= preferred
				continue
			}
			extensible = append(extensible, child)
		}
	}

	unit := 0.0
	if weight > 0 {
		unit = max(0, remaining/weight)
	}
	for _, child := range extensible {
		w := child.Layout().Dim.Get(s.Main).Value
		child.Render(space.With(s.Main, unit*w), viewport, offset)
	}
}

func (s *Sequence) position(offset Vec) {
	mains := make([]float64, len(s.Children))
	for i, child := range s.Children {
		mains[i] = child.Layout().Rendered.Get(s.Main)
	}
	offsets := Distribute(s.Rendered.Get(s.Main), mains, s.Justify)
	crossSize := s.Rendered.Get(s.Cross)

	for i, child := range s.Children {
		cross := s.Align.Offset(crossSize, child.Layout().Rendered.Get(s.Cross))
		rel := Vec{}.With(s.Main, offsets[i]).With(s.Cross, cross)
		child.Move(offset.Add(rel))
	}
}

// Move places the sequence at to and shifts every child by the same amount,
// keeping the relative layout without a new pass.
func (s *Sequence) Move(to Vec) {
	delta := to.Sub(s.Pos)
	for _, child := range s.Children {
		child.Move(child.Layout().Pos.Add(delta))
	}
	s.Pos = to
}

func (s *Sequence) sealed() {}
