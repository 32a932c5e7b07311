package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var screen = V(1000, 1000)

func positions(s *Sequence) []Vec {
	out := make([]Vec, len(s.Children))
	for i, child := range s.Children {
		out[i] = child.Layout().Pos
	}
	return out
}

func sizes(s *Sequence) []Vec {
	out := make([]Vec, len(s.Children))
	for i, child := range s.Children {
		out[i] = child.Layout().Rendered
	}
	return out
}

func TestNewSequence_RejectsSameAxes(t *testing.T) {
	_, err := NewSequence(Pt(10, 10), WithAxes(X, X))
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewSequence(Pt(10, 10), WithAxes(Axis(3), Y))
	assert.ErrorIs(t, err, ErrConfiguration)

	s, err := NewSequence(Pt(10, 10), WithAxes(Y, X))
	require.NoError(t, err)
	assert.Equal(t, Y, s.Main)
}

func TestSequence_FixedChildrenStart(t *testing.T) {
	row := NewRow(Pt(100, 50), WithChildren(
		NewLeaf(Pt(10, 10)),
		NewLeaf(Pt(10, 10)),
		NewLeaf(Pt(10, 10)),
	))
	Calculate(row, V(100, 50), screen, Vec{})

	assert.Equal(t, []Vec{V(0, 0), V(10, 0), V(20, 0)}, positions(row))
}

func TestSequence_SingleFlexTakesAllSpace(t *testing.T) {
	row := NewRow(Pt(100, 50), WithChildren(NewLeaf(P2(Fr(1), Px(10)))))
	Calculate(row, V(100, 50), screen, Vec{})

	assert.Equal(t, V(100, 10), row.Children[0].Layout().Rendered)
}

func TestSequence_SpaceBetweenSingleChildIsCentered(t *testing.T) {
	row := NewRow(Pt(100, 50), WithJustify(JustifySpaceBetween), WithChildren(NewLeaf(Pt(20, 10))))
	Calculate(row, V(100, 50), screen, Vec{})

	assert.Equal(t, 40.0, row.Children[0].Layout().Pos.X)
}

func TestSequence_FixedPassClampsInDeclaredOrder(t *testing.T) {
	row := NewRow(Pt(100, 10), WithChildren(
		NewLeaf(Pt(60, 10)),
		NewLeaf(Pt(60, 10)),
		NewLeaf(Pt(10, 10)),
	))
	Calculate(row, V(100, 10), screen, Vec{})

	assert.Equal(t, []Vec{V(60, 10), V(40, 10), V(0, 10)}, sizes(row))
	assert.Equal(t, []Vec{V(0, 0), V(60, 0), V(100, 0)}, positions(row))
}

func TestSequence_FlexSharesRemainderByWeight(t *testing.T) {
	row := NewRow(Pt(100, 10), WithChildren(
		NewLeaf(Pt(20, 10)),
		NewLeaf(P2(Fr(1), Px(10))),
		NewLeaf(P2(Fr(3), Px(10))),
	))
	Calculate(row, V(100, 10), screen, Vec{})

	assert.Equal(t, []Vec{V(20, 10), V(20, 10), V(60, 10)}, sizes(row))
	assert.Equal(t, []Vec{V(0, 0), V(20, 0), V(40, 0)}, positions(row))
}

func TestSequence_PercentAndViewportChildren(t *testing.T) {
	row := NewRow(Pt(100, 100), WithChildren(
		NewLeaf(P2(Pct(25), Pct(50))),
		NewLeaf(P2(Vw(10), Vh(50))),
	))
	Calculate(row, V(100, 100), V(500, 40), Vec{})

	assert.Equal(t, []Vec{V(25, 50), V(50, 20)}, sizes(row))
	assert.Equal(t, []Vec{V(0, 0), V(25, 0)}, positions(row))
}

func TestSequence_FlexChildPinnedAtMinimum(t *testing.T) {
	row := NewRow(Pt(100, 10), WithChildren(
		NewLeaf(P2(Fr(1), Px(10)), MinOf(60)),
		NewLeaf(P2(Fr(1), Px(10))),
	))
	Calculate(row, V(100, 10), screen, Vec{})

	assert.Equal(t, []Vec{V(60, 10), V(40, 10)}, sizes(row))
	assert.Equal(t, []Vec{V(0, 0), V(60, 0)}, positions(row))
}

func TestSequence_FlexMinimumEqualToShareIsNotPinned(t *testing.T) {
	row := NewRow(Pt(100, 10), WithChildren(
		NewLeaf(P2(Fr(1), Px(10)), MinOf(50)),
		NewLeaf(P2(Fr(1), Px(10))),
	))
	Calculate(row, V(100, 10), screen, Vec{})

	assert.Equal(t, []Vec{V(50, 10), V(50, 10)}, sizes(row))
}

func TestSequence_SecondFlexRoundIsNotIterated(t *testing.T) {
	// After the first child is pinned, the third child's share drops below
	// its own minimum. The second round does not correct it.
	row := NewRow(Pt(100, 10), WithChildren(
		NewLeaf(P2(Fr(1), Px(10)), MinOf(40)),
		NewLeaf(P2(Fr(1), Px(10))),
		NewLeaf(P2(Fr(2), Px(10)), MinOf(45)),
	))
	Calculate(row, V(100, 10), screen, Vec{})

	assert.InDeltaSlice(t, []float64{40, 20, 40}, []float64{
		row.Children[0].Layout().Rendered.X,
		row.Children[1].Layout().Rendered.X,
		row.Children[2].Layout().Rendered.X,
	}, 1e-9)
}

func TestSequence_OverdrawnRemainderClampsToZero(t *testing.T) {
	row := NewRow(Pt(100, 10), WithChildren(
		NewLeaf(Pt(30, 10)),
		NewLeaf(P2(Fr(1), Px(10)), MinOf(90)),
		NewLeaf(P2(Fr(1), Px(10))),
	))
	Calculate(row, V(100, 10), screen, Vec{})

	assert.Equal(t, []Vec{V(30, 10), V(90, 10), V(0, 10)}, sizes(row))
}

func TestSequence_ZeroWeightFlexRendersEmpty(t *testing.T) {
	row := NewRow(Pt(100, 10), WithChildren(
		NewLeaf(Pt(30, 10)),
		NewLeaf(P2(Fr(0), Px(10))),
	))
	Calculate(row, V(100, 10), screen, Vec{})

	assert.Equal(t, V(0, 10), row.Children[1].Layout().Rendered)
}

func TestSequence_CrossAlignment(t *testing.T) {
	col := NewColumn(Pt(100, 100), WithAlign(AlignCenter), WithJustify(JustifyEnd), WithChildren(
		NewLeaf(Pt(20, 30)),
		NewLeaf(Pt(60, 10)),
	))
	Calculate(col, V(100, 100), screen, Vec{})

	assert.Equal(t, []Vec{V(40, 60), V(20, 90)}, positions(col))
}

func nestedRow() (*Sequence, *Sequence) {
	col := NewColumn(P2(Fr(1), Pct(100)), WithJustify(JustifyEnd), WithChildren(
		NewLeaf(Pt(10, 5)),
		NewLeaf(Pt(10, 5)),
	))
	row := NewRow(Pt(100, 20), WithChildren(NewLeaf(Pt(30, 20)), col))
	return row, col
}

func TestSequence_NestedOffsets(t *testing.T) {
	row, col := nestedRow()
	Calculate(row, V(100, 20), screen, V(5, 5))

	assert.Equal(t, V(70, 20), col.Rendered)
	assert.Equal(t, V(35, 5), col.Pos)
	assert.Equal(t, []Vec{V(5, 5), V(35, 5)}, positions(row))
	assert.Equal(t, []Vec{V(35, 15), V(35, 20)}, positions(col))
}

func TestSequence_MoveShiftsDescendants(t *testing.T) {
	row, col := nestedRow()
	Calculate(row, V(100, 20), screen, V(5, 5))

	row.Move(Vec{})

	assert.Equal(t, Vec{}, row.Pos)
	assert.Equal(t, []Vec{V(0, 0), V(30, 0)}, positions(row))
	assert.Equal(t, []Vec{V(30, 10), V(30, 15)}, positions(col))
	assert.Equal(t, V(70, 20), col.Rendered)
}

func TestSequence_Prefer(t *testing.T) {
	row := NewRow(P2(Fr(1), Fr(1)), WithChildren(
		NewLeaf(Pt(10, 20)),
		NewLeaf(Pt(15, 5)),
		NewLeaf(P2(Pct(50), Px(7))),
	))
	row.Prefer()
	assert.Equal(t, [2]Min{MinOf(25), MinOf(20)}, row.Preferred)

	fixed := NewRow(P2(Px(300), Fr(1)), WithChildren(NewLeaf(Pt(10, 20))))
	fixed.Prefer()
	assert.Equal(t, [2]Min{MinOf(300), MinOf(20)}, fixed.Preferred)

	col := NewColumn(P2(Px(8), Px(9)), WithChildren(NewLeaf(Pt(10, 20))))
	col.Prefer()
	assert.Equal(t, [2]Min{MinOf(8), MinOf(9)}, col.Preferred)
}

func TestSequence_NestedMinimumPinsFlexContainer(t *testing.T) {
	inner := NewColumn(P2(Fr(1), Pct(100)), WithChildren(NewLeaf(Pt(70, 10))))
	row := NewRow(Pt(100, 10), WithChildren(inner, NewLeaf(P2(Fr(1), Px(10)))))
	Calculate(row, V(100, 10), screen, Vec{})

	assert.Equal(t, 70.0, inner.Rendered.X)
	assert.Equal(t, 30.0, row.Children[1].Layout().Rendered.X)
}

func TestLeaf_Prefer(t *testing.T) {
	l := NewLeaf(Pt(10, 5), MinOf(20))
	l.Prefer()
	assert.Equal(t, [2]Min{MinOf(20), MinOf(5)}, l.Preferred)

	flex := NewLeaf(P2(Pct(10), Fr(1)))
	flex.Prefer()
	assert.Equal(t, [2]Min{}, flex.Preferred)
}

func TestBox_CollidesWith(t *testing.T) {
	l := NewLeaf(Pt(10, 10))
	Calculate(l, V(100, 100), screen, V(5, 5))

	assert.True(t, l.CollidesWith(V(5, 5)))
	assert.True(t, l.CollidesWith(V(15, 15)))
	assert.False(t, l.CollidesWith(V(16, 10)))
	assert.Equal(t, R(5, 5, 10, 10), l.Bounds())
}
