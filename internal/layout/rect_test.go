package layout

import (
	"testing"

	"github.com/charmbracelet/x/cellbuf"
	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	r := R(10, 11, 10.4, 20.62)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", R(12, 12, 100, 100), true},
		{"contained", R(12, 12, 1, 1), true},
		{"zero width", R(12, 12, 0, 10), false},
		{"disjoint on x", R(50, 11, 5, 5), false},
		{"disjoint on y", R(10, 60, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(r))
		})
	}
}

func TestRect_IsZero(t *testing.T) {
	assert.False(t, R(10, 11, 10.4, 20.62).IsZero())
	assert.True(t, R(0, 0, 0, 5).IsZero())
	assert.True(t, R(0, 0, 5, -1).IsZero())
	assert.Equal(t, 0.0, R(0, 0, 5, -1).Area())
	assert.Equal(t, 20.0, R(3, 3, 4, 5).Area())
}

func TestRect_Union(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(5, 20, 10, 5)

	assert.Equal(t, R(0, 0, 15, 25), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, a, Rect{}.Union(a))
}

func TestRect_Clip(t *testing.T) {
	a := R(0, 0, 10, 10)

	assert.Equal(t, R(5, 5, 5, 5), a.Clip(R(5, 5, 10, 10)))
	assert.True(t, a.Clip(R(20, 20, 5, 5)).IsZero())
	assert.Equal(t, a, a.Clip(R(3, 3, 0, 0)))
	assert.Equal(t, a, R(3, 3, 0, 0).Clip(a))
}

func TestRect_Contains(t *testing.T) {
	r := R(10, 10, 5, 5)
	assert.True(t, r.Contains(V(10, 10)))
	assert.True(t, r.Contains(V(15, 15)))
	assert.False(t, r.Contains(V(15.1, 12)))
}

func TestRect_Cell(t *testing.T) {
	assert.Equal(t, cellbuf.Rect(10, 11, 10, 20), R(10, 11, 10.4, 20.62).Cell())
	assert.Equal(t, "Rect(10, 11, 10.4, 20.62)", R(10, 11, 10.4, 20.62).String())
}
