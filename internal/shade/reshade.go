package shade

import (
	"slices"

	"github.com/idursun/reshade/internal/layout"
)

// Reshade tells a renderer what to repaint for one node: the whole node when
// Full is set, otherwise only Regions.
type Reshade struct {
	Node    ID
	Full    bool
	Regions []layout.Rect
}

// CheckReshadePoint reports what to repaint after a change at a single
// point. A node is hit when p lies inside its rendered bounds, edges
// included; a partial node that contains p repaints the one-pixel square
// at p.
func (t *Tree) CheckReshadePoint(id ID, p layout.Vec) []Reshade {
	return t.reshade(id, pointQuery(p))
}

// CheckReshade walks the hierarchy under id and reports, in pre-order with a
// node ahead of its descendants, every node that must be repainted because
// query changed.
//
// A drawable node that is not partial repaints whole, together with all of
// its drawable descendants, and the walk stops there. A partial drawable node
// collects its own overlap with query plus whatever its children report,
// clipped to its declared area; when those regions cover nearly all of it
// they collapse into a full repaint. Non-drawable nodes only route the query
// to their children.
func (t *Tree) CheckReshade(id ID, query layout.Rect) []Reshade {
	return t.reshade(id, rectQuery(query))
}

type query interface {
	hits(rendered layout.Rect) bool
	// seed is the part of shadable the change itself covers.
	seed(shadable layout.Rect) layout.Rect
}

type rectQuery layout.Rect

func (q rectQuery) hits(rendered layout.Rect) bool {
	return rendered.Intersects(layout.Rect(q))
}

func (q rectQuery) seed(shadable layout.Rect) layout.Rect {
	return layout.Rect(q).Clip(shadable)
}

type pointQuery layout.Vec

func (q pointQuery) hits(rendered layout.Rect) bool {
	return rendered.Contains(layout.Vec(q))
}

func (q pointQuery) seed(shadable layout.Rect) layout.Rect {
	if !shadable.Contains(layout.Vec(q)) {
		return layout.Rect{}
	}
	return layout.Rect{Pos: layout.Vec(q), Size: layout.V(1, 1)}.Clip(shadable)
}

func (t *Tree) reshade(id ID, q query) []Reshade {
	if !t.valid(id) {
		return nil
	}
	n := &t.nodes[id]
	if n.rendered.IsZero() || !q.hits(n.rendered) {
		return nil
	}

	if n.Drawable && !n.Partial {
		out := []Reshade{{Node: id, Full: true}}
		for _, d := range t.DrawableChildren(id) {
			out = append(out, Reshade{Node: d, Full: true})
		}
		return out
	}

	var children []Reshade
	for _, c := range n.children {
		children = append(children, t.reshade(c, q)...)
	}
	if !n.Drawable {
		return children
	}

	shadable := n.Rect()
	var regions regionSet
	regions.add(q.seed(shadable))
	for _, r := range children {
		if r.Full {
			regions.add(t.nodes[r.Node].rendered.Clip(shadable))
			continue
		}
		for _, region := range r.Regions {
			regions.add(region.Clip(shadable))
		}
	}

	if len(regions) == 0 {
		return children
	}
	own := Reshade{Node: id, Regions: regions}
	if regions.area() >= t.coalesceRatio*shadable.Area() {
		own = Reshade{Node: id, Full: true}
	}
	return append([]Reshade{own}, children...)
}

// regionSet keeps distinct non-empty rectangles in insertion order.
type regionSet []layout.Rect

func (s *regionSet) add(r layout.Rect) {
	if r.IsZero() || slices.Contains(*s, r) {
		return
	}
	*s = append(*s, r)
}

func (s regionSet) area() float64 {
	var total float64
	for _, r := range s {
		total += r.Area()
	}
	return total
}
