package shade

import (
	"errors"
	"fmt"
	"slices"

	"github.com/idursun/reshade/internal/layout"
)

var (
	ErrUnknownNode = errors.New("shade: unknown node")
	ErrAttached    = errors.New("shade: node already has a parent")
	ErrCycle       = errors.New("shade: node is an ancestor of the new parent")
	ErrNotChild    = errors.New("shade: node is not a child of parent")
)

// DefaultCoalesceRatio is the share of a partial node's own area above which
// its dirty regions are replaced by a single full redraw. It sits just under 1
// to absorb floating-point slack.
const DefaultCoalesceRatio = 0.98

// ID identifies a node inside a Tree.
type ID int

// None is the ID of a missing parent.
const None ID = -1

// Bounds declares the area a drawable widget may paint.
type Bounds struct {
	Pos  layout.Vec
	Size layout.Vec

	// Drawable nodes are reported by reshade queries.
	Drawable bool

	// Partial nodes can redraw an arbitrary sub-rectangle instead of their
	// whole area.
	Partial bool

	// Name and Data are carried for the host and never read by the tree.
	Name string
	Data any
}

// Rect returns the declared area.
func (b Bounds) Rect() layout.Rect {
	return layout.Rect{Pos: b.Pos, Size: b.Size}
}

type node struct {
	Bounds
	rendered layout.Rect
	parent   ID
	root     ID
	children []ID
}

// Tree owns every node of one or more region hierarchies. Nodes refer to
// their parent and root by ID, never by pointer.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes         []node
	coalesceRatio float64
}

type Option func(*Tree)

// WithCoalesceRatio overrides DefaultCoalesceRatio.
func WithCoalesceRatio(r float64) Option {
	return func(t *Tree) { t.coalesceRatio = r }
}

func NewTree(opts ...Option) *Tree {
	t := &Tree{coalesceRatio: DefaultCoalesceRatio}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// New adds a detached node that is the root of its own hierarchy.
func (t *Tree) New(b Bounds) ID {
	id := ID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		Bounds:   b,
		rendered: b.Rect(),
		parent:   None,
		root:     id,
	})
	return id
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) valid(id ID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) get(id ID) (*node, error) {
	if !t.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return &t.nodes[id], nil
}

// Node returns the declared bounds of id.
func (t *Tree) Node(id ID) (Bounds, error) {
	n, err := t.get(id)
	if err != nil {
		return Bounds{}, err
	}
	return n.Bounds, nil
}

// Rendered returns the bounding box of id and all of its descendants.
func (t *Tree) Rendered(id ID) layout.Rect {
	if !t.valid(id) {
		return layout.Rect{}
	}
	return t.nodes[id].rendered
}

func (t *Tree) Parent(id ID) ID {
	if !t.valid(id) {
		return None
	}
	return t.nodes[id].parent
}

func (t *Tree) Root(id ID) ID {
	if !t.valid(id) {
		return None
	}
	return t.nodes[id].root
}

// Children returns a copy of the ordered children of id.
func (t *Tree) Children(id ID) []ID {
	if !t.valid(id) {
		return nil
	}
	return slices.Clone(t.nodes[id].children)
}

// AddChild appends child to parent's children and recomputes the bounds of
// the child's subtree and of every ancestor of parent.
func (t *Tree) AddChild(parent, child ID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if c.parent != None {
		return fmt.Errorf("%w: %d", ErrAttached, child)
	}
	for a := parent; a != None; a = t.nodes[a].parent {
		if a == child {
			return fmt.Errorf("%w: %d", ErrCycle, child)
		}
	}

	p.children = append(p.children, child)
	c.parent = parent
	t.setRoot(child, p.root)
	t.CalculateChildBounds(child)
	t.refreshAncestors(parent)
	return nil
}

// RemoveChild detaches child from parent. The child becomes the root of its
// own hierarchy and both hierarchies get their bounds recomputed.
func (t *Tree) RemoveChild(parent, child ID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	if _, err := t.get(child); err != nil {
		return err
	}
	i := slices.Index(p.children, child)
	if i < 0 {
		return fmt.Errorf("%w: %d of %d", ErrNotChild, child, parent)
	}

	p.children = slices.Delete(p.children, i, i+1)
	t.nodes[child].parent = None
	t.setRoot(child, child)
	t.refreshAncestors(parent)
	return nil
}

// refreshAncestors recomputes the bounds of id and each of its ancestors
// from their own area and their children's current bounds.
func (t *Tree) refreshAncestors(id ID) {
	for ; id != None; id = t.nodes[id].parent {
		r := t.nodes[id].Rect()
		for _, c := range t.nodes[id].children {
			r = r.Union(t.nodes[c].rendered)
		}
		t.nodes[id].rendered = r
	}
}

func (t *Tree) setRoot(id, root ID) {
	t.nodes[id].root = root
	for _, c := range t.nodes[id].children {
		t.setRoot(c, root)
	}
}

// CalculateChildBounds recomputes, bottom-up, the bounding box of id and of
// every node below it.
func (t *Tree) CalculateChildBounds(id ID) {
	if !t.valid(id) {
		return
	}
	r := t.nodes[id].Rect()
	for _, c := range t.nodes[id].children {
		t.CalculateChildBounds(c)
		r = r.Union(t.nodes[c].rendered)
	}
	t.nodes[id].rendered = r
}

// DrawableChildren returns every drawable descendant of id in pre-order.
func (t *Tree) DrawableChildren(id ID) []ID {
	if !t.valid(id) {
		return nil
	}
	var out []ID
	for _, c := range t.nodes[id].children {
		if t.nodes[c].Drawable {
			out = append(out, c)
		}
		out = append(out, t.DrawableChildren(c)...)
	}
	return out
}
