package config

import (
	"fmt"

	"github.com/idursun/reshade/internal/layout"
	"github.com/idursun/reshade/internal/shade"
)

// Build turns the declared layout into a node tree. The returned map holds
// the name and reshade flags of every node.
func (c *Config) Build() (layout.Node, map[layout.Node]NodeMeta, error) {
	meta := make(map[layout.Node]NodeMeta)
	root, err := c.Layout.build("layout", meta)
	if err != nil {
		return nil, nil, err
	}
	return root, meta, nil
}

func (s NodeSpec) build(path string, meta map[layout.Node]NodeMeta) (layout.Node, error) {
	dim, err := s.dim()
	if err != nil {
		return nil, fmt.Errorf("%s.size: %w", path, err)
	}

	var n layout.Node
	switch s.Kind {
	case "leaf":
		if len(s.Children) > 0 {
			return nil, fmt.Errorf("%s: a leaf cannot have children", path)
		}
		if len(s.Min) > 2 {
			return nil, fmt.Errorf("%s.min: expected at most 2 values, got %d", path, len(s.Min))
		}
		var mins []layout.Min
		for _, v := range s.Min {
			if v > 0 {
				mins = append(mins, layout.MinOf(v))
			} else {
				mins = append(mins, layout.Min{})
			}
		}
		n = layout.NewLeaf(dim, mins...)
	case "row", "column":
		seq, err := s.sequence(dim)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for i, child := range s.Children {
			cn, err := child.build(fmt.Sprintf("%s.children[%d]", path, i), meta)
			if err != nil {
				return nil, err
			}
			seq.Append(cn)
		}
		n = seq
	default:
		return nil, fmt.Errorf("%s.kind: unknown kind %q", path, s.Kind)
	}

	drawable := true
	if s.Drawable != nil {
		drawable = *s.Drawable
	}
	meta[n] = NodeMeta{Name: s.Name, Drawable: drawable, Partial: s.Partial}
	return n, nil
}

func (s NodeSpec) dim() (layout.Point2, error) {
	var axes [2]layout.Measurement
	for i, literal := range s.Size {
		if literal == "" {
			axes[i] = layout.Fr(1)
			continue
		}
		m, err := layout.Parse(literal)
		if err != nil {
			return layout.Point2{}, err
		}
		axes[i] = m
	}
	return layout.P2(axes[0], axes[1]), nil
}

func (s NodeSpec) sequence(dim layout.Point2) (*layout.Sequence, error) {
	opts := []layout.SequenceOption{layout.WithAxes(layout.X, layout.Y)}
	if s.Kind == "column" {
		opts = []layout.SequenceOption{layout.WithAxes(layout.Y, layout.X)}
	}
	if s.Justify != "" {
		j, ok := layout.ParseJustify(s.Justify)
		if !ok {
			return nil, fmt.Errorf("unknown justify %q", s.Justify)
		}
		opts = append(opts, layout.WithJustify(j))
	}
	if s.Align != "" {
		a, ok := layout.ParseAlign(s.Align)
		if !ok {
			return nil, fmt.Errorf("unknown align %q", s.Align)
		}
		opts = append(opts, layout.WithAlign(a))
	}
	return layout.NewSequence(dim, opts...)
}

// Classifier reads the reshade flags of built nodes from meta. The node
// itself travels as the region's Data.
func Classifier(meta map[layout.Node]NodeMeta) shade.Classifier {
	return func(n layout.Node) shade.Bounds {
		m := meta[n]
		return shade.Bounds{
			Drawable: m.Drawable,
			Partial:  m.Partial,
			Name:     m.Name,
			Data:     n,
		}
	}
}
