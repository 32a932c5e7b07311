package main

import (
	"fmt"
	"io"

	"github.com/idursun/reshade/internal/config"
	"github.com/idursun/reshade/internal/layout"
	"github.com/idursun/reshade/internal/shade"
)

// runDump lays cfg out once at size and prints the requested and resolved
// geometry. With a point, it also prints what a change there would repaint.
func runDump(w io.Writer, cfg *config.Config, size layout.Vec, point *layout.Vec) error {
	root, meta, err := cfg.Build()
	if err != nil {
		return err
	}
	layout.Calculate(root, size, cfg.ViewportOr(size), layout.Vec{})

	fmt.Fprintln(w, layout.Describe(root))
	fmt.Fprintln(w)
	fmt.Fprintln(w, layout.Dump(root))
	if point == nil {
		return nil
	}

	tree := shade.NewTree(shade.WithCoalesceRatio(cfg.Reshade.CoalesceRatio))
	id := shade.FromLayout(tree, root, config.Classifier(meta))

	fmt.Fprintf(w, "\nreshade at (%g, %g):\n", point.X, point.Y)
	for _, r := range tree.CheckReshadePoint(id, *point) {
		b, err := tree.Node(r.Node)
		if err != nil {
			return err
		}
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("#%d", r.Node)
		}
		if r.Full {
			fmt.Fprintf(w, "  %s full\n", name)
			continue
		}
		fmt.Fprintf(w, "  %s %v\n", name, r.Regions)
	}
	return nil
}
