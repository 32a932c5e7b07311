// Package layout implements the box-layout engine: unit-tagged measurements,
// rectangles, alignment policies and the Leaf/Sequence node tree.
//
// A layout pass is [Calculate]: preferred minimum sizes are gathered bottom-up
// with Prefer, then sizes and absolute positions are handed out top-down with
// Render. Sequences distribute their main axis in declared order, fixed
// children first and flex children after, by weight.
package layout
