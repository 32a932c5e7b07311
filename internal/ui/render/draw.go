package render

import (
	"github.com/charmbracelet/x/cellbuf"
)

// Draw is a content rendering operation. Lower Z values render first.
type Draw struct {
	Rect    cellbuf.Rectangle
	Content string // rendered ANSI string
	Z       int
}
