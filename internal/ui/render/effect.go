package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Effect is a post-processing operation that modifies cells already drawn
// into the buffer.
type Effect interface {
	Apply(buf *cellbuf.Buffer)
	GetZ() int
	GetRect() cellbuf.Rectangle
}

// ReverseEffect reverses foreground and background colors. Used to mark
// nodes that must be redrawn whole.
type ReverseEffect struct {
	Rect cellbuf.Rectangle
	Z    int
}

func (e ReverseEffect) Apply(buf *cellbuf.Buffer) {
	iterateCells(buf, e.Rect, func(cell *cellbuf.Cell) *cellbuf.Cell {
		if cell == nil {
			return nil
		}
		newCell := cell.Clone()
		newCell.Style.Reverse(true)
		return newCell
	})
}

func (e ReverseEffect) GetZ() int                  { return e.Z }
func (e ReverseEffect) GetRect() cellbuf.Rectangle { return e.Rect }

// DimEffect sets the Faint attribute. Non-drawable containers are dimmed.
type DimEffect struct {
	Rect cellbuf.Rectangle
	Z    int
}

func (e DimEffect) Apply(buf *cellbuf.Buffer) {
	iterateCells(buf, e.Rect, func(cell *cellbuf.Cell) *cellbuf.Cell {
		if cell == nil {
			return nil
		}
		newCell := cell.Clone()
		newCell.Style.Faint(true)
		return newCell
	})
}

func (e DimEffect) GetZ() int                  { return e.Z }
func (e DimEffect) GetRect() cellbuf.Rectangle { return e.Rect }

// BoldEffect makes content bold.
type BoldEffect struct {
	Rect cellbuf.Rectangle
	Z    int
}

func (e BoldEffect) Apply(buf *cellbuf.Buffer) {
	iterateCells(buf, e.Rect, func(cell *cellbuf.Cell) *cellbuf.Cell {
		if cell == nil {
			return nil
		}
		newCell := cell.Clone()
		newCell.Style.Bold(true)
		return newCell
	})
}

func (e BoldEffect) GetZ() int                  { return e.Z }
func (e BoldEffect) GetRect() cellbuf.Rectangle { return e.Rect }

// HighlightEffect paints the background color of Style onto cells that have
// none. Partial reshade regions are shown this way.
type HighlightEffect struct {
	Rect  cellbuf.Rectangle
	Style lipgloss.Style
	Z     int
}

func (e HighlightEffect) Apply(buf *cellbuf.Buffer) {
	bgColor := e.Style.GetBackground()
	if _, none := bgColor.(lipgloss.NoColor); none {
		return
	}

	iterateCells(buf, e.Rect, func(cell *cellbuf.Cell) *cellbuf.Cell {
		if cell == nil {
			return nil
		}
		if cell.Style.Bg == nil {
			cell.Style.Background(bgColor)
		}
		return cell
	})
}

func (e HighlightEffect) GetZ() int                  { return e.Z }
func (e HighlightEffect) GetRect() cellbuf.Rectangle { return e.Rect }

// iterateCells applies transform to every cell of rect that lies inside the
// buffer and writes non-nil results back.
func iterateCells(buf *cellbuf.Buffer, rect cellbuf.Rectangle, transform func(*cellbuf.Cell) *cellbuf.Cell) {
	rect = rect.Intersect(buf.Bounds())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cell := buf.Cell(x, y)
			newCell := transform(cell)
			if newCell != nil {
				buf.SetCell(x, y, newCell)
			}
		}
	}
}
