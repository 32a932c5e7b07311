package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/rivo/uniseg"
)

// DisplayContext holds all rendering operations for a frame.
// Operations are accumulated while the layout tree is walked,
// then executed in order by Z-index and insertion order.
type DisplayContext struct {
	draws        []drawOp
	effects      []effectOp
	orderCounter int
}

// NewDisplayContext creates a new empty display context.
func NewDisplayContext() *DisplayContext {
	return &DisplayContext{
		draws:   make([]drawOp, 0, 16),
		effects: make([]effectOp, 0, 8),
	}
}

func (dl *DisplayContext) nextOrder() int {
	dl.orderCounter++
	return dl.orderCounter
}

// AddDraw adds a Draw to the display context.
func (dl *DisplayContext) AddDraw(rect cellbuf.Rectangle, content string, z int) {
	dl.draws = append(dl.draws, drawOp{
		Draw: Draw{
			Rect:    rect,
			Content: content,
			Z:       z,
		},
		order: dl.nextOrder(),
	})
}

// AddFill fills a rectangle with the provided rune and style.
func (dl *DisplayContext) AddFill(rect cellbuf.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	content := fillString(rect.Dx(), rect.Dy(), ch, style)
	if content == "" {
		return
	}
	dl.AddDraw(rect, content, z)
}

// AddBox draws a rounded border around rect with title set into the top
// edge. Rects too thin for a border are filled with a dotted placeholder.
func (dl *DisplayContext) AddBox(rect cellbuf.Rectangle, title string, style lipgloss.Style, z int) {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if w < 2 || h < 2 {
		dl.AddFill(rect, '·', style, z)
		dl.AddLabel(rect.Min.X, rect.Min.Y, w, title, style, z+1)
		return
	}
	box := style.Border(lipgloss.RoundedBorder()).
		BorderForeground(style.GetForeground()).
		Width(w - 2).
		Height(h - 2).
		Render("")
	dl.AddDraw(rect, box, z)
	dl.AddLabel(rect.Min.X+1, rect.Min.Y, w-2, title, style, z+1)
}

// AddLabel draws a single line of text starting at (x, y), truncated to
// width cells.
func (dl *DisplayContext) AddLabel(x, y, width int, text string, style lipgloss.Style, z int) {
	text = Truncate(text, width)
	if text == "" {
		return
	}
	dl.AddDraw(cellbuf.Rect(x, y, uniseg.StringWidth(text), 1), style.Render(text), z)
}

// AddEffect adds a custom Effect to the display context.
func (dl *DisplayContext) AddEffect(effect Effect) {
	dl.effects = append(dl.effects, effectOp{
		effect: effect,
		order:  dl.nextOrder(),
		z:      effect.GetZ(),
	})
}

// AddReverse adds a ReverseEffect (reverses foreground/background colors).
func (dl *DisplayContext) AddReverse(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(ReverseEffect{Rect: rect, Z: z})
}

// AddDim adds a DimEffect (dims the content).
func (dl *DisplayContext) AddDim(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(DimEffect{Rect: rect, Z: z})
}

// AddBold adds a BoldEffect.
func (dl *DisplayContext) AddBold(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(BoldEffect{Rect: rect, Z: z})
}

// AddHighlight adds a HighlightEffect.
func (dl *DisplayContext) AddHighlight(rect cellbuf.Rectangle, style lipgloss.Style, z int) {
	dl.AddEffect(HighlightEffect{Rect: rect, Style: style, Z: z})
}

// Clear removes all operations from the display context.
func (dl *DisplayContext) Clear() {
	dl.draws = dl.draws[:0]
	dl.effects = dl.effects[:0]
	dl.orderCounter = 0
}

// Render executes all operations in the display context to the given cellbuf.
// Draws and effects share one ordering: Z-index first, then insertion order.
func (dl *DisplayContext) Render(buf *cellbuf.Buffer) {
	if len(dl.draws) == 0 && len(dl.effects) == 0 {
		return
	}

	ops := make([]renderOp, 0, len(dl.draws)+len(dl.effects))
	for _, op := range dl.draws {
		ops = append(ops, renderOp{
			z:      op.Z,
			order:  op.order,
			draw:   op.Draw,
			isDraw: true,
		})
	}
	for _, op := range dl.effects {
		ops = append(ops, renderOp{
			z:      op.z,
			order:  op.order,
			effect: op.effect,
		})
	}

	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].z != ops[j].z {
			return ops[i].z < ops[j].z
		}
		return ops[i].order < ops[j].order
	})

	for _, op := range ops {
		if op.isDraw {
			cellbuf.SetContentRect(buf, op.draw.Content, op.draw.Rect)
			continue
		}
		op.effect.Apply(buf)
	}
}

// RenderToString renders to a new buffer and returns the final string
// output without carriage returns.
func (dl *DisplayContext) RenderToString(width, height int) string {
	buf := cellbuf.NewBuffer(width, height)
	dl.Render(buf)
	return strings.ReplaceAll(cellbuf.Render(buf), "\r", "")
}

// Len returns the total number of operations in the display context
func (dl *DisplayContext) Len() int {
	return len(dl.draws) + len(dl.effects)
}

type drawOp struct {
	Draw
	order int
}

type effectOp struct {
	effect Effect
	order  int
	z      int
}

type renderOp struct {
	z      int
	order  int
	draw   Draw
	effect Effect
	isDraw bool
}

func fillString(width, height int, ch rune, style lipgloss.Style) string {
	cw := uniseg.StringWidth(string(ch))
	if width <= 0 || height <= 0 || cw <= 0 {
		return ""
	}
	line := style.Render(strings.Repeat(string(ch), width/cw))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
