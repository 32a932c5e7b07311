package test

import (
	"strings"

	"github.com/idursun/reshade/internal/layout"
	"github.com/idursun/reshade/internal/ui/render"
)

// RenderImmediate renders an immediate model into a fixed-size buffer and
// returns the frame trimmed with TrimFrame.
func RenderImmediate(model interface {
	ViewRect(dl *render.DisplayContext, area layout.Rect)
}, width, height int) string {
	dl := render.NewDisplayContext()
	model.ViewRect(dl, layout.R(0, 0, float64(width), float64(height)))
	return TrimFrame(dl.RenderToString(width, height))
}

// TrimFrame drops carriage returns, the blank cells at the end of each row
// and blank rows at the bottom. Leading cells are kept so columns line up
// with buffer coordinates.
func TrimFrame(frame string) string {
	rows := strings.Split(strings.ReplaceAll(frame, "\r", ""), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " ")
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return strings.Join(rows, "\n")
}
