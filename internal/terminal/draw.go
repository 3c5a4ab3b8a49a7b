package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gestures/internal/surface"
)

var (
	boxStyle    = tcell.StyleDefault
	focusStyle  = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Draw renders every node as a box and the status line on the last row.
func (f *Frontend) Draw() {
	f.mu.Lock()
	status := f.status
	focus := f.focus
	f.mu.Unlock()

	f.screen.Clear()
	for _, n := range f.tree.Nodes() {
		style := boxStyle
		if n == focus {
			style = focusStyle
		}
		f.drawBox(n, style)
	}

	w, h := f.screen.Size()
	for x := 0; x < w; x++ {
		f.screen.SetContent(x, h-1, ' ', nil, statusStyle)
	}
	f.drawText(0, h-1, w, status, statusStyle)
	f.screen.Show()
}

func (f *Frontend) drawBox(n *surface.Node, style tcell.Style) {
	b := n.Bounds()
	x0, y0 := int(b.X), int(b.Y)
	x1, y1 := int(b.X+b.W)-1, int(b.Y+b.H)-1
	if x1 <= x0 || y1 <= y0 {
		return
	}

	for x := x0 + 1; x < x1; x++ {
		f.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		f.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		f.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		f.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	f.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	f.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	f.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	f.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)

	f.drawText(x0+2, y0, x1-x0-3, n.Label(), style)
}

// drawText writes s at (x, y), clipped to width cells.
func (f *Frontend) drawText(x, y, width int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		f.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}
