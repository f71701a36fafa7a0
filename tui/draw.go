package tui

import (
	"math"

	"github.com/ArekP86/pong"

	"github.com/gdamore/tcell/v2"
)

// draw rasterizes the match onto the screen and shows it.
func (h *Host) draw() {
	h.screen.SetStyle(h.background)
	h.screen.Clear()

	h.fill(h.session.Red().Rect(), h.red)
	h.fill(h.session.Blue().Rect(), h.blue)
	h.fill(h.session.Ball().Rect(), h.ball)
	h.drawScore()

	h.screen.Show()
}

// fill paints every cell that overlaps r.
func (h *Host) fill(r pong.Rect, style tcell.Style) {
	x0, y0, x1, y1 := cellSpan(r)
	w, ht := h.screen.Size()
	for cy := max(y0, 0); cy <= min(y1, ht-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, w-1); cx++ {
			h.screen.SetContent(cx, cy, blockRune, nil, style)
		}
	}
}

// cellSpan returns the inclusive cell range overlapped by r. Cells that only
// share an edge with r are excluded.
func cellSpan(r pong.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / CellW))
	y0 = int(math.Floor(r.Y / CellH))
	x1 = int(math.Ceil((r.X+r.W)/CellW)) - 1
	y1 = int(math.Ceil((r.Y+r.H)/CellH)) - 1
	return x0, y0, x1, y1
}

// drawScore writes the score centered on the top row.
func (h *Host) drawScore() {
	s := []rune(h.session.Score().String())
	w, _ := h.screen.Size()
	x := (w - len(s)) / 2
	for i, r := range s {
		h.screen.SetContent(x+i, 0, r, nil, h.text)
	}
}
