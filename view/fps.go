package view

import (
	"fmt"
	"image/color"

	"github.com/ArekP86/pong"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	fpsWidth  = 100
	fpsHeight = 48
	fpsMargin = 4
)

// NewFPSWidget creates a Node that displays FPS, TPS and the match frame.
// The widget is redrawn every ~0.5 seconds with ebitenutil.DebugPrint.
func NewFPSWidget(s *pong.Session) *Node {
	img := ebiten.NewImage(fpsWidth, fpsHeight)

	node := NewSprite("fps_widget", img)

	lastUpdate := 0.5
	node.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nFrame: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.Frame()))
	}

	return node
}

// fpsPosition returns the widget's top-left corner, pinned to the top-right
// of the play area. Narrow areas keep it at the left edge.
func fpsPosition(b pong.Bounds) (x, y float64) {
	return max(b.W-fpsWidth-fpsMargin, 0), fpsMargin
}
