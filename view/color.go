package view

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("view: color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("view: color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

var (
	whitePixel     *ebiten.Image
	whitePixelOnce sync.Once
)

// WhitePixel returns a 1x1 white image used for solid color sprites. It is
// created on first use, so importing the package never touches the GPU.
func WhitePixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	})
	return whitePixel
}
