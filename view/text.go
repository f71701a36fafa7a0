package view

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextBlock holds text content, formatting, and the cached rendered image.
type TextBlock struct {
	Content string
	Font    *TTFFont
	Color   Color

	image *ebiten.Image // cached rendered text
	dirty bool          // true when the cache needs re-render
}

// SetContent replaces the text and invalidates the cache if it changed.
func (tb *TextBlock) SetContent(s string) {
	if tb.Content == s {
		return
	}
	tb.Content = s
	tb.dirty = true
}

// Measure returns the rendered size of the current content.
func (tb *TextBlock) Measure() (width, height float64) {
	return tb.Font.MeasureString(tb.Content)
}

// render refreshes the cached image if needed and returns it. Returns nil
// for empty content.
func (tb *TextBlock) render() *ebiten.Image {
	w, h := tb.Measure()
	if w == 0 || h == 0 {
		return nil
	}
	if !tb.dirty && tb.image != nil {
		return tb.image
	}
	tb.dirty = false

	iw, ih := int(w)+1, int(h)+1
	if tb.image != nil {
		b := tb.image.Bounds()
		if b.Dx() != iw || b.Dy() != ih {
			tb.image.Deallocate()
			tb.image = ebiten.NewImage(iw, ih)
		} else {
			tb.image.Clear()
		}
	} else {
		tb.image = ebiten.NewImage(iw, ih)
	}

	op := &text.DrawOptions{}
	op.ColorScale.Scale(
		float32(tb.Color.R),
		float32(tb.Color.G),
		float32(tb.Color.B),
		float32(tb.Color.A),
	)
	op.LineSpacing = tb.Font.lh
	text.Draw(tb.image, tb.Content, tb.Font.face, op)
	return tb.image
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("view: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	// Compute line height from metrics
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{face: face, lh: lh}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}
