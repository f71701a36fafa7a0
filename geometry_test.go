package pong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"same rect", Rect{10, 10, 100, 100}, true},
		{"touching right edge", Rect{110, 10, 50, 50}, false},
		{"touching bottom edge", Rect{10, 110, 50, 50}, false},
		{"touching left edge", Rect{-50, 10, 60, 50}, false},
		{"touching top edge", Rect{10, -50, 50, 60}, false},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
		{"one unit inside", Rect{109, 109, 50, 50}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Overlaps(base, tt.other), "Overlaps(%v, %v)", base, tt.other)
			assert.Equal(t, tt.expect, Overlaps(tt.other, base), "overlap must be symmetric")
		})
	}
}

func TestCircleRectOverlaps(t *testing.T) {
	r := Rect{0, 0, 30, 150}
	tests := []struct {
		name   string
		center Vec2
		radius float64
		expect bool
	}{
		{"center inside", Vec2{15, 75}, 5, true},
		{"bounding square reaches in", Vec2{45, 75}, 20, true},
		{"bounding square touches edge", Vec2{50, 75}, 20, false},
		{"corner uses square not circle", Vec2{48, 168}, 20, true},
		{"far away", Vec2{400, 300}, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, CircleRectOverlaps(tt.center, tt.radius, r))
		})
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Vec2{0, 0}, Vec2{3, 4}))
	assert.Equal(t, 5.0, Distance(Vec2{3, 4}, Vec2{0, 0}))
	assert.Equal(t, 0.0, Distance(Vec2{7, -2}, Vec2{7, -2}))
}

func TestRotateExactPreservesLength(t *testing.T) {
	v := Vec2{3, 4}
	for _, angle := range []float64{0.01, 0.3, math.Pi / 2, -1.2} {
		got := Rotate(v, angle, RotateExact)
		assert.InDelta(t, 5.0, math.Hypot(got.X, got.Y), 1e-9, "angle %v", angle)
	}

	got := Rotate(Vec2{1, 0}, math.Pi/2, RotateExact)
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)
}

func TestRotateLegacyReusesRotatedX(t *testing.T) {
	v := Vec2{3, 1}
	angle := 0.2
	sin, cos := math.Sincos(angle)

	got := Rotate(v, angle, RotateLegacy)

	x := v.X*cos - v.Y*sin
	assert.Equal(t, x, got.X)
	assert.Equal(t, x*sin+v.Y*cos, got.Y)

	exact := Rotate(v, angle, RotateExact)
	assert.Equal(t, exact.X, got.X, "X is identical in both modes")
	assert.NotEqual(t, exact.Y, got.Y, "Y differs because the rotated X is reused")
}

func TestRotateZeroAngleIsIdentity(t *testing.T) {
	v := Vec2{-2.5, 7}
	assert.Equal(t, v, Rotate(v, 0, RotateLegacy))
	assert.Equal(t, v, Rotate(v, 0, RotateExact))
}

func TestEnumTextRoundTrip(t *testing.T) {
	var m RotationMode
	require.NoError(t, m.UnmarshalText([]byte("exact")))
	assert.Equal(t, RotateExact, m)
	assert.ErrorIs(t, m.UnmarshalText([]byte("sideways")), ErrInvalidConfig)

	var c CollisionShape
	require.NoError(t, c.UnmarshalText([]byte("circle")))
	assert.Equal(t, ShapeCircle, c)
	assert.ErrorIs(t, c.UnmarshalText([]byte("triangle")), ErrInvalidConfig)

	text, err := ShapeBox.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "box", string(text))
}
