package pong

import (
	"fmt"
	"math"
)

// Overlaps reports whether a and b intersect. The test is strict on all four
// sides: rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// CircleRectOverlaps reports whether a circle is in contact with r. It tests
// the circle's bounding square, not the exact circle/rectangle distance.
func CircleRectOverlaps(center Vec2, radius float64, r Rect) bool {
	square := Rect{
		X: center.X - radius,
		Y: center.Y - radius,
		W: 2 * radius,
		H: 2 * radius,
	}
	return Overlaps(square, r)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Vec2) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// RotationMode selects how [Rotate] turns a vector.
type RotationMode uint8

const (
	// RotateLegacy computes the new X first and reuses it for the new Y.
	// The result is not a pure rotation: it also rescales the vector a
	// little, which is how a curving ball bends in the default mode.
	RotateLegacy RotationMode = iota
	// RotateExact applies the standard 2D rotation matrix.
	RotateExact
)

var rotationModeName = map[RotationMode]string{
	RotateLegacy: "legacy",
	RotateExact:  "exact",
}

func (m RotationMode) String() string {
	return rotationModeName[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m RotationMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *RotationMode) UnmarshalText(text []byte) error {
	for mode, name := range rotationModeName {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("%w: unknown rotation mode %q", ErrInvalidConfig, text)
}

// Rotate turns v by angle radians.
func Rotate(v Vec2, angle float64, mode RotationMode) Vec2 {
	sin, cos := math.Sincos(angle)
	x := v.X*cos - v.Y*sin
	if mode == RotateLegacy {
		return Vec2{x, x*sin + v.Y*cos}
	}
	return Vec2{x, v.X*sin + v.Y*cos}
}

// CollisionShape selects how the ball is tested against the paddles.
type CollisionShape uint8

const (
	ShapeBox    CollisionShape = iota // ball sprite bounding box
	ShapeCircle                       // circle of the ball's radius around its center
)

var collisionShapeName = map[CollisionShape]string{
	ShapeBox:    "box",
	ShapeCircle: "circle",
}

func (c CollisionShape) String() string {
	return collisionShapeName[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c CollisionShape) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CollisionShape) UnmarshalText(text []byte) error {
	for shape, name := range collisionShapeName {
		if name == string(text) {
			*c = shape
			return nil
		}
	}
	return fmt.Errorf("%w: unknown collision shape %q", ErrInvalidConfig, text)
}
