package pong

// Vec2 is a 2D vector used for positions, sizes and velocities.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Bounds is the size of the play area. Hosts supply it on every frame; it may
// change between frames when a window is resized.
type Bounds struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Contains reports whether p lies inside the play area. Points on the edge
// are considered inside.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.W && p.Y >= 0 && p.Y <= b.H
}

// Side identifies a paddle and the player controlling it.
type Side uint8

const (
	SideNone Side = iota // no side (random serve)
	SideRed              // left paddle
	SideBlue             // right paddle
)

var sideName = map[Side]string{
	SideNone: "none",
	SideRed:  "red",
	SideBlue: "blue",
}

func (s Side) String() string {
	return sideName[s]
}
