package pong

// Ball is the simulated ball. Pos is the top-left corner of its bounding box.
type Ball struct {
	Pos  Vec2
	Size Vec2
	// Vel is the displacement per frame unit.
	Vel Vec2
	// Mass is never read by the physics.
	Mass float64
	// Curve is the spin imparted by the last paddle contact. It turns Vel
	// and Rotation every frame and decays geometrically.
	Curve float64
	// Rotation is the cosmetic sprite angle in radians.
	Rotation float64
}

// Radius returns half the ball's width.
func (b *Ball) Radius() float64 {
	return b.Size.X / 2
}

// Center returns the midpoint of the ball's bounding box.
func (b *Ball) Center() Vec2 {
	return b.Rect().Center()
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() Rect {
	return Rect{b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y}
}

// centerIn moves the ball to the middle of the play area. Velocity is left
// untouched.
func (b *Ball) centerIn(bounds Bounds) {
	b.Pos = Vec2{
		X: bounds.W/2 - b.Size.X/2,
		Y: bounds.H/2 - b.Size.Y/2,
	}
}
