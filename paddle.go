package pong

// Paddle is one of the two vertically moving bats. Its X position is fixed
// at construction (see [Session.Anchor]); Y and the vertical velocity change
// every frame.
type Paddle struct {
	Side Side
	Pos  Vec2
	Size Vec2
	Vel  Vec2
	// Mass is never read by the physics.
	Mass float64
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() Rect {
	return Rect{p.Pos.X, p.Pos.Y, p.Size.X, p.Size.Y}
}

// Center returns the midpoint of the paddle.
func (p *Paddle) Center() Vec2 {
	return p.Rect().Center()
}

// damp applies friction to the paddle. Paddles never move horizontally.
func (p *Paddle) damp(factor float64) {
	p.Vel.X = 0
	p.Vel.Y *= factor
}

// clamp keeps the paddle inside [0, bounds.H-Size.Y] and stops it when it
// hits either edge. Reports whether a correction was made. On a play area
// shorter than the paddle the paddle is pinned to the top.
func (p *Paddle) clamp(bounds Bounds) bool {
	clamped := false
	if maxY := bounds.H - p.Size.Y; p.Pos.Y > maxY {
		p.Pos.Y = maxY
		p.Vel.Y = 0
		clamped = true
	}
	if p.Pos.Y < 0 {
		p.Pos.Y = 0
		p.Vel.Y = 0
		clamped = true
	}
	return clamped
}

// curveSign is the sign applied to the paddle's velocity when it imparts
// curve to the ball.
func (p *Paddle) curveSign() float64 {
	if p.Side == SideRed {
		return -1
	}
	return 1
}
