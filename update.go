package pong

import (
	"math"

	"go.uber.org/zap"
)

// Update advances the match by one frame. delta is the elapsed time in frame
// units (1 at 60 frames per second) and bounds is the play area for this
// frame. Stages run in a fixed order, each seeing the previous stage's output:
//
//  1. paddle damping
//  2. ball speedup and curve decay
//  3. top/bottom wall reflection
//  4. scoring at the left/right edges
//  5. out-of-bounds safety recenter
//  6. paddle control (keys or autopilot)
//  7. paddle collisions, red then blue
//  8. curve application
//  9. integration
//  10. paddle clamping
func (s *Session) Update(delta float64, bounds Bounds) {
	s.frame++

	s.dampPaddles()
	s.accelerateBall()
	s.bounceWalls(bounds)
	s.checkScore(bounds)
	s.checkOutOfBounds(bounds)
	s.steerPaddles(bounds)
	s.collide()
	s.spin(delta)
	s.integrate(delta)
	s.clampPaddles(bounds)
}

func (s *Session) dampPaddles() {
	s.red.damp(s.cfg.PaddleDamping)
	s.blue.damp(s.cfg.PaddleDamping)
}

func (s *Session) accelerateBall() {
	s.ball.Vel.X *= s.cfg.Speedup
	if s.cfg.Curve {
		s.ball.Curve *= s.cfg.CurveDamping
	}
}

// bounceWalls keeps the ball one unit inside the top and bottom walls and
// reflects its vertical velocity. Applying it twice is the same as once.
func (s *Session) bounceWalls(bounds Bounds) {
	b := &s.ball
	if b.Pos.Y <= 0 {
		b.Pos.Y = 1
		b.Vel.Y = -b.Vel.Y
		s.emit(Event{Kind: EventWallBounce})
	}
	if b.Pos.Y+b.Size.Y >= bounds.H {
		b.Pos.Y = bounds.H - b.Size.Y - 1
		b.Vel.Y = -b.Vel.Y
		s.emit(Event{Kind: EventWallBounce})
	}
}

// checkScore awards a point when the ball leaves through the left or right
// edge, recenters it and serves towards the scorer.
func (s *Session) checkScore(bounds Bounds) {
	b := &s.ball
	switch {
	case b.Pos.X < 0:
		s.award(SideBlue, bounds)
	case b.Pos.X+b.Size.X > bounds.W:
		s.award(SideRed, bounds)
	}
}

func (s *Session) award(scorer Side, bounds Bounds) {
	s.score.award(scorer)
	s.ball.centerIn(bounds)

	s.log.Debug("point scored",
		zap.Stringer("scorer", scorer),
		zap.Stringer("score", s.score),
		zap.Uint64("frame", s.frame))

	s.emit(Event{Kind: EventScore, Side: scorer, Score: s.score})
	s.Serve(scorer)
}

// checkOutOfBounds recenters a ball that has strayed past the safety margin.
// Velocity and score are untouched. With stages 3 and 4 working this only
// fires after the play area shrinks abruptly.
func (s *Session) checkOutOfBounds(bounds Bounds) {
	m := s.cfg.OutOfBoundsMargin
	p := s.ball.Pos
	if p.X < -m || p.X > bounds.W+m || p.Y < -m || p.Y > bounds.H+m {
		s.log.Warn("ball out of bounds, recentering",
			zap.Float64("x", p.X),
			zap.Float64("y", p.Y),
			zap.Uint64("frame", s.frame))
		s.ball.centerIn(bounds)
		s.emit(Event{Kind: EventRecenter})
	}
}

func (s *Session) steerPaddles(bounds Bounds) {
	if s.cfg.Control == ControlAutopilot && s.autopilotActive(bounds) {
		v := s.autopilotVelocity()
		s.red.Vel.Y = v
		s.blue.Vel.Y = v
		return
	}
	s.red.Vel.Y += s.input.Axis(SideRed)
	s.blue.Vel.Y += s.input.Axis(SideBlue)
}

// collide bounces the ball off the paddles. Both responses are computed from
// the velocity the ball had when the stage began; if the ball touches both
// paddles in one frame the blue response is the one that sticks.
func (s *Session) collide() {
	v0 := s.ball.Vel
	for _, p := range [2]*Paddle{&s.red, &s.blue} {
		if !s.touches(p) {
			continue
		}
		offset := s.ball.Center().Y - p.Center().Y
		s.ball.Vel = Vec2{
			X: -v0.X,
			Y: v0.Y*0.5 + 0.1*offset,
		}
		if s.cfg.Curve {
			s.ball.Curve = p.curveSign() * p.Vel.Y * s.cfg.CurveFactor
		}
		s.emit(Event{Kind: EventPaddleHit, Side: p.Side})
	}
}

func (s *Session) touches(p *Paddle) bool {
	if s.cfg.Shape == ShapeCircle {
		return CircleRectOverlaps(s.ball.Center(), s.ball.Radius(), p.Rect())
	}
	return Overlaps(s.ball.Rect(), p.Rect())
}

func (s *Session) spin(delta float64) {
	if !s.cfg.Curve {
		return
	}
	s.ball.Rotation += s.ball.Curve * delta
	s.ball.Vel = Rotate(s.ball.Vel, s.ball.Curve*s.cfg.CurveTurn, s.cfg.Rotation)
}

func (s *Session) integrate(delta float64) {
	s.ball.Pos = s.ball.Pos.Add(s.ball.Vel.Scale(delta))
	s.red.Pos.Y += s.red.Vel.Y * delta
	s.blue.Pos.Y += s.blue.Vel.Y * delta
}

func (s *Session) clampPaddles(bounds Bounds) {
	s.red.clamp(bounds)
	s.blue.clamp(bounds)
}

// autopilotActive reports whether the pointer is usable for steering.
func (s *Session) autopilotActive(bounds Bounds) bool {
	return s.mouse.Seen && bounds.Contains(Vec2{s.mouse.X, s.mouse.Y})
}

// autopilotVelocity returns the shared paddle velocity that chases the
// pointer. The origin is the midpoint of both paddle centers at x=0; speed
// grows with the distance to the pointer.
func (s *Session) autopilotVelocity() float64 {
	origin := Vec2{0, (s.red.Center().Y + s.blue.Center().Y) / 2}
	pointer := Vec2{s.mouse.X, s.mouse.Y}
	angle := math.Atan2(pointer.Y-origin.Y, pointer.X-origin.X)
	speed := Distance(pointer, origin) * s.cfg.AutopilotSpeed
	return math.Sin(angle) * speed
}
