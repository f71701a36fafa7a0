package pong

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one continuous match. It is not safe for concurrent use: the
// host calls its input handlers and Update from a single goroutine.
type Session struct {
	id  uuid.UUID
	cfg Config

	ball  Ball
	red   Paddle
	blue  Paddle
	score Score
	input InputState
	mouse MouseState
	frame uint64

	rng  *rand.Rand
	sink EventSink
	log  *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEventSink sets the receiver of match events.
func WithEventSink(sink EventSink) Option {
	return func(s *Session) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithSeed makes serves reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithID overrides the generated match ID.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession validates cfg, places both paddles and the ball in the play
// area described by cfg.Bounds and serves in a random direction.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:   uuid.New(),
		cfg:  cfg,
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sink: discardSink{},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.Stringer("match", s.id))

	b := cfg.Bounds
	s.ball = Ball{Size: cfg.BallSize, Mass: cfg.BallMass}
	s.ball.centerIn(b)
	s.red = Paddle{
		Side: SideRed,
		Pos:  Vec2{0, b.H/2 - cfg.PaddleSize.Y/2},
		Size: cfg.PaddleSize,
		Mass: cfg.PaddleMass,
	}
	s.blue = Paddle{
		Side: SideBlue,
		Pos:  Vec2{b.W - cfg.PaddleSize.X, b.H/2 - cfg.PaddleSize.Y/2},
		Size: cfg.PaddleSize,
		Mass: cfg.PaddleMass,
	}

	s.log.Debug("match started",
		zap.String("variant", cfg.Variant),
		zap.Stringer("control", cfg.Control),
		zap.Stringer("rotation", cfg.Rotation))

	s.Serve(SideNone)
	return s, nil
}

// ID returns the match identifier used in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Frame returns the number of completed Update calls.
func (s *Session) Frame() uint64 { return s.frame }

// Score returns the current score.
func (s *Session) Score() Score { return s.score }

// Ball returns the simulated ball. Hosts read it; tests may also arrange it.
func (s *Session) Ball() *Ball { return &s.ball }

// Red returns the left paddle.
func (s *Session) Red() *Paddle { return &s.red }

// Blue returns the right paddle.
func (s *Session) Blue() *Paddle { return &s.blue }

// Paddle returns the paddle of the given side, or nil for SideNone.
func (s *Session) Paddle(side Side) *Paddle {
	switch side {
	case SideRed:
		return &s.red
	case SideBlue:
		return &s.blue
	}
	return nil
}

// Input returns the key flags read by the next Update.
func (s *Session) Input() *InputState { return &s.input }

// Mouse returns the last reported pointer position.
func (s *Session) Mouse() MouseState { return s.mouse }

// KeyDown records a key press. Reports whether the key is bound.
func (s *Session) KeyDown(r rune) bool { return s.input.KeyDown(r) }

// KeyUp records a key release. Reports whether the key is bound.
func (s *Session) KeyUp(r rune) bool { return s.input.KeyUp(r) }

// PointerMoved records the pointer position in play-area coordinates.
func (s *Session) PointerMoved(x, y float64) {
	s.mouse = MouseState{X: x, Y: y, Seen: true}
}

// Serve resets the ball's velocity. With SideRed or SideBlue the ball
// travels straight towards that side at the start speed. With SideNone the
// direction is random and the ball gets a small random downward drift, as
// on the opening serve. Position is not changed.
func (s *Session) Serve(toward Side) {
	speed := s.cfg.StartSpeed
	s.ball.Curve = 0

	switch toward {
	case SideRed:
		s.ball.Vel = Vec2{-speed, 0}
	case SideBlue:
		s.ball.Vel = Vec2{speed, 0}
	default:
		toward = SideBlue
		if s.rng.IntN(2) == 0 {
			toward = SideRed
			speed = -speed
		}
		s.ball.Vel = Vec2{speed, s.rng.Float64()}
	}

	s.emit(Event{Kind: EventServe, Side: toward})
}

// Anchor re-pins the right paddle against the right edge of bounds and
// clamps both paddles vertically. Hosts call it after a resize; the
// simulation itself keeps paddle X fixed.
func (s *Session) Anchor(bounds Bounds) {
	s.blue.Pos.X = bounds.W - s.blue.Size.X
	s.red.clamp(bounds)
	s.blue.clamp(bounds)
}

func (s *Session) emit(e Event) {
	e.Frame = s.frame
	s.sink.EmitEvent(e)
}
