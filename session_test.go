package pong

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testBounds = Bounds{W: 800, H: 600}

// newTestSession builds a seeded session that records its events.
func newTestSession(t *testing.T, cfg Config, opts ...Option) (*Session, *EventLog) {
	t.Helper()
	events := &EventLog{}
	opts = append([]Option{WithSeed(42), WithEventSink(events)}, opts...)
	s, err := NewSession(cfg, opts...)
	require.NoError(t, err)
	return s, events
}

func TestNewSessionPlacement(t *testing.T) {
	s, events := newTestSession(t, ClassicConfig())

	assert.Equal(t, Vec2{0, 225}, s.Red().Pos, "red paddle hugs the left edge, vertically centered")
	assert.Equal(t, Vec2{770, 225}, s.Blue().Pos, "blue paddle hugs the right edge, vertically centered")
	assert.Equal(t, Vec2{380, 280}, s.Ball().Pos, "ball starts centered")
	assert.Equal(t, 20.0, s.Ball().Radius())
	assert.Equal(t, Vec2{400, 300}, s.Ball().Center())
	assert.Equal(t, SideRed, s.Red().Side)
	assert.Equal(t, SideBlue, s.Blue().Side)
	assert.Equal(t, 3.0, s.Ball().Mass)
	assert.Equal(t, Score{}, s.Score())
	assert.Equal(t, uint64(0), s.Frame())

	require.Len(t, events.Events, 1)
	assert.Equal(t, EventServe, events.Events[0].Kind)
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := ClassicConfig()
	cfg.PaddleDamping = 1.5

	s, err := NewSession(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewSessionRejectsNonFiniteConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("variant: classic\nstart_speed: .nan\nspeedup: .inf"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg = ClassicConfig()
	cfg.StartSpeed = math.NaN()
	s, err := NewSession(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOpeningServeIsRandomButSeeded(t *testing.T) {
	a, _ := newTestSession(t, ClassicConfig(), WithSeed(7))
	b, _ := newTestSession(t, ClassicConfig(), WithSeed(7))
	assert.Equal(t, a.Ball().Vel, b.Ball().Vel, "same seed, same serve")

	for seed := uint64(0); seed < 32; seed++ {
		s, events := newTestSession(t, ClassicConfig(), WithSeed(seed))
		v := s.Ball().Vel
		assert.Equal(t, 3.0, abs(v.X), "seed %d", seed)
		assert.GreaterOrEqual(t, v.Y, 0.0)
		assert.Less(t, v.Y, 1.0)

		serve, ok := events.Last(EventServe)
		require.True(t, ok)
		if v.X > 0 {
			assert.Equal(t, SideBlue, serve.Side)
		} else {
			assert.Equal(t, SideRed, serve.Side)
		}
	}
}

func TestServeTowardsSide(t *testing.T) {
	s, _ := newTestSession(t, CurveConfig())
	s.Ball().Curve = 0.4
	pos := s.Ball().Pos

	s.Serve(SideRed)
	assert.Equal(t, Vec2{-3, 0}, s.Ball().Vel)
	assert.Equal(t, 0.0, s.Ball().Curve, "a serve clears spin")
	assert.Equal(t, pos, s.Ball().Pos, "a serve never moves the ball")

	s.Serve(SideBlue)
	assert.Equal(t, Vec2{3, 0}, s.Ball().Vel)
}

func TestSessionInputHandlers(t *testing.T) {
	s, _ := newTestSession(t, ClassicConfig())

	assert.True(t, s.KeyDown('W'))
	assert.True(t, s.Input().RedUp)
	assert.True(t, s.KeyUp('w'))
	assert.False(t, s.Input().RedUp)
	assert.False(t, s.KeyDown('x'))

	assert.False(t, s.Mouse().Seen)
	s.PointerMoved(12, 34)
	assert.Equal(t, MouseState{X: 12, Y: 34, Seen: true}, s.Mouse())
}

func TestSessionPaddleLookup(t *testing.T) {
	s, _ := newTestSession(t, ClassicConfig())
	assert.Same(t, s.Red(), s.Paddle(SideRed))
	assert.Same(t, s.Blue(), s.Paddle(SideBlue))
	assert.Nil(t, s.Paddle(SideNone))
}

func TestAnchorFollowsResize(t *testing.T) {
	s, _ := newTestSession(t, ClassicConfig())
	s.Red().Pos.Y = 500

	s.Anchor(Bounds{W: 1000, H: 400})

	assert.Equal(t, 970.0, s.Blue().Pos.X)
	assert.Equal(t, 0.0, s.Red().Pos.X, "red paddle is already anchored at x=0")
	assert.Equal(t, 250.0, s.Red().Pos.Y, "paddles are clamped into the new height")
}

func TestWithIDAndLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	id := uuid.MustParse("6f1d7c0e-4b7e-4b4a-9d1e-2a1f3c5b7d9e")

	s, _ := newTestSession(t, ClassicConfig(), WithID(id), WithLogger(zap.New(core)))
	assert.Equal(t, id, s.ID())

	started := logs.FilterMessage("match started").All()
	require.Len(t, started, 1)
	assert.Equal(t, id.String(), started[0].ContextMap()["match"])
	assert.Equal(t, "classic", started[0].ContextMap()["variant"])
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "0 : 0", Score{}.String())
	assert.Equal(t, "2 : 5", Score{Red: 2, Blue: 5}.String())
	assert.Equal(t, 2, Score{Red: 2, Blue: 5}.Of(SideRed))
	assert.Equal(t, 5, Score{Red: 2, Blue: 5}.Of(SideBlue))
	assert.Equal(t, 0, Score{Red: 2, Blue: 5}.Of(SideNone))
}

func TestSeedFromString(t *testing.T) {
	assert.Equal(t, SeedFromString("friday-final"), SeedFromString("friday-final"))
	assert.NotEqual(t, SeedFromString("friday-final"), SeedFromString("friday-semi"))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
