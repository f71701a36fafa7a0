package view

import (
	"math"
	"testing"

	"github.com/ArekP86/pong"
	"github.com/ArekP86/pong/ecs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60

func newTestGame(t *testing.T, cfg pong.Config) (*Game, *pong.Session) {
	t.Helper()
	world := donburi.NewWorld()
	s, err := pong.NewSession(cfg,
		pong.WithSeed(3),
		pong.WithEventSink(ecs.NewDonburiSink(world)))
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(s, world, Options{})
	if err != nil {
		t.Fatal(err)
	}
	return g, s
}

func TestNewGamePlacesNodes(t *testing.T) {
	g, _ := newTestGame(t, pong.ClassicConfig())

	if g.red.X != 0 || g.red.Y != 225 {
		t.Errorf("red at %v,%v, want 0,225", g.red.X, g.red.Y)
	}
	if g.blue.X != 770 || g.blue.Y != 225 {
		t.Errorf("blue at %v,%v, want 770,225", g.blue.X, g.blue.Y)
	}
	if g.ball.X != 400 || g.ball.Y != 300 {
		t.Errorf("ball at %v,%v, want its center 400,300", g.ball.X, g.ball.Y)
	}
	if g.red.ScaleX != 30 || g.red.ScaleY != 150 {
		t.Errorf("red scale %v,%v, want 30,150", g.red.ScaleX, g.red.ScaleY)
	}
	if g.red.Color != (Color{1, 0, 0, 1}) {
		t.Errorf("red color %v", g.red.Color)
	}
	if g.background.Visible {
		t.Error("background sprite should be hidden without an image")
	}
	if g.score.TextBlock.Content != "0 : 0" {
		t.Errorf("score text %q", g.score.TextBlock.Content)
	}
	if g.score.X != 400 || g.score.Y != 300 {
		t.Errorf("score at %v,%v, want centered", g.score.X, g.score.Y)
	}
}

func TestNewGameErrors(t *testing.T) {
	s, err := pong.NewSession(pong.ClassicConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewGame(s, nil, Options{}); err == nil {
		t.Error("expected error for nil world")
	}

	cfg := pong.ClassicConfig()
	cfg.Theme.Ball = "green"
	s, err = pong.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewGame(s, donburi.NewWorld(), Options{}); err == nil {
		t.Error("expected error for a bad theme color")
	}

	s, err = pong.NewSession(pong.ClassicConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewGame(s, donburi.NewWorld(), Options{FontTTF: []byte("not a font")}); err == nil {
		t.Error("expected error for bad font data")
	}
}

func TestLayoutResizeAnchorsPaddles(t *testing.T) {
	g, s := newTestGame(t, pong.ClassicConfig())

	w, h := g.Layout(1000, 400)
	if w != 1000 || h != 400 {
		t.Fatalf("Layout returned %d,%d", w, h)
	}
	g.step(1, frame)

	if s.Blue().Pos.X != 970 {
		t.Errorf("blue paddle x = %v, want 970", s.Blue().Pos.X)
	}
	if g.blue.X != 970 {
		t.Errorf("blue node x = %v, want 970", g.blue.X)
	}
	if s.Red().Pos.Y > 250 {
		t.Errorf("red paddle y = %v, want clamped to 250", s.Red().Pos.Y)
	}
	if g.background.ScaleX != 1000 || g.background.ScaleY != 400 {
		t.Errorf("background scale %v,%v", g.background.ScaleX, g.background.ScaleY)
	}
	if g.score.X != 500 || g.score.Y != 200 {
		t.Errorf("score at %v,%v, want 500,200", g.score.X, g.score.Y)
	}

	// Zero sizes (minimized window) keep the last play area.
	g.Layout(0, 0)
	if g.bounds != (pong.Bounds{W: 1000, H: 400}) {
		t.Errorf("bounds = %v", g.bounds)
	}
}

func TestScoreUpdatesTextAndPops(t *testing.T) {
	g, s := newTestGame(t, pong.ClassicConfig())

	s.Ball().Pos.X = -10
	g.step(1, frame)

	if got := g.score.TextBlock.Content; got != "0 : 1" {
		t.Errorf("score text = %q, want 0 : 1", got)
	}
	if g.score.ScaleX <= 1 {
		t.Errorf("score scale = %v, want the pop to be running", g.score.ScaleX)
	}
	if g.tweens.Len() != 1 {
		t.Errorf("tweens = %d, want 1", g.tweens.Len())
	}

	for i := 0; i < 60; i++ {
		g.step(1, frame)
	}
	if math.Abs(g.score.ScaleX-1) > 1e-3 {
		t.Errorf("score scale = %v after the pop, want 1", g.score.ScaleX)
	}
}

func TestPaddleHitFlashes(t *testing.T) {
	g, s := newTestGame(t, pong.ClassicConfig())

	s.Ball().Pos = pong.Vec2{X: 20, Y: 280}
	s.Ball().Vel = pong.Vec2{X: -3}
	g.step(1, frame)

	if g.red.Alpha >= 1 {
		t.Errorf("red alpha = %v, want a flash", g.red.Alpha)
	}
	if g.blue.Alpha != 1 {
		t.Errorf("blue alpha = %v, want untouched", g.blue.Alpha)
	}
}

func TestBallNodeFollowsSpin(t *testing.T) {
	g, s := newTestGame(t, pong.CurveConfig())

	s.Ball().Curve = 0.5
	g.step(1, frame)

	if g.ball.Rotation != s.Ball().Rotation || g.ball.Rotation == 0 {
		t.Errorf("ball node rotation = %v, session %v", g.ball.Rotation, s.Ball().Rotation)
	}
	c := s.Ball().Center()
	if g.ball.X != c.X || g.ball.Y != c.Y {
		t.Errorf("ball node at %v,%v, want %v", g.ball.X, g.ball.Y, c)
	}
}

func TestApplyKeys(t *testing.T) {
	s, err := pong.NewSession(pong.ClassicConfig())
	if err != nil {
		t.Fatal(err)
	}

	quit := applyKeys(s, []ebiten.Key{ebiten.KeyW, ebiten.KeyK, ebiten.KeySpace}, nil)
	if quit {
		t.Error("unexpected quit")
	}
	in := s.Input()
	if !in.RedUp || !in.BlueDown || in.RedDown || in.BlueUp {
		t.Errorf("input = %+v", *in)
	}

	applyKeys(s, nil, []ebiten.Key{ebiten.KeyW})
	if s.Input().RedUp {
		t.Error("W release not applied")
	}

	if !applyKeys(s, []ebiten.Key{ebiten.KeyEscape}, nil) {
		t.Error("Escape should quit")
	}
}

func TestFPSWidgetPinsToTopRight(t *testing.T) {
	g, _ := newTestGame(t, pong.ClassicConfig())
	g.ShowFPS()
	fps := g.fps
	g.ShowFPS()
	if g.fps != fps {
		t.Fatal("ShowFPS should add the widget once")
	}

	if g.fps.X != 800-fpsWidth-fpsMargin || g.fps.Y != fpsMargin {
		t.Errorf("fps at %v,%v, want the top-right corner", g.fps.X, g.fps.Y)
	}

	g.Layout(1000, 400)
	g.sync()
	if g.fps.X != 1000-fpsWidth-fpsMargin {
		t.Errorf("fps x = %v after resize, want %v", g.fps.X, 1000-fpsWidth-fpsMargin)
	}

	g.Layout(60, 400)
	g.sync()
	if g.fps.X != 0 {
		t.Errorf("fps x = %v in a narrow area, want 0", g.fps.X)
	}
}
