package view

import (
	"errors"
	"fmt"

	"github.com/ArekP86/pong"
	"github.com/ArekP86/pong/ecs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	scorePopScale    = 1.4
	scorePopDuration = 0.4
	hitFlashAlpha    = 0.4
	hitFlashDuration = 0.25
)

// Options configures a Game.
type Options struct {
	Logger *zap.Logger
	// FontTTF overrides the score font. Defaults to Go Regular.
	FontTTF []byte
}

// Game drives a session and draws it. It implements ebiten.Game.
type Game struct {
	session *pong.Session
	world   donburi.World
	log     *zap.Logger

	scene      *Scene
	background *Node
	ball       *Node
	red        *Node
	blue       *Node
	score      *Node
	fps        *Node // nil until ShowFPS
	tweens     Tweens

	bounds   pong.Bounds // from Layout
	anchored pong.Bounds // last bounds passed to Anchor

	cursorX, cursorY int
	pressed          []ebiten.Key
	released         []ebiten.Key
}

// NewGame builds the scene for a session. world must be the Donburi world the
// session's event sink publishes to; the game subscribes to it for score and
// hit effects.
func NewGame(s *pong.Session, world donburi.World, opts Options) (*Game, error) {
	if world == nil {
		return nil, errors.New("view: nil world")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := s.Config()
	theme := cfg.Theme

	colors := make(map[string]Color, 5)
	for name, hex := range map[string]string{
		"background": theme.Background,
		"ball":       theme.Ball,
		"red":        theme.Red,
		"blue":       theme.Blue,
		"text":       theme.Text,
	} {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", name, err)
		}
		colors[name] = c
	}

	ttf := opts.FontTTF
	if ttf == nil {
		ttf = goregular.TTF
	}
	font, err := LoadTTFFont(ttf, theme.FontSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:  s,
		world:    world,
		log:      log,
		scene:    NewScene(),
		bounds:   cfg.Bounds,
		anchored: cfg.Bounds,
	}
	g.scene.ClearColor = colors["background"]
	root := g.scene.Root()

	if g.background, err = newSprite("background", theme.BackgroundImage, ColorWhite); err != nil {
		return nil, err
	}
	g.background.Visible = theme.BackgroundImage != ""
	root.AddChild(g.background)

	g.score = NewText("score", s.Score().String(), font)
	g.score.TextBlock.Color = colors["text"]
	root.AddChild(g.score)

	if g.red, err = newSprite("red", theme.PaddleImage, colors["red"]); err != nil {
		return nil, err
	}
	if g.blue, err = newSprite("blue", theme.PaddleImage, colors["blue"]); err != nil {
		return nil, err
	}
	if g.ball, err = newSprite("ball", theme.BallImage, colors["ball"]); err != nil {
		return nil, err
	}
	g.ball.CenterPivot()
	root.AddChild(g.red)
	root.AddChild(g.blue)
	root.AddChild(g.ball)

	ecs.SubscribeKind(world, pong.EventScore, g.onScore)
	ecs.SubscribeKind(world, pong.EventPaddleHit, g.onPaddleHit)

	g.sync()
	return g, nil
}

// newSprite creates a sprite from an optional image file. Image sprites keep
// their own colors; plain sprites are tinted.
func newSprite(name, path string, tint Color) (*Node, error) {
	if path == "" {
		n := NewSprite(name, nil)
		n.Color = tint
		return n, nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s image: %w", name, err)
	}
	return NewSprite(name, img), nil
}

// Scene returns the game's scene graph.
func (g *Game) Scene() *Scene { return g.scene }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	if applyKeys(g.session, g.pressed, g.released) {
		g.log.Info("quit requested",
			zap.Stringer("score", g.session.Score()),
			zap.Uint64("frame", g.session.Frame()))
		return ebiten.Termination
	}

	if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.session.PointerMoved(float64(x), float64(y))
	}

	tps := float64(ebiten.TPS())
	if tps <= 0 {
		tps = 60
	}
	g.step(60/tps, 1/tps)
	return nil
}

// step advances the match by one frame. delta is in 60 Hz frame units, dt in
// seconds.
func (g *Game) step(delta, dt float64) {
	if g.bounds != g.anchored {
		g.log.Debug("play area resized",
			zap.Float64("w", g.bounds.W),
			zap.Float64("h", g.bounds.H))
		g.session.Anchor(g.bounds)
		g.anchored = g.bounds
	}

	g.session.Update(delta, g.bounds)
	events.ProcessAllEvents(g.world)

	g.sync()
	g.tweens.Update(float32(dt))
	g.scene.Update(dt)
}

// sync copies the simulation state onto the scene nodes.
func (g *Game) sync() {
	b := g.bounds

	g.background.SetSize(b.W, b.H)

	ball := g.session.Ball()
	c := ball.Center()
	g.ball.SetSize(ball.Size.X, ball.Size.Y)
	g.ball.SetPosition(c.X, c.Y)
	g.ball.SetRotation(ball.Rotation)

	for _, p := range []struct {
		node   *Node
		paddle *pong.Paddle
	}{{g.red, g.session.Red()}, {g.blue, g.session.Blue()}} {
		p.node.SetSize(p.paddle.Size.X, p.paddle.Size.Y)
		p.node.SetPosition(p.paddle.Pos.X, p.paddle.Pos.Y)
	}

	w, h := g.score.TextBlock.Measure()
	g.score.SetPivot(w/2, h/2)
	g.score.SetPosition(b.W/2, b.H/2)

	if g.fps != nil {
		g.fps.SetPosition(fpsPosition(b))
	}
}

// ShowFPS adds the FPS overlay in the top-right corner of the play area.
func (g *Game) ShowFPS() {
	if g.fps != nil {
		return
	}
	g.fps = NewFPSWidget(g.session)
	g.scene.Root().AddChild(g.fps)
	g.sync()
}

func (g *Game) onScore(e pong.Event) {
	g.score.TextBlock.SetContent(e.Score.String())
	g.score.SetScale(scorePopScale, scorePopScale)
	g.tweens.Start(TweenScale(g.score, 1, 1, scorePopDuration, ease.OutBack))
}

func (g *Game) onPaddleHit(e pong.Event) {
	n := g.red
	if e.Side == pong.SideBlue {
		n = g.blue
	}
	n.SetAlpha(hitFlashAlpha)
	g.tweens.Start(TweenAlpha(n, 1, hitFlashDuration, ease.OutQuad))
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout implements ebiten.Game. The play area follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.bounds = pong.Bounds{W: float64(outsideWidth), H: float64(outsideHeight)}
	}
	return outsideWidth, outsideHeight
}

// RunConfig configures the window.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	TPS     int
	ShowFPS bool
}

// Run opens a resizable window and runs g until the window closes or a quit
// key is pressed.
func Run(g *Game, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.ShowFPS {
		g.ShowFPS()
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
