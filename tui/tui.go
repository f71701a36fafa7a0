// Package tui plays a match in a terminal with tcell.
//
// The play area is the terminal grid scaled by CellW x CellH, so a 80x30
// terminal is an 800x600 play area. Terminals report key presses but not
// releases; a held key is emulated by keeping the key down until its
// autorepeat stops arriving.
package tui

import (
	"context"
	"time"
	"unicode"

	"github.com/ArekP86/pong"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Size of one terminal cell in play-area units.
const (
	CellW = 10
	CellH = 20
)

const (
	blockRune = '█'

	defaultFrameInterval = 16 * time.Millisecond
	// Terminals wait roughly half a second before autorepeat starts, then
	// repeat every 30-50ms.
	defaultHoldInitial = 600 * time.Millisecond
	defaultHoldRepeat  = 120 * time.Millisecond
)

// Options configures a Host. Zero values pick the defaults.
type Options struct {
	FrameInterval time.Duration
	// HoldInitial is how long a first key press counts as held.
	HoldInitial time.Duration
	// HoldRepeat is how long each autorepeat extends the hold.
	HoldRepeat time.Duration
	Logger     *zap.Logger
}

// Host runs a session on a tcell screen.
type Host struct {
	screen  tcell.Screen
	session *pong.Session
	opts    Options
	log     *zap.Logger

	holds    map[rune]time.Time // release deadline per held key
	anchored pong.Bounds

	background tcell.Style
	ball       tcell.Style
	red        tcell.Style
	blue       tcell.Style
	text       tcell.Style
}

// New creates a host for an initialized screen. Run takes ownership of the
// screen and finalizes it on return.
func New(screen tcell.Screen, s *pong.Session, opts Options) *Host {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrameInterval
	}
	if opts.HoldInitial <= 0 {
		opts.HoldInitial = defaultHoldInitial
	}
	if opts.HoldRepeat <= 0 {
		opts.HoldRepeat = defaultHoldRepeat
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	theme := s.Config().Theme
	bg := tcell.GetColor(theme.Background)
	base := tcell.StyleDefault.Background(bg)

	screen.EnableMouse()

	return &Host{
		screen:     screen,
		session:    s,
		opts:       opts,
		log:        log.Named("tui"),
		holds:      make(map[rune]time.Time),
		anchored:   s.Config().Bounds,
		background: base,
		ball:       base.Foreground(tcell.GetColor(theme.Ball)),
		red:        base.Foreground(tcell.GetColor(theme.Red)),
		blue:       base.Foreground(tcell.GetColor(theme.Blue)),
		text:       base.Foreground(tcell.GetColor(theme.Text)).Bold(true),
	}
}

// Bounds returns the play area covered by the current terminal size.
func (h *Host) Bounds() pong.Bounds {
	w, ht := h.screen.Size()
	return pong.Bounds{W: float64(w * CellW), H: float64(ht * CellH)}
}

// Run pumps terminal events and advances the match every frame until ctx is
// done or a quit key (Esc, Ctrl-C, q) is pressed.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	evs := make(chan tcell.Event, 64)

	g.Go(func() error {
		return h.pump(ctx, evs)
	})
	g.Go(func() error {
		// Fini unblocks PollEvent in the pump.
		defer h.screen.Fini()
		defer cancel()
		return h.loop(ctx, evs)
	})

	return g.Wait()
}

func (h *Host) pump(ctx context.Context, evs chan<- tcell.Event) error {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case evs <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *Host) loop(ctx context.Context, evs <-chan tcell.Event) error {
	ticker := time.NewTicker(h.opts.FrameInterval)
	defer ticker.Stop()

	h.log.Info("match started",
		zap.Stringer("match", h.session.ID()),
		zap.Float64("w", h.Bounds().W),
		zap.Float64("h", h.Bounds().H))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-evs:
			if h.handle(ev, time.Now()) {
				h.log.Info("quit requested", zap.Stringer("score", h.session.Score()))
				return nil
			}
		case now := <-ticker.C:
			h.frame(now)
		}
	}
}

// handle applies one terminal event. Reports whether the player quit.
func (h *Host) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			r := unicode.ToLower(ev.Rune())
			if r == 'q' {
				return true
			}
			h.press(r, now)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.session.PointerMoved(float64(x*CellW+CellW/2), float64(y*CellH+CellH/2))
	}
	return false
}

// press holds a key. A first press holds it for HoldInitial; a press while
// held is autorepeat and extends the hold by HoldRepeat.
func (h *Host) press(r rune, now time.Time) {
	if !h.session.KeyDown(r) {
		return
	}
	if _, held := h.holds[r]; held {
		h.holds[r] = now.Add(h.opts.HoldRepeat)
		return
	}
	h.holds[r] = now.Add(h.opts.HoldInitial)
}

// expire releases keys whose autorepeat has stopped.
func (h *Host) expire(now time.Time) {
	for r, deadline := range h.holds {
		if now.After(deadline) {
			h.session.KeyUp(r)
			delete(h.holds, r)
		}
	}
}

// frame advances the match one step and redraws.
func (h *Host) frame(now time.Time) {
	h.expire(now)

	b := h.Bounds()
	if b != h.anchored {
		h.log.Debug("terminal resized", zap.Float64("w", b.W), zap.Float64("h", b.H))
		h.session.Anchor(b)
		h.anchored = b
	}

	h.session.Update(h.opts.FrameInterval.Seconds()*60, b)
	h.draw()
}
