// Package sound plays short synthesized tones for match events.
//
// A Player is an event sink: wire it into a session with
// pong.WithEventSink (or pong.MultiSink next to other sinks). Audio is
// optional; when the output device cannot be opened the player stays
// silent and the match runs normally.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ArekP86/pong"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// DefaultSampleRate is used when Config.SampleRate is zero.
const DefaultSampleRate = beep.SampleRate(48000)

// Effect is a sound played for a match event.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectHit         // ball off a paddle
	EffectBounce      // ball off a wall
	EffectScore       // point scored
)

type note struct {
	freq float64
	dur  time.Duration
}

var effectNotes = map[Effect][]note{
	EffectHit:    {{440, 60 * time.Millisecond}},
	EffectBounce: {{220, 40 * time.Millisecond}},
	EffectScore:  {{660, 120 * time.Millisecond}, {880, 120 * time.Millisecond}},
}

// EffectFor returns the effect played for an event kind, or EffectNone.
func EffectFor(kind pong.EventKind) Effect {
	switch kind {
	case pong.EventPaddleHit:
		return EffectHit
	case pong.EventWallBounce:
		return EffectBounce
	case pong.EventScore:
		return EffectScore
	}
	return EffectNone
}

// Tone builds the finite stream for an effect at the given volume (0..1).
func Tone(rate beep.SampleRate, effect Effect, volume float64) (beep.Streamer, error) {
	notes, ok := effectNotes[effect]
	if !ok {
		return nil, fmt.Errorf("sound: no tone for effect %d", effect)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sound: %w", err)
		}
		parts = append(parts, beep.Take(rate.N(n.dur), sine))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Config configures a Player.
type Config struct {
	SampleRate beep.SampleRate
	// Volume scales every effect, 0..1.
	Volume float64
}

// Player mixes effect tones into the speaker.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	log         *zap.Logger
}

// NewPlayer creates a silent player. Call Init to open the output device.
func NewPlayer(cfg Config, log *zap.Logger) *Player {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   log.Named("sound"),
	}
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	rate := p.cfg.SampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play queues an effect. It is a no-op before Init.
func (p *Player) Play(effect Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || effect == EffectNone {
		return
	}
	s, err := Tone(p.cfg.SampleRate, effect, p.cfg.Volume)
	if err != nil {
		p.log.Warn("tone unavailable", zap.Uint8("effect", uint8(effect)), zap.Error(err))
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// EmitEvent implements pong.EventSink.
func (p *Player) EmitEvent(event pong.Event) {
	p.Play(EffectFor(event.Kind))
}
