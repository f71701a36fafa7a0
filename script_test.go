package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"empty", "steps: []", "no steps"},
		{"not yaml", "steps: [", "parse input script"},
		{"unknown action", "steps:\n  - action: jump", "unknown action"},
		{"missing key", "steps:\n  - action: press", "single-character key"},
		{"long key", "steps:\n  - action: tap\n    key: up", "single-character key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadScriptAcceptsJSON(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "pointer", "x": 10, "y": 20}]}`))
	require.NoError(t, err)

	s, _ := newTestSession(t, ClassicConfig())
	r.Step(s)
	assert.True(t, r.Done())
	assert.Equal(t, MouseState{X: 10, Y: 20, Seen: true}, s.Mouse())
}

func TestScriptTapHoldsKeyForFrames(t *testing.T) {
	r, err := LoadScript([]byte(`
steps:
  - action: tap
    key: w
    frames: 3
`))
	require.NoError(t, err)
	s, _ := newTestSession(t, ClassicConfig())

	var held []bool
	for i := 0; i < 5; i++ {
		r.Step(s)
		held = append(held, s.Input().RedUp)
		s.Update(1, testBounds)
	}

	assert.Equal(t, []bool{true, true, true, false, false}, held)
	assert.True(t, r.Done())
}

func TestScriptSingleFrameTap(t *testing.T) {
	r, err := LoadScript([]byte("steps:\n  - {action: tap, key: k}"))
	require.NoError(t, err)
	s, _ := newTestSession(t, ClassicConfig())

	r.Step(s)
	assert.True(t, s.Input().BlueDown)
	s.Update(1, testBounds)
	r.Step(s)
	assert.False(t, s.Input().BlueDown)
	assert.True(t, r.Done())
}

func TestScriptPressWaitRelease(t *testing.T) {
	r, err := LoadScript([]byte(`
steps:
  - action: press
    key: s
  - action: wait
    frames: 2
  - action: release
    key: s
`))
	require.NoError(t, err)
	s, _ := newTestSession(t, ClassicConfig())

	frames := 0
	for !r.Done() {
		r.Step(s)
		s.Update(1, testBounds)
		frames++
		require.Less(t, frames, 10)
	}

	assert.Equal(t, 4, frames, "press, two wait frames, release")
	assert.False(t, s.Input().RedDown)
	assert.Greater(t, s.Red().Pos.Y, 225.0, "the held key moved the paddle down")

	// Stepping a finished runner is a no-op.
	r.Step(s)
	assert.True(t, r.Done())
}
