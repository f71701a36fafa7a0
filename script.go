package pong

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Key    string  `yaml:"key,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// inputScript is the top-level structure of an input script.
type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner feeds scripted input into a Session, one step per frame.
// Call Step before each Session.Update.
//
// Supported actions:
//
//	press   key          hold a key
//	release key          release a key
//	tap     key frames   hold a key for the given number of updates
//	pointer x y          move the pointer
//	wait    frames       do nothing for the given number of frames
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) input script and returns a runner
// positioned at its first step.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}

	steps := make([]scriptStep, 0, len(script.Steps))
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "tap":
			if utf8.RuneCountInString(st.Key) != 1 {
				return nil, fmt.Errorf("parse input script: step %d: %s needs a single-character key, got %q", i, st.Action, st.Key)
			}
		case "pointer", "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}

		// A tap is a press, a wait covering the rest of the hold, and a
		// release on the following frame.
		if st.Action == "tap" {
			steps = append(steps, scriptStep{Action: "press", Key: st.Key})
			if st.Frames > 1 {
				steps = append(steps, scriptStep{Action: "wait", Frames: st.Frames - 1})
			}
			steps = append(steps, scriptStep{Action: "release", Key: st.Key})
			continue
		}
		steps = append(steps, st)
	}
	return &ScriptRunner{steps: steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *ScriptRunner) Step(s *Session) {
	if r.done {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	key, _ := utf8.DecodeRuneInString(st.Key)
	switch st.Action {
	case "press":
		s.KeyDown(key)
	case "release":
		s.KeyUp(key)
	case "pointer":
		s.PointerMoved(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
