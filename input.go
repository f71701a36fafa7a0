package pong

import "unicode"

// Default key bindings. Matching is case-insensitive.
const (
	KeyRedUp    = 'w'
	KeyRedDown  = 's'
	KeyBlueUp   = 'i'
	KeyBlueDown = 'k'
)

// InputState holds one level-triggered flag per paddle direction. A flag is
// set while its key is held.
type InputState struct {
	RedUp    bool
	RedDown  bool
	BlueUp   bool
	BlueDown bool
}

// KeyDown marks the key bound to r as held. Reports whether r is bound.
func (in *InputState) KeyDown(r rune) bool {
	return in.set(r, true)
}

// KeyUp marks the key bound to r as released. Reports whether r is bound.
func (in *InputState) KeyUp(r rune) bool {
	return in.set(r, false)
}

func (in *InputState) set(r rune, held bool) bool {
	switch unicode.ToLower(r) {
	case KeyRedUp:
		in.RedUp = held
	case KeyRedDown:
		in.RedDown = held
	case KeyBlueUp:
		in.BlueUp = held
	case KeyBlueDown:
		in.BlueDown = held
	default:
		return false
	}
	return true
}

// Axis returns -1, 0 or +1 per held direction of side, summed: holding both
// up and down cancels out.
func (in InputState) Axis(side Side) float64 {
	var up, down bool
	switch side {
	case SideRed:
		up, down = in.RedUp, in.RedDown
	case SideBlue:
		up, down = in.BlueUp, in.BlueDown
	}
	var axis float64
	if up {
		axis--
	}
	if down {
		axis++
	}
	return axis
}

// MouseState is the last pointer position reported by the host. Only the
// autopilot control mode reads it.
type MouseState struct {
	X, Y float64
	Seen bool
}
