package pong

import "strconv"

// Score holds both players' points. Points only ever go up, one at a time.
type Score struct {
	Red  int
	Blue int
}

// String renders the score the way it is displayed: "<red> : <blue>".
func (s Score) String() string {
	return strconv.Itoa(s.Red) + " : " + strconv.Itoa(s.Blue)
}

// Of returns the points of the given side.
func (s Score) Of(side Side) int {
	switch side {
	case SideRed:
		return s.Red
	case SideBlue:
		return s.Blue
	}
	return 0
}

func (s *Score) award(side Side) {
	switch side {
	case SideRed:
		s.Red++
	case SideBlue:
		s.Blue++
	}
}
