package view

import (
	"github.com/ArekP86/pong"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyRunes maps the physical keys the session binds to their runes.
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyW: pong.KeyRedUp,
	ebiten.KeyS: pong.KeyRedDown,
	ebiten.KeyI: pong.KeyBlueUp,
	ebiten.KeyK: pong.KeyBlueDown,
}

// quitKeys end the game.
var quitKeys = map[ebiten.Key]bool{
	ebiten.KeyEscape: true,
	ebiten.KeyQ:      true,
}

// applyKeys forwards key transitions to the session. Reports whether a quit
// key was pressed.
func applyKeys(s *pong.Session, pressed, released []ebiten.Key) (quit bool) {
	for _, k := range pressed {
		if quitKeys[k] {
			quit = true
			continue
		}
		if r, ok := keyRunes[k]; ok {
			s.KeyDown(r)
		}
	}
	for _, k := range released {
		if r, ok := keyRunes[k]; ok {
			s.KeyUp(r)
		}
	}
	return quit
}
