// Package input maps terminal key events to game actions.
package input

import (
	"github.com/alvaroalonsobabbel/srs-tetris/session"
	"github.com/eiannone/keyboard"
)

var keyActions = map[keyboard.Key]session.Action{
	keyboard.KeyArrowLeft:  session.MoveLeft,
	keyboard.KeyArrowRight: session.MoveRight,
	keyboard.KeyArrowDown:  session.SoftDrop,
	keyboard.KeyArrowUp:    session.RotateRight,
	keyboard.KeySpace:      session.HardDrop,
}

var runeActions = map[rune]session.Action{
	'a': session.MoveLeft,
	'd': session.MoveRight,
	's': session.SoftDrop,
	'w': session.HardDrop,
	'e': session.RotateRight,
	'x': session.RotateRight,
	'q': session.RotateLeft,
	'z': session.RotateLeft,
	'c': session.Hold,
	' ': session.HardDrop,
}

// Translate returns the action bound to a key event, if any.
func Translate(e keyboard.KeyEvent) (session.Action, bool) {
	// space may come either as a rune or as KeySpace depending on the platform.
	if e.Rune != 0 {
		a, ok := runeActions[e.Rune]
		return a, ok
	}
	a, ok := keyActions[e.Key]
	return a, ok
}

// IsQuit reports whether the event asks to leave the game.
func IsQuit(e keyboard.KeyEvent) bool {
	return e.Key == keyboard.KeyCtrlC || e.Key == keyboard.KeyEsc
}
