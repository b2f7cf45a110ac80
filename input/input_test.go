package input

import (
	"fmt"
	"testing"

	"github.com/alvaroalonsobabbel/srs-tetris/session"
	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		key    keyboard.KeyEvent
		action session.Action
	}{
		{key: keyboard.KeyEvent{Rune: 's'}, action: session.SoftDrop},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowDown}, action: session.SoftDrop},
		{key: keyboard.KeyEvent{Rune: 'a'}, action: session.MoveLeft},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}, action: session.MoveLeft},
		{key: keyboard.KeyEvent{Rune: 'd'}, action: session.MoveRight},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowRight}, action: session.MoveRight},
		{key: keyboard.KeyEvent{Rune: 'e'}, action: session.RotateRight},
		{key: keyboard.KeyEvent{Rune: 'x'}, action: session.RotateRight},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowUp}, action: session.RotateRight},
		{key: keyboard.KeyEvent{Rune: 'q'}, action: session.RotateLeft},
		{key: keyboard.KeyEvent{Rune: 'z'}, action: session.RotateLeft},
		{key: keyboard.KeyEvent{Rune: 'c'}, action: session.Hold},
		{key: keyboard.KeyEvent{Key: keyboard.KeySpace}, action: session.HardDrop},
		{key: keyboard.KeyEvent{Rune: ' '}, action: session.HardDrop},
		{key: keyboard.KeyEvent{Rune: 'w'}, action: session.HardDrop},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("key %v", tt.key), func(t *testing.T) {
			t.Parallel()
			got, ok := Translate(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.action, got)
		})
	}

	t.Run("unbound keys", func(t *testing.T) {
		for _, e := range []keyboard.KeyEvent{{Rune: 'p'}, {Key: keyboard.KeyEnter}, {Key: keyboard.KeyCtrlC}} {
			_, ok := Translate(e)
			assert.False(t, ok, "key %v", e)
		}
	})
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(keyboard.KeyEvent{Key: keyboard.KeyCtrlC}))
	assert.True(t, IsQuit(keyboard.KeyEvent{Key: keyboard.KeyEsc}))
	assert.False(t, IsQuit(keyboard.KeyEvent{Rune: 'q'}))
}
