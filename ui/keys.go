package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key auto-repeat timing, in ticks.
const (
	RepeatDelay    = 30
	RepeatInterval = 4
)

// Repeats reports whether a key held for duration ticks fires on this tick:
// once on the press, then every RepeatInterval ticks after RepeatDelay.
func Repeats(duration int) bool {
	if duration == 1 {
		return true
	}
	if duration <= RepeatDelay {
		return false
	}
	return (duration-RepeatDelay-1)%RepeatInterval == 0
}

// KeyRepeated is IsKeyJustPressed plus keyboard-style auto-repeat.
func KeyRepeated(key ebiten.Key) bool {
	return Repeats(inpututil.KeyPressDuration(key))
}
