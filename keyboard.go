package sable

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard tracks a boolean press state per key from press/release edge
// events. The engine polls the host's edge events once per tick while the
// keyboard is attached; game code reads the folded state with IsPressed.
type Keyboard struct {
	attached bool
	pressed  map[ebiten.Key]bool

	// scratch buffers reused across polls
	justPressed  []ebiten.Key
	justReleased []ebiten.Key
}

func newKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[ebiten.Key]bool)}
}

func (k *Keyboard) attach() {
	k.attached = true
}

// detach stops polling and drops all press state.
func (k *Keyboard) detach() {
	k.attached = false
	k.pressed = make(map[ebiten.Key]bool)
}

// poll folds this tick's edge events into the press-state map.
func (k *Keyboard) poll() {
	k.justPressed = inpututil.AppendJustPressedKeys(k.justPressed[:0])
	for _, key := range k.justPressed {
		k.press(key)
	}
	k.justReleased = inpututil.AppendJustReleasedKeys(k.justReleased[:0])
	for _, key := range k.justReleased {
		k.release(key)
	}
}

// press records a key-down edge. Exposed to the engine and to InjectPress.
func (k *Keyboard) press(key ebiten.Key) {
	k.pressed[key] = true
}

// release records a key-up edge.
func (k *Keyboard) release(key ebiten.Key) {
	delete(k.pressed, key)
}

// IsPressed reports whether the key is currently held.
func (k *Keyboard) IsPressed(key ebiten.Key) bool {
	return k.pressed[key]
}

// InjectPress feeds a synthetic key-down edge, bypassing the host input
// device. Intended for tests and scripted playback.
func (k *Keyboard) InjectPress(key ebiten.Key) {
	k.press(key)
}

// InjectRelease feeds a synthetic key-up edge.
func (k *Keyboard) InjectRelease(key ebiten.Key) {
	k.release(key)
}
