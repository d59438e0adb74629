// Package input captures the keyboard into a plain keyed-boolean snapshot.
// Entities read the snapshot once per tick; press-vs-hold edge detection is
// each entity's own responsibility, which keeps the snapshot trivially
// fabricable in tests.
package input

import "github.com/hajimehoshi/ebiten/v2"

// Key names the logical game actions rather than physical keys.
type Key string

const (
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyAttack Key = "attack"
	KeyPause  Key = "pause"
)

// State is a snapshot of which logical keys are currently held.
type State struct {
	Held map[Key]bool
}

// NewState returns an empty snapshot with no keys held.
func NewState() State {
	return State{Held: make(map[Key]bool)}
}

// IsHeld reports whether the named key is currently down.
func (s State) IsHeld(key Key) bool {
	return s.Held[key]
}

// bindings maps logical keys to their physical keyboard keys. Arrow keys
// and WASD both drive movement.
var bindings = map[Key][]ebiten.Key{
	KeyUp:     {ebiten.KeyW, ebiten.KeyArrowUp},
	KeyDown:   {ebiten.KeyS, ebiten.KeyArrowDown},
	KeyLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
	KeyRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
	KeyAttack: {ebiten.KeySpace, ebiten.KeyJ},
	KeyPause:  {ebiten.KeyEscape},
}

// Capture reads the current keyboard state into a fresh snapshot.
func Capture() State {
	s := NewState()
	for key, physical := range bindings {
		for _, pk := range physical {
			if ebiten.IsKeyPressed(pk) {
				s.Held[key] = true
				break
			}
		}
	}
	return s
}
