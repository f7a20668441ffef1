package input

import "github.com/hajimehoshi/ebiten/v2"

// State is a double-buffered snapshot of which actions are held.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll swaps the buffers and reads the bound keys and buttons.
func (s *State) Poll() {
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
				}
			}
		}
	}
}

// Pressed reports whether the action is held this tick.
func (s *State) Pressed(a ActionID) bool { return s.Current[a] }

// JustPressed reports whether the action went down this tick.
func (s *State) JustPressed(a ActionID) bool {
	return s.Current[a] && !s.Previous[a]
}
