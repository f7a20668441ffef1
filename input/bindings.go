// Package input maps keyboard and gamepad state to playground actions.
package input

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical playground action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionToggleDebug
	ActionReset
	ActionCount // Must be last - used for array sizing
)

// Binding represents the keys and buttons bound to an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds the active mapping for every action
var Bindings map[ActionID]Binding

func init() {
	Bindings = map[ActionID]Binding{
		ActionMoveLeft: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		ActionMoveRight: {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		ActionJump: {
			Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeySpace},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		ActionToggleDebug: {
			Keys: []ebiten.Key{ebiten.KeyF3},
			// Select / Share button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
		ActionReset: {
			Keys: []ebiten.Key{ebiten.KeyR},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
	}
}
