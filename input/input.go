// Package input maps keyboard, mouse, touch and gamepad state to actions.
package input

import (
	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists every physical control that triggers an action
type Binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
	Touch                  bool
}

// Bindings is the default control layout
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionPrimary: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		Touch:                  true,
	},
	cfg.ActionStart: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
	cfg.ActionMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
}

// Reusable slices to avoid allocations every frame
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Poll swaps the action buffers and records which actions are held this frame
func Poll(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	for actionID, binding := range Bindings {
		input.Current[actionID] = pressed(binding)
	}
}

func pressed(binding Binding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	if binding.Touch && len(touchIDs) > 0 {
		return true
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
