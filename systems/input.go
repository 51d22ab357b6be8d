package systems

import (
	"github.com/automoto/scrollctl/components"
	cfg "github.com/automoto/scrollctl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the InputComponent.
// Must run BEFORE UpdateScrollViews in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Left stick scrolls like the d-pad
	if forward, backward := analogScroll(gamepadIDs); forward || backward {
		input.Current[cfg.ActionScrollForward] = input.Current[cfg.ActionScrollForward] || forward
		input.Current[cfg.ActionScrollBackward] = input.Current[cfg.ActionScrollBackward] || backward
		gamepadUsed = true
	}

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		input.LastInputMethod = components.InputPointer
	}
}

// analogScroll reads the left stick's vertical axis from all gamepads
func analogScroll(gamepads []ebiten.GamepadID) (forward, backward bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical > deadzone {
			forward = true
		}
		if vertical < -deadzone {
			backward = true
		}
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
