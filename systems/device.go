package systems

import (
	"github.com/automoto/scrollctl/components"
	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var touchIDs []ebiten.TouchID

var deviceActions = map[input.Action]cfg.ActionID{
	input.ActionForward:  cfg.ActionScrollForward,
	input.ActionBackward: cfg.ActionScrollBackward,
	input.ActionFast:     cfg.ActionScrollFast,
}

// Device exposes ebiten's input state to the scroll adapters. Key state
// comes from the Input component, so UpdateInput must run first.
type Device struct {
	input *components.InputData
}

func NewDevice(ecs *ecs.ECS) *Device {
	return &Device{input: getOrCreateInput(ecs)}
}

func (d *Device) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// Pointer prefers the first touch over the mouse.
func (d *Device) Pointer() (int, int, bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	x, y := ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (d *Device) Pressed(a input.Action) bool {
	id, ok := deviceActions[a]
	if !ok {
		return false
	}
	return d.input.Current[id]
}
