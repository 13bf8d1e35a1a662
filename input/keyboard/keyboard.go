// Package keyboard reads live input from ebiten. It is kept apart from package input so
// the simulation and replay packages stay headless.
package keyboard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actorsim/input"
)

const stickDeadzone = 0.2

// Device reads the keyboard and the first standard gamepad.
type Device struct{}

func New() *Device {
	return &Device{}
}

func (d *Device) Poll() input.Frame {
	var f input.Frame
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		f |= input.ButtonLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		f |= input.ButtonRight
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyZ) {
		f |= input.ButtonJump
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		f |= input.ButtonInteract
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeyJ) {
		f |= input.ButtonShoot
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			if leftX < 0 {
				f |= input.ButtonLeft
			} else {
				f |= input.ButtonRight
			}
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			f |= input.ButtonJump
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft) {
			f |= input.ButtonShoot
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			f |= input.ButtonInteract
		}
	}
	return f
}
