// Package ebitenpoll reads keyboard and gamepad state through ebiten.
package ebitenpoll

import (
	"github.com/automoto/playermotor/input"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons mapped to one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds all input mappings
type Bindings struct {
	Actions [input.ActionCount]Binding

	// Digital movement keys. Up means forward (+Z).
	Left, Right, Up, Down []ebiten.Key

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// DefaultBindings maps WASD/arrows to movement, space to jump, shift to sprint
// and C or left ctrl to dodge. Gamepads use the left stick, A to jump, B to
// dodge and the right shoulder to sprint.
func DefaultBindings() Bindings {
	var b Bindings
	b.AnalogDeadzone = 0.25
	b.Left = []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}
	b.Right = []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}
	b.Up = []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}
	b.Down = []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}

	b.Actions[input.ActionJump] = Binding{
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	}
	b.Actions[input.ActionDodge] = Binding{
		Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyControlLeft},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	}
	b.Actions[input.ActionSprint] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	}
	return b
}

// Device polls ebiten. It must be read from the ebiten update goroutine.
type Device struct {
	bindings Bindings
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

// New builds a device with the given bindings.
func New(b Bindings) *Device {
	return &Device{bindings: b}
}

var _ input.Device = (*Device)(nil)

// MoveAxis merges the digital keys with the strongest left stick found. It
// also refreshes the gamepad list used by Held.
func (d *Device) MoveAxis() mgl64.Vec2 {
	var v mgl64.Vec2
	if anyKey(d.bindings.Left) {
		v[0]--
	}
	if anyKey(d.bindings.Right) {
		v[0]++
	}
	if anyKey(d.bindings.Up) {
		v[1]++
	}
	if anyKey(d.bindings.Down) {
		v[1]--
	}

	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])
	for _, id := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		// Stick up is negative on the vertical axis
		stick := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if stick.Len() > d.bindings.AnalogDeadzone && stick.Len() > v.Len() {
			v = stick
		}
	}

	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}

// Held reports whether any key or button bound to a is down.
func (d *Device) Held(a input.Action) bool {
	if a < 0 || a >= input.ActionCount {
		return false
	}
	b := d.bindings.Actions[a]
	if anyKey(b.Keys) {
		return true
	}
	for _, id := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func anyKey(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
