package motor

import "github.com/go-gl/mathgl/mgl64"

// Resolver performs collision-resolved movement for the body the motor drives.
// Move may be called several times per tick; each call resolves against the
// world and refreshes the contact state read by the next IsGrounded.
type Resolver interface {
	IsGrounded() bool
	Move(delta mgl64.Vec3)
}

// AnimationTarget receives named animation parameters.
type AnimationTarget interface {
	SetBool(name string, v bool)
	SetFloat(name string, v float64)
	SetInt(name string, v int)
	SetTrigger(name string)
}
