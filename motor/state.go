package motor

import "github.com/go-gl/mathgl/mgl64"

// MotionState is the per-tick kinematic state. World space is y-up and the
// planar axes are x and z.
type MotionState struct {
	GroundedNow  bool
	GroundedPrev bool

	VerticalVelocity float64
	// LastAirborneVerticalVelocity is the vertical velocity recorded on the last
	// airborne tick, before gravity was applied. Landing impact reads it.
	LastAirborneVerticalVelocity float64

	RawMoveInput       mgl64.Vec2
	SmoothedMoveInput  mgl64.Vec2
	HorizontalVelocity mgl64.Vec3
	// LastMoveDirection is the last planar direction whose magnitude cleared the deadzone.
	LastMoveDirection mgl64.Vec3
}

// DodgeState holds the direction latched when the active dodge started.
type DodgeState struct {
	Direction mgl64.Vec3
}

// LandingType classifies a ground contact by impact speed.
type LandingType int

const (
	LandingNone LandingType = iota
	LandingRoll
	LandingHard
)

func (l LandingType) String() string {
	switch l {
	case LandingRoll:
		return "roll"
	case LandingHard:
		return "hard"
	default:
		return "none"
	}
}

// LandingEvent describes the airborne to grounded transition of one tick.
type LandingEvent struct {
	Type   LandingType
	Impact float64 // absolute vertical speed at touchdown
}
