package components

import "github.com/yohamta/donburi"

// MotorState is a coarse label derived from the motor after each tick, used
// by debug output and run summaries.
type MotorState int

const (
	StateNone MotorState = iota
	StateIdle
	StateMoving
	StateAirborne
	StateDodging
	StateRecovering
)

func (s MotorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateAirborne:
		return "airborne"
	case StateDodging:
		return "dodging"
	case StateRecovering:
		return "recovering"
	default:
		return "none"
	}
}

type StateData struct {
	CurrentState  MotorState
	PreviousState MotorState
	StateTime     float64 // seconds in CurrentState
}

var State = donburi.NewComponentType[StateData]()

// ClockData is the fixed-step simulation clock.
type ClockData struct {
	Step    float64
	Tick    int
	Elapsed float64
}

var Clock = donburi.NewComponentType[ClockData]()
