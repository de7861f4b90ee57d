package components

import (
	"github.com/automoto/playermotor/motor"
	"github.com/yohamta/donburi"
)

// MotorData owns a player's motor and the result of its last tick.
type MotorData struct {
	Controller *motor.Controller
	Last       motor.TickResult
}

var Motor = donburi.NewComponentType[MotorData]()
