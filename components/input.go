package components

import (
	"github.com/automoto/playermotor/config"
	"github.com/automoto/playermotor/input"
	"github.com/automoto/playermotor/motor"
	"github.com/yohamta/donburi"
)

// InputData binds a player to its input source. Script is optional and is
// advanced by the input system before the motor ticks.
type InputData struct {
	Mode   config.InputMode
	Source motor.InputSource
	Script *input.ScriptDevice
}

var Input = donburi.NewComponentType[InputData]()
