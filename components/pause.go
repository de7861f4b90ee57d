package components

import "github.com/yohamta/donburi"

// PauseData freezes the simulation. StepOnce lets exactly one frame through
// while paused and is cleared at the end of that frame.
type PauseData struct {
	IsPaused bool
	StepOnce bool
}

var Pause = donburi.NewComponentType[PauseData]()
