package systems

import (
	"github.com/automoto/playermotor/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput plays scripted input up to the current time. Live devices are
// sampled by the motor itself, so only scripts need driving here.
func UpdateInput(ecs *ecs.ECS) {
	now := Elapsed(ecs)
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		in := components.Input.Get(e)
		if in.Script == nil {
			return
		}
		in.Script.Advance(now)
	})
}

// ScriptsDone reports whether every scripted player has run out of input.
// Worlds without scripts are never done.
func ScriptsDone(ecs *ecs.ECS) bool {
	now := Elapsed(ecs)
	scripted, done := 0, 0
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		in := components.Input.Get(e)
		if in.Script == nil {
			return
		}
		scripted++
		if in.Script.Done(now) {
			done++
		}
	})
	return scripted > 0 && done == scripted
}
