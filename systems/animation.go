package systems

import (
	"github.com/automoto/playermotor/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations blends float parameters toward their targets and moves the
// tick's triggers into Fired for renderers.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := Step(ecs)
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Params == nil {
			return
		}
		anim.Params.Update(dt)
		anim.Fired = anim.Params.ConsumeTriggers()
	})
}
