package components

import (
	"github.com/automoto/playermotor/animation"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Params *animation.ParamStore
	// Fired keeps the triggers consumed on the last tick for renderers.
	Fired []string
}

var Animation = donburi.NewComponentType[AnimationData]()
