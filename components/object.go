package components

import (
	"github.com/automoto/playermotor/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SolidData is a static collision box.
type SolidData struct {
	*resolv.Object
}

var Solid = donburi.NewComponentType[SolidData]()

// BodyData is the movable collision body a motor drives.
type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
