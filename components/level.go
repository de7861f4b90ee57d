package components

import (
	"github.com/automoto/playermotor/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name string
	Data *leveldata.CollisionData
}

var Level = donburi.NewComponentType[LevelData]()

var Space = donburi.NewComponentType[resolv.Space]()
