package tags

import (
	"github.com/automoto/playermotor/physics"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = physics.SolidTag
	ResolvPlayer = "Player"
)
