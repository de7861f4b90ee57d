package components

import (
	"github.com/automoto/playermotor/motor"
	"github.com/automoto/playermotor/shared/leveldata"
	"github.com/yohamta/donburi"
)

// StatsData accumulates what a player did over a run.
type StatsData struct {
	Ticks     int
	Distance  float64 // planar world units
	Airtime   float64 // seconds
	Jumps     int
	Dodges    int
	Landings  [motor.LandingHard + 1]int
	MaxImpact float64
}

type PlayerData struct {
	Index int
	Spawn leveldata.SpawnPoint
	Stats StatsData
}

var Player = donburi.NewComponentType[PlayerData]()
