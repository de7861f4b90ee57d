package systems

import (
	"github.com/automoto/playermotor/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one fixed step. It runs last
// so every other system in a frame sees the same Elapsed value.
func UpdateClock(ecs *ecs.ECS) {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)
	clock.Tick++
	clock.Elapsed = float64(clock.Tick) * clock.Step
}

// Step returns the fixed step, or 0 when no clock exists.
func Step(ecs *ecs.ECS) float64 {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(clockEntry).Step
}

// Elapsed returns the simulated time in seconds.
func Elapsed(ecs *ecs.ECS) float64 {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(clockEntry).Elapsed
}
