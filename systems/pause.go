package systems

import (
	"github.com/automoto/playermotor/components"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause flips the pause state and returns the new one.
func TogglePause(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	pause.StepOnce = false
	return pause.IsPaused
}

// RequestStep lets one frame run while paused. It has no effect otherwise.
func RequestStep(ecs *ecs.ECS) {
	if pause := GetOrCreatePause(ecs); pause.IsPaused {
		pause.StepOnce = true
	}
}

// IsPaused reports whether gameplay systems are currently skipped.
func IsPaused(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	return pause.IsPaused && !pause.StepOnce
}

// EndPauseStep consumes a pending single step. It runs after every gameplay
// system.
func EndPauseStep(ecs *ecs.ECS) {
	GetOrCreatePause(ecs).StepOnce = false
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
