package factory

import (
	"github.com/automoto/playermotor/archetypes"
	"github.com/automoto/playermotor/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera adds a camera with a width by height pixel view, starting on
// the first player when one exists.
func CreateCamera(ecs *ecs.ECS, width, height int, smoothing float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{
		Width:     float64(width),
		Height:    float64(height),
		Smoothing: smoothing,
	}
	if playerEntry, ok := components.Body.First(ecs.World); ok {
		obj := components.Body.Get(playerEntry).Object
		data.Position.X = obj.X + obj.W/2
		data.Position.Y = obj.Y + obj.H/2
	}
	components.Camera.SetValue(camera, data)
	return camera
}
