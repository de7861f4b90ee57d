package systems

import (
	"math"

	"github.com/automoto/playermotor/components"
	"github.com/automoto/playermotor/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the first player, keeping the view
// inside the level where the level is large enough.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Body.Get(playerEntry).Object
	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2

	if levelEntry, ok := components.Level.First(e.World); ok {
		data := components.Level.Get(levelEntry).Data
		targetX = clampView(targetX, camera.Width, float64(data.MapWidth))
		targetY = clampView(targetY, camera.Height, float64(data.MapHeight))
	}

	smoothing := camera.Smoothing
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 1
	}
	camera.Position.X += (targetX - camera.Position.X) * smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * smoothing
}

// clampView keeps a view of size span inside [0, extent]. Levels smaller than
// the view are centred.
func clampView(center, span, extent float64) float64 {
	if extent <= span {
		return extent / 2
	}
	return math.Max(span/2, math.Min(extent-span/2, center))
}

// cameraOffset is the translation from level pixels to screen pixels.
func cameraOffset(e *ecs.ECS, width, height int) (float64, float64) {
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
	}
	if playerEntry, ok := tags.Player.First(e.World); ok {
		obj := components.Body.Get(playerEntry).Object
		return float64(width)/2 - (obj.X + obj.W/2), float64(height)/2 - (obj.Y + obj.H/2)
	}
	return 0, 0
}
