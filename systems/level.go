package systems

import (
	"github.com/automoto/playermotor/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills every wall of the level.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	components.Solid.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Solid.Get(e).Object
		x, y := obj.X+camX, obj.Y+camY
		// Cull objects outside viewport
		if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
			return
		}
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), wallColor, false)
	})
}
