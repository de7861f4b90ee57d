package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/playermotor/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor   = color.RGBA{40, 40, 48, 255}
	solidColor  = color.RGBA{100, 100, 100, 255}
	playerColor = color.RGBA{0, 0, 255, 255}
	lockedColor = color.RGBA{255, 160, 0, 255}
	invulnColor = color.RGBA{0, 255, 0, 255}
)

// DrawDebug outlines every collision object and prints a readout of every
// motor.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	for _, obj := range space.Objects() {
		c := solidColor
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.HasComponent(components.Motor) {
			c = motorColor(entry)
		}
		strokeRect(screen, obj, camX, camY, c)
	}

	var sb strings.Builder
	components.Motor.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Motor.Get(e).Controller
		if ctrl == nil {
			return
		}
		m := ctrl.Motion()
		state := components.StateIdle
		if e.HasComponent(components.State) {
			state = components.State.Get(e).CurrentState
		}
		fmt.Fprintf(&sb, "%-10s yaw %6.1f  hv %5.2f  vy %6.2f  lock %.2f\n",
			state, ctrl.Yaw(), m.HorizontalVelocity.Len(), m.VerticalVelocity, ctrl.Timers().ControlLock)
	})
	ebitenutil.DebugPrint(screen, sb.String())
}

func motorColor(e *donburi.Entry) color.RGBA {
	ctrl := components.Motor.Get(e).Controller
	switch {
	case ctrl == nil:
		return playerColor
	case ctrl.IsInvulnerable():
		return invulnColor
	case ctrl.IsControlLocked():
		return lockedColor
	default:
		return playerColor
	}
}

func strokeRect(screen *ebiten.Image, obj *resolv.Object, camX, camY float64, c color.Color) {
	x := float32(obj.X + camX)
	y := float32(obj.Y + camY)
	w, h := float32(obj.W), float32(obj.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
