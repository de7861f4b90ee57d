package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the centre of the view in level pixels.
type CameraData struct {
	Position math.Vec2
	Width    float64
	Height   float64

	// Smoothing is the fraction of the gap to the target closed per tick.
	Smoothing float64
}

var Camera = donburi.NewComponentType[CameraData]()
