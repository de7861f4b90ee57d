package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DeltaAngle returns the shortest signed difference target-current in degrees,
// in the range [-180, 180).
func DeltaAngle(current, target float64) float64 {
	d := math.Mod(target-current, 360)
	if d < -180 {
		d += 360
	} else if d >= 180 {
		d -= 360
	}
	return d
}

// MoveTowardsAngle rotates current toward target by at most maxDelta degrees.
func MoveTowardsAngle(current, target, maxDelta float64) float64 {
	d := DeltaAngle(current, target)
	if math.Abs(d) <= maxDelta {
		return NormalizeAngle(current + d)
	}
	if d < 0 {
		return NormalizeAngle(current - maxDelta)
	}
	return NormalizeAngle(current + maxDelta)
}

// NormalizeAngle wraps degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// YawOf returns the heading of a planar direction in degrees. +Z is 0 and +X is 90.
func YawOf(dir mgl64.Vec3) float64 {
	return NormalizeAngle(mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z())))
}

// DirectionOf is the inverse of YawOf and returns a unit planar vector.
func DirectionOf(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}
