package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ApproachExp moves current toward target by the fraction 1-exp(-dt/tau).
// A non-positive tau snaps straight to the target.
func ApproachExp(current, target mgl64.Vec3, tau, dt float64) mgl64.Vec3 {
	if tau <= 0 {
		return target
	}
	if dt <= 0 {
		return current
	}
	t := 1 - math.Exp(-dt/tau)
	next := current.Add(target.Sub(current).Mul(t))
	if next.Sub(target).Len() < 1e-6 {
		return target
	}
	return next
}

// ClampMagnitude shortens v to max when it is longer.
func ClampMagnitude(v mgl64.Vec2, max float64) mgl64.Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Planar drops the vertical component.
func Planar(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// Clamp01 constrains v to [0, 1].
func Clamp01(v float64) float64 {
	return ClampFloat(v, 0, 1)
}

// ClampFloat constrains value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
