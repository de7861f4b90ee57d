package gamemath

import "github.com/go-gl/mathgl/mgl64"

// SmoothDamp eases current toward target with a critically damped spring.
// velocity carries the spring state between calls and is updated in place.
// The result never overshoots target.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if smoothTime <= 0 {
		*velocity = 0
		return target
	}
	if dt <= 0 {
		return current
	}

	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	if (target-current > 0) == (out > target) {
		out = target
		*velocity = 0
	}
	return out
}

// SmoothDampVec2 applies SmoothDamp per component.
func SmoothDampVec2(current, target mgl64.Vec2, velocity *mgl64.Vec2, smoothTime, dt float64) mgl64.Vec2 {
	vx, vy := velocity.X(), velocity.Y()
	out := mgl64.Vec2{
		SmoothDamp(current.X(), target.X(), &vx, smoothTime, dt),
		SmoothDamp(current.Y(), target.Y(), &vy, smoothTime, dt),
	}
	*velocity = mgl64.Vec2{vx, vy}
	return out
}
