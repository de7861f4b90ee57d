package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSmoothDampConvergesWithoutOvershoot(t *testing.T) {
	var vel float64
	cur := 0.0
	for i := 0; i < 240; i++ {
		cur = SmoothDamp(cur, 1, &vel, 0.08, 1.0/60)
		assert.LessOrEqual(t, cur, 1.0)
	}
	assert.InDelta(t, 1.0, cur, 1e-6)
}

func TestSmoothDampZeroSmoothTimeSnaps(t *testing.T) {
	vel := 3.0
	out := SmoothDamp(0.2, 0.9, &vel, 0, 1.0/60)
	assert.Equal(t, 0.9, out)
	assert.Equal(t, 0.0, vel)
}

func TestSmoothDampSimilarAcrossFrameRates(t *testing.T) {
	run := func(steps int) float64 {
		var vel float64
		cur := 0.0
		dt := 0.1 / float64(steps)
		for i := 0; i < steps; i++ {
			cur = SmoothDamp(cur, 1, &vel, 0.08, dt)
		}
		return cur
	}
	assert.InDelta(t, run(6), run(24), 0.05)
}

func TestSmoothDampVec2(t *testing.T) {
	var vel mgl64.Vec2
	out := SmoothDampVec2(mgl64.Vec2{}, mgl64.Vec2{1, -1}, &vel, 0.1, 1.0/60)
	assert.Greater(t, out.X(), 0.0)
	assert.Less(t, out.Y(), 0.0)
	assert.InDelta(t, out.X(), -out.Y(), 1e-12)
}

func TestApproachExp(t *testing.T) {
	target := mgl64.Vec3{5, 0, 0}

	assert.Equal(t, target, ApproachExp(mgl64.Vec3{}, target, 0, 0.016))

	got := ApproachExp(mgl64.Vec3{}, target, 0.1, 0.1)
	assert.InDelta(t, 5*(1-math.Exp(-1)), got.X(), 1e-9)

	cur := mgl64.Vec3{}
	for i := 0; i < 600; i++ {
		cur = ApproachExp(cur, target, 0.1, 1.0/60)
	}
	assert.Equal(t, target, cur)
}

func TestClampMagnitude(t *testing.T) {
	assert.Equal(t, mgl64.Vec2{0.3, 0.4}, ClampMagnitude(mgl64.Vec2{0.3, 0.4}, 1))
	got := ClampMagnitude(mgl64.Vec2{3, 4}, 1)
	assert.InDelta(t, 1.0, got.Len(), 1e-12)
	assert.Equal(t, mgl64.Vec2{}, ClampMagnitude(mgl64.Vec2{}, 1))
}
