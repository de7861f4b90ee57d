package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestDeltaAngle(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"same", 10, 10, 0},
		{"forward", 10, 50, 40},
		{"wraps forward", 350, 10, 20},
		{"wraps backward", 10, 350, -20},
		{"half turn", 0, 180, -180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DeltaAngle(tt.current, tt.target), 1e-9)
		})
	}
}

func TestMoveTowardsAngle(t *testing.T) {
	assert.InDelta(t, 12.0, MoveTowardsAngle(0, 90, 12), 1e-9)
	assert.InDelta(t, 90.0, MoveTowardsAngle(85, 90, 12), 1e-9)
	assert.InDelta(t, 350.0, MoveTowardsAngle(0, 270, 10), 1e-9)
}

func TestYawRoundTrip(t *testing.T) {
	assert.InDelta(t, 0.0, YawOf(mgl64.Vec3{0, 0, 1}), 1e-9)
	assert.InDelta(t, 90.0, YawOf(mgl64.Vec3{1, 0, 0}), 1e-9)
	assert.InDelta(t, 270.0, YawOf(mgl64.Vec3{-1, 0, 0}), 1e-9)

	dir := DirectionOf(90)
	assert.InDelta(t, 1.0, dir.X(), 1e-9)
	assert.InDelta(t, 0.0, dir.Z(), 1e-9)
}
