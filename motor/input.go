package motor

import (
	"github.com/automoto/playermotor/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// InputFrame is one tick worth of player intent. Move is a planar stick value
// with x to the right and y forward. Jump and Dodge are edge presses.
type InputFrame struct {
	Move   mgl64.Vec2
	Sprint bool
	Jump   bool
	Dodge  bool
}

// InputSource yields the frame for the current tick. Sample is called exactly
// once per tick and must consume any latched presses.
type InputSource interface {
	Sample() InputFrame
}

// inputSampler reads the source and smooths the move axis.
type inputSampler struct {
	source InputSource

	raw      mgl64.Vec2
	smoothed mgl64.Vec2
	velocity mgl64.Vec2
}

func (s *inputSampler) sample(smoothTime, dt float64) InputFrame {
	var frame InputFrame
	if s.source != nil {
		frame = s.source.Sample()
	}
	s.raw = gamemath.ClampMagnitude(frame.Move, 1)
	s.smoothed = gamemath.SmoothDampVec2(s.smoothed, s.raw, &s.velocity, smoothTime, dt)
	frame.Move = s.smoothed
	return frame
}
