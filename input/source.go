package input

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/automoto/playermotor/config"
	"github.com/automoto/playermotor/motor"
	"github.com/go-gl/mathgl/mgl64"
)

// Device is a pollable input layer: the current stick value and held buttons.
type Device interface {
	MoveAxis() mgl64.Vec2
	Held(a Action) bool
}

// Receiver takes input callbacks as they arrive.
type Receiver interface {
	OnMove(v mgl64.Vec2)
	OnPress(a Action)
	OnRelease(a Action)
}

// PollSource reads a Device once per tick and derives edge presses from the
// previous tick's button state.
type PollSource struct {
	device   Device
	current  [ActionCount]bool
	previous [ActionCount]bool
}

// NewPollSource polls d. A nil device yields neutral frames.
func NewPollSource(d Device) *PollSource {
	return &PollSource{device: d}
}

// Sample implements motor.InputSource.
func (p *PollSource) Sample() motor.InputFrame {
	if p.device == nil {
		return motor.InputFrame{}
	}

	// The axis is read first; devices may refresh their state there.
	move := p.device.MoveAxis()

	// Swap buffers: current becomes previous, then re-poll current
	p.previous = p.current
	for a := Action(0); a < ActionCount; a++ {
		p.current[a] = p.device.Held(a)
	}

	return motor.InputFrame{
		Move:   move,
		Sprint: p.current[ActionSprint],
		Jump:   p.justPressed(ActionJump),
		Dodge:  p.justPressed(ActionDodge),
	}
}

func (p *PollSource) justPressed(a Action) bool {
	return p.current[a] && !p.previous[a]
}

// PushSource buffers callbacks between ticks. Every field is stored atomically
// so callbacks may arrive on another goroutine. Jump and dodge presses latch
// until the next Sample consumes them; sprint follows press and release.
type PushSource struct {
	moveX  atomic.Uint64
	moveY  atomic.Uint64
	sprint atomic.Bool
	jump   atomic.Bool
	dodge  atomic.Bool
}

// NewPushSource returns an empty buffer.
func NewPushSource() *PushSource {
	return &PushSource{}
}

// OnMove stores the latest move vector.
func (p *PushSource) OnMove(v mgl64.Vec2) {
	p.moveX.Store(math.Float64bits(v.X()))
	p.moveY.Store(math.Float64bits(v.Y()))
}

// OnPress latches jump and dodge and holds sprint.
func (p *PushSource) OnPress(a Action) {
	switch a {
	case ActionJump:
		p.jump.Store(true)
	case ActionDodge:
		p.dodge.Store(true)
	case ActionSprint:
		p.sprint.Store(true)
	}
}

// OnRelease lets go of sprint. Latched presses are kept.
func (p *PushSource) OnRelease(a Action) {
	if a == ActionSprint {
		p.sprint.Store(false)
	}
}

// Sample implements motor.InputSource and clears the latched presses.
func (p *PushSource) Sample() motor.InputFrame {
	return motor.InputFrame{
		Move: mgl64.Vec2{
			math.Float64frombits(p.moveX.Load()),
			math.Float64frombits(p.moveY.Load()),
		},
		Sprint: p.sprint.Load(),
		Jump:   p.jump.Swap(false),
		Dodge:  p.dodge.Swap(false),
	}
}

// NewSource builds the source for the configured delivery mode. In push mode
// the device is ignored and the returned source also implements Receiver.
func NewSource(mode config.InputMode, device Device) (motor.InputSource, error) {
	switch mode {
	case config.InputPoll, "":
		return NewPollSource(device), nil
	case config.InputPush:
		return NewPushSource(), nil
	}
	return nil, fmt.Errorf("unknown input mode %q", mode)
}
