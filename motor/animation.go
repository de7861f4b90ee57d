package motor

import (
	"github.com/automoto/playermotor/shared/gamemath"
)

// Animation parameter names.
const (
	ParamGrounded         = "IsGrounded"
	ParamSpeed            = "Speed"
	ParamVerticalVelocity = "VerticalVelocity"
	ParamLandingType      = "LandingType"
	TriggerJump           = "Jump"
	TriggerRoll           = "Roll"
)

// AnimParams is the animation state produced by one tick.
type AnimParams struct {
	Grounded         bool
	Speed            float64 // planar speed normalized to [0, 1]
	VerticalVelocity float64
	Landed           bool
	Landing          LandingType // meaningful when Landed
	Jump             bool
	Roll             bool
}

func (c *Controller) animParams(res *TickResult) AnimParams {
	p := AnimParams{
		Grounded:         c.motion.GroundedNow,
		VerticalVelocity: c.motion.VerticalVelocity,
		Landed:           res.Landed,
		Landing:          res.Landing,
		Jump:             res.Jumped,
		Roll:             res.Dodged,
	}
	if ref := c.cfg.AnimationReferenceSpeed; ref > 0 {
		p.Speed = gamemath.Clamp01(c.motion.HorizontalVelocity.Len() / ref)
	}
	return p
}

// Apply pushes p to target. LandingType is only written on a landing tick.
func (p AnimParams) Apply(target AnimationTarget) {
	if target == nil {
		return
	}
	target.SetBool(ParamGrounded, p.Grounded)
	target.SetFloat(ParamSpeed, p.Speed)
	target.SetFloat(ParamVerticalVelocity, p.VerticalVelocity)
	if p.Landed {
		target.SetInt(ParamLandingType, int(p.Landing))
	}
	if p.Jump {
		target.SetTrigger(TriggerJump)
	}
	if p.Roll {
		target.SetTrigger(TriggerRoll)
	}
}
