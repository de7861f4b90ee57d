package motor

import (
	"github.com/automoto/playermotor/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// directionEpsilon is the smallest remembered direction still treated as a heading.
const directionEpsilon = 1e-3

func (c *Controller) refreshGrounded() {
	c.motion.GroundedPrev = c.motion.GroundedNow
	c.motion.GroundedNow = c.resolver.IsGrounded()
}

// trackMoveDirection remembers the planar heading of any move above the deadzone.
func (c *Controller) trackMoveDirection(move mgl64.Vec3) {
	if move.Len() > c.cfg.MoveDeadzone && move.Len() > 0 {
		c.motion.LastMoveDirection = move.Normalize()
	}
}

// fallbackDirection is the heading used by dodges and landing pushes: the last
// move direction, or the facing when the player never moved.
func (c *Controller) fallbackDirection() mgl64.Vec3 {
	if c.motion.LastMoveDirection.Len() > directionEpsilon {
		return c.motion.LastMoveDirection.Normalize()
	}
	return c.Facing()
}

// rotateFacing turns toward steer at RotationSpeed degrees per second.
func (c *Controller) rotateFacing(steer mgl64.Vec3, dt float64) {
	if steer.Len() <= c.cfg.MoveDeadzone || steer.Len() == 0 {
		return
	}
	c.yaw = gamemath.MoveTowardsAngle(c.yaw, gamemath.YawOf(steer), c.cfg.RotationSpeed*dt)
}

// moveTarget is the unlocked planar velocity the input asks for.
func (c *Controller) moveTarget(move mgl64.Vec3, sprint bool) mgl64.Vec3 {
	if move.Len() <= c.cfg.MoveDeadzone || move.Len() == 0 {
		return mgl64.Vec3{}
	}
	speed := c.cfg.WalkSpeed
	if sprint {
		speed = c.cfg.SprintSpeed
	}
	return move.Normalize().Mul(speed)
}

// updateHorizontal advances the planar velocity. While locked the velocity is
// the walk target scaled by LockedMoveMultiplier with no smoothing, so a zero
// multiplier halts horizontal motion on the spot.
func (c *Controller) updateHorizontal(move mgl64.Vec3, sprint, locked bool, dt float64) {
	if locked {
		c.motion.HorizontalVelocity = c.moveTarget(move, false).Mul(c.cfg.LockedMoveMultiplier)
		return
	}

	target := c.moveTarget(move, sprint)
	current := c.motion.HorizontalVelocity
	tau := c.cfg.DecelerationTime
	if target.Len() >= current.Len() {
		tau = c.cfg.AccelerationTime
	}
	c.motion.HorizontalVelocity = gamemath.ApproachExp(current, target, tau, dt)
}

// integrateVertical holds the body on the ground while grounded and falling,
// and applies gravity while airborne.
func (c *Controller) integrateVertical(dt float64) {
	if c.motion.GroundedNow {
		if c.motion.VerticalVelocity < 0 {
			c.motion.VerticalVelocity = c.cfg.GroundSnapVelocity
		}
		return
	}
	c.motion.LastAirborneVerticalVelocity = c.motion.VerticalVelocity
	c.motion.VerticalVelocity -= c.cfg.Gravity * dt
}

// applyMovement emits the tick's displacement to the resolver in a fixed order:
// locomotion, landing push, dodge, vertical.
func (c *Controller) applyMovement(dt float64) mgl64.Vec3 {
	total := c.motion.HorizontalVelocity.Mul(dt)
	c.resolver.Move(total)

	if c.timers.RollLandingPush > 0 {
		push := c.pushDirection.Mul(c.cfg.LandingPushSpeed * dt)
		c.resolver.Move(push)
		total = total.Add(push)
	}

	if c.IsDodging() {
		dodge := c.dodge.Direction.Mul(c.cfg.DodgeSpeed * dt)
		c.resolver.Move(dodge)
		total = total.Add(dodge)
	}

	vertical := mgl64.Vec3{0, c.motion.VerticalVelocity * dt, 0}
	c.resolver.Move(vertical)
	return total.Add(vertical)
}
