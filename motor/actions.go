package motor

// tryJump starts a jump when grounded and not locked.
func (c *Controller) tryJump() bool {
	if c.timers.Locked() || !c.motion.GroundedNow {
		return false
	}
	c.motion.VerticalVelocity = c.cfg.JumpTakeoffSpeed()
	c.log.Debug("jump", "takeoff", c.motion.VerticalVelocity)
	return true
}

// tryDodge starts a dodge when off cooldown and not already dodging. Dodging is
// allowed in the air and during a landing lock.
func (c *Controller) tryDodge() bool {
	if c.timers.DodgeCooldown > 0 || c.IsDodging() {
		return false
	}

	c.dodge.Direction = c.fallbackDirection()
	c.timers.Dodge = arm(c.cfg.DodgeDuration)
	c.timers.Invulnerability = arm(c.cfg.InvulnerabilityDuration)
	c.timers.DodgeCooldown = arm(c.cfg.DodgeCooldown)
	c.timers.ControlLock = extend(c.timers.ControlLock, c.cfg.DodgeDuration)

	c.log.Debug("dodge",
		"dir_x", c.dodge.Direction.X(),
		"dir_z", c.dodge.Direction.Z(),
		"grounded", c.motion.GroundedNow)
	return true
}
