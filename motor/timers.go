package motor

// timerEpsilon absorbs float residue so a timer armed to T reads exactly zero
// once T seconds of dt have been consumed.
const timerEpsilon = 1e-9

// Timers are the countdowns driving the action state machine, in seconds.
// None of them is ever negative.
type Timers struct {
	ControlLock     float64
	RollLandingPush float64
	Dodge           float64
	Invulnerability float64
	DodgeCooldown   float64
}

// Decay counts every timer down by dt, clamping at zero.
func (t *Timers) Decay(dt float64) {
	if dt <= 0 {
		return
	}
	t.ControlLock = decay(t.ControlLock, dt)
	t.RollLandingPush = decay(t.RollLandingPush, dt)
	t.Dodge = decay(t.Dodge, dt)
	t.Invulnerability = decay(t.Invulnerability, dt)
	t.DodgeCooldown = decay(t.DodgeCooldown, dt)
}

// Locked reports whether the control lock is active.
func (t Timers) Locked() bool {
	return t.ControlLock > 0
}

func decay(v, dt float64) float64 {
	v -= dt
	if v <= timerEpsilon {
		return 0
	}
	return v
}

// arm returns d clamped to be non-negative.
func arm(d float64) float64 {
	if d < 0 {
		return 0
	}
	return d
}

// extend keeps the longer of the current countdown and d.
func extend(current, d float64) float64 {
	return max(current, arm(d))
}
