package motor

import (
	"math"

	"github.com/automoto/playermotor/config"
)

// ClassifyLanding maps an impact speed to a landing type. The sign of impact
// is ignored. Thresholds are inclusive.
func ClassifyLanding(impact, rollThreshold, hardThreshold float64) LandingType {
	impact = math.Abs(impact)
	switch {
	case impact >= hardThreshold:
		return LandingHard
	case impact >= rollThreshold:
		return LandingRoll
	default:
		return LandingNone
	}
}

// applyLanding arms the recovery timers for kind. The control lock is only ever
// lengthened. It reports whether a roll push was started.
func (t *Timers) applyLanding(kind LandingType, cfg *config.MotorConfig) bool {
	switch kind {
	case LandingRoll:
		t.ControlLock = extend(t.ControlLock, cfg.RollLockDuration)
		t.RollLandingPush = arm(cfg.LandingPushDuration)
		return t.RollLandingPush > 0
	case LandingHard:
		t.ControlLock = extend(t.ControlLock, cfg.HardLockDuration)
	}
	return false
}
