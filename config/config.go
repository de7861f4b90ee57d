package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("invalid motor config")

// MotorConfig contains every tunable of the player motor. Durations are seconds,
// speeds are world units per second and angles are degrees.
type MotorConfig struct {
	// Movement
	WalkSpeed        float64 `yaml:"walk_speed" json:"walkSpeed"`
	SprintSpeed      float64 `yaml:"sprint_speed" json:"sprintSpeed"`
	RotationSpeed    float64 `yaml:"rotation_speed" json:"rotationSpeed"` // degrees per second
	InputSmoothTime  float64 `yaml:"input_smooth_time" json:"inputSmoothTime"`
	AccelerationTime float64 `yaml:"acceleration_time" json:"accelerationTime"`
	DecelerationTime float64 `yaml:"deceleration_time" json:"decelerationTime"`
	MoveDeadzone     float64 `yaml:"move_deadzone" json:"moveDeadzone"`

	// Vertical
	Gravity            float64 `yaml:"gravity" json:"gravity"` // magnitude, applied downward
	JumpHeight         float64 `yaml:"jump_height" json:"jumpHeight"`
	GroundSnapVelocity float64 `yaml:"ground_snap_velocity" json:"groundSnapVelocity"`

	// Landing
	RollLandingThreshold float64 `yaml:"roll_landing_threshold" json:"rollLandingThreshold"`
	HardLandingThreshold float64 `yaml:"hard_landing_threshold" json:"hardLandingThreshold"`
	RollLockDuration     float64 `yaml:"roll_lock_duration" json:"rollLockDuration"`
	HardLockDuration     float64 `yaml:"hard_lock_duration" json:"hardLockDuration"`
	LandingPushDuration  float64 `yaml:"landing_push_duration" json:"landingPushDuration"`
	LandingPushSpeed     float64 `yaml:"landing_push_speed" json:"landingPushSpeed"`

	// Dodge
	DodgeSpeed              float64 `yaml:"dodge_speed" json:"dodgeSpeed"`
	DodgeDuration           float64 `yaml:"dodge_duration" json:"dodgeDuration"`
	InvulnerabilityDuration float64 `yaml:"invulnerability_duration" json:"invulnerabilityDuration"`
	DodgeCooldown           float64 `yaml:"dodge_cooldown" json:"dodgeCooldown"`

	// Control lock
	LockedMoveMultiplier float64 `yaml:"locked_move_multiplier" json:"lockedMoveMultiplier"` // 0 freezes steering while locked

	// Animation
	AnimationReferenceSpeed float64 `yaml:"animation_reference_speed" json:"animationReferenceSpeed"` // speed mapped to Speed=1
}

// Motor is the global motor configuration
var Motor MotorConfig

func init() {
	Motor = DefaultMotor()
}

// DefaultMotor returns the stock tuning.
func DefaultMotor() MotorConfig {
	return MotorConfig{
		WalkSpeed:        5,
		SprintSpeed:      8,
		RotationSpeed:    720,
		InputSmoothTime:  0.08,
		AccelerationTime: 0.1,
		DecelerationTime: 0.15,
		MoveDeadzone:     0.1,

		Gravity:            9.81,
		JumpHeight:         2,
		GroundSnapVelocity: -2,

		RollLandingThreshold: 6,
		HardLandingThreshold: 12,
		RollLockDuration:     0.35,
		HardLockDuration:     0.6,
		LandingPushDuration:  0.25,
		LandingPushSpeed:     4,

		DodgeSpeed:              10,
		DodgeDuration:           0.4,
		InvulnerabilityDuration: 0.3,
		DodgeCooldown:           0.8,

		LockedMoveMultiplier: 0,

		AnimationReferenceSpeed: 8,
	}
}

// JumpTakeoffSpeed is the initial upward speed that peaks at JumpHeight.
func (c MotorConfig) JumpTakeoffSpeed() float64 {
	return math.Sqrt(2 * c.Gravity * c.JumpHeight)
}

// Validate reports the first tunable that is out of range.
func (c MotorConfig) Validate() error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"walk_speed", c.WalkSpeed},
		{"sprint_speed", c.SprintSpeed},
		{"rotation_speed", c.RotationSpeed},
		{"input_smooth_time", c.InputSmoothTime},
		{"acceleration_time", c.AccelerationTime},
		{"deceleration_time", c.DecelerationTime},
		{"move_deadzone", c.MoveDeadzone},
		{"gravity", c.Gravity},
		{"jump_height", c.JumpHeight},
		{"roll_landing_threshold", c.RollLandingThreshold},
		{"hard_landing_threshold", c.HardLandingThreshold},
		{"roll_lock_duration", c.RollLockDuration},
		{"hard_lock_duration", c.HardLockDuration},
		{"landing_push_duration", c.LandingPushDuration},
		{"landing_push_speed", c.LandingPushSpeed},
		{"dodge_speed", c.DodgeSpeed},
		{"dodge_duration", c.DodgeDuration},
		{"invulnerability_duration", c.InvulnerabilityDuration},
		{"dodge_cooldown", c.DodgeCooldown},
		{"locked_move_multiplier", c.LockedMoveMultiplier},
		{"animation_reference_speed", c.AnimationReferenceSpeed},
	}
	for _, f := range nonNegative {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s must be finite and >= 0, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	if math.IsNaN(c.GroundSnapVelocity) || math.IsInf(c.GroundSnapVelocity, 0) || c.GroundSnapVelocity > 0 {
		return fmt.Errorf("%w: ground_snap_velocity must be finite and <= 0, got %v", ErrInvalidConfig, c.GroundSnapVelocity)
	}
	if c.HardLandingThreshold < c.RollLandingThreshold {
		return fmt.Errorf("%w: hard_landing_threshold (%v) below roll_landing_threshold (%v)",
			ErrInvalidConfig, c.HardLandingThreshold, c.RollLandingThreshold)
	}
	return nil
}
