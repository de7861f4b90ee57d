package motor

import (
	"fmt"
	"log/slog"

	"github.com/automoto/playermotor/config"
	"github.com/automoto/playermotor/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Controller is the per-player motor. It owns all motion and action state and
// is advanced by Tick from a single goroutine.
type Controller struct {
	cfg      config.MotorConfig
	resolver Resolver
	anim     AnimationTarget
	input    inputSampler
	log      *slog.Logger

	motion        MotionState
	timers        Timers
	dodge         DodgeState
	pushDirection mgl64.Vec3
	yaw           float64 // degrees, 0 faces +Z

	warnedNoResolver bool
}

// TickResult reports what one tick did.
type TickResult struct {
	Delta   mgl64.Vec3 // total displacement requested from the resolver
	Params  AnimParams
	Landed  bool
	Landing LandingType
	Impact  float64
	Jumped  bool
	Dodged  bool
	Skipped bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithResolver binds the collision resolver.
func WithResolver(r Resolver) Option {
	return func(c *Controller) { c.resolver = r }
}

// WithInput binds the input source. Without one the motor sees neutral input.
func WithInput(src InputSource) Option {
	return func(c *Controller) { c.input.source = src }
}

// WithAnimation binds the animation target. Without one no parameters are written.
func WithAnimation(a AnimationTarget) Option {
	return func(c *Controller) { c.anim = a }
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithFacing sets the initial yaw in degrees.
func WithFacing(yaw float64) Option {
	return func(c *Controller) { c.yaw = gamemath.NormalizeAngle(yaw) }
}

// New validates cfg and builds a Controller. A missing resolver is not an
// error; ticks are skipped until one is bound.
func New(cfg config.MotorConfig, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new motor: %w", err)
	}
	c := &Controller{
		cfg: cfg,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.warnNoResolver()
	}
	return c, nil
}

// SetResolver binds or replaces the resolver.
func (c *Controller) SetResolver(r Resolver) {
	c.resolver = r
	if r != nil {
		c.warnedNoResolver = false
	}
}

// SetAnimation binds or replaces the animation target. nil disables the bridge.
func (c *Controller) SetAnimation(a AnimationTarget) {
	c.anim = a
}

// SetInput binds or replaces the input source.
func (c *Controller) SetInput(src InputSource) {
	c.input.source = src
}

// SetConfig swaps the tuning. Call it between ticks; running timers keep
// their remaining time.
func (c *Controller) SetConfig(cfg config.MotorConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// Config returns the active tuning.
func (c *Controller) Config() config.MotorConfig {
	return c.cfg
}

// Tick advances the motor by dt seconds. A non-positive dt or a missing
// resolver leaves all state untouched and reports Skipped.
func (c *Controller) Tick(dt float64) TickResult {
	if dt <= 0 {
		return TickResult{Skipped: true}
	}
	if c.resolver == nil {
		c.warnNoResolver()
		return TickResult{Skipped: true}
	}

	frame := c.input.sample(c.cfg.InputSmoothTime, dt)
	c.motion.RawMoveInput = c.input.raw
	c.motion.SmoothedMoveInput = frame.Move

	c.timers.Decay(dt)
	c.refreshGrounded()

	move := mgl64.Vec3{frame.Move.X(), 0, frame.Move.Y()}
	c.trackMoveDirection(move)

	var res TickResult
	if frame.Jump {
		res.Jumped = c.tryJump()
	}
	if frame.Dodge {
		res.Dodged = c.tryDodge()
	}

	locked := c.timers.Locked()
	sprint := frame.Sprint
	steer := move
	if locked {
		steer = move.Mul(c.cfg.LockedMoveMultiplier)
		sprint = false
	}

	c.rotateFacing(steer, dt)
	c.updateHorizontal(move, sprint, locked, dt)
	c.integrateVertical(dt)
	res.Delta = c.applyMovement(dt)

	if !c.motion.GroundedPrev && c.motion.GroundedNow {
		ev := c.land()
		res.Landed = true
		res.Landing = ev.Type
		res.Impact = ev.Impact
	}

	res.Params = c.animParams(&res)
	res.Params.Apply(c.anim)
	return res
}

func (c *Controller) land() LandingEvent {
	impact := c.motion.LastAirborneVerticalVelocity
	if impact < 0 {
		impact = -impact
	}
	kind := ClassifyLanding(impact, c.cfg.RollLandingThreshold, c.cfg.HardLandingThreshold)
	if c.timers.applyLanding(kind, &c.cfg) {
		c.pushDirection = c.fallbackDirection()
	}
	c.log.Debug("landed", "type", kind.String(), "impact", impact, "lock", c.timers.ControlLock)
	return LandingEvent{Type: kind, Impact: impact}
}

func (c *Controller) warnNoResolver() {
	if c.warnedNoResolver {
		return
	}
	c.warnedNoResolver = true
	c.log.Warn("motor has no resolver bound, ticks are skipped")
}

// IsInvulnerable reports whether the dodge invulnerability window is open.
func (c *Controller) IsInvulnerable() bool { return c.timers.Invulnerability > 0 }

// IsControlLocked reports whether steering is overridden.
func (c *Controller) IsControlLocked() bool { return c.timers.Locked() }

// IsDodging reports whether a dodge is in progress.
func (c *Controller) IsDodging() bool { return c.timers.Dodge > 0 }

// IsGrounded is the grounded flag sampled on the last tick.
func (c *Controller) IsGrounded() bool { return c.motion.GroundedNow }

// Facing returns the unit planar forward vector.
func (c *Controller) Facing() mgl64.Vec3 { return gamemath.DirectionOf(c.yaw) }

// Yaw returns the facing in degrees, 0 is +Z.
func (c *Controller) Yaw() float64 { return c.yaw }

// Timers returns a copy of the countdowns.
func (c *Controller) Timers() Timers { return c.timers }

// Motion returns a copy of the motion state.
func (c *Controller) Motion() MotionState { return c.motion }

// DodgeDirection is the direction of the current or last dodge.
func (c *Controller) DodgeDirection() mgl64.Vec3 { return c.dodge.Direction }
