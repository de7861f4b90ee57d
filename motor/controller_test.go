package motor

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/automoto/playermotor/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultMotor()
	cfg.HardLandingThreshold = 1
	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestTickSkipsNonPositiveDt(t *testing.T) {
	r := newRig(t)
	r.settle()

	assert.True(t, r.ctrl.Tick(0).Skipped)
	assert.True(t, r.ctrl.Tick(-0.5).Skipped)
	assert.Empty(t, r.body.moves)
}

func TestMissingResolverWarnsOnceAndSkips(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	ctrl, err := New(config.DefaultMotor(), WithLogger(log))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.True(t, ctrl.Tick(step).Skipped)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "no resolver"))

	body := &fakeResolver{grounded: true}
	ctrl.SetResolver(body)
	res := ctrl.Tick(step)
	assert.False(t, res.Skipped)
	assert.NotEmpty(t, body.moves)
}

func TestNilCollaboratorsAreTolerated(t *testing.T) {
	body := &fakeResolver{grounded: true}
	ctrl, err := New(config.DefaultMotor(), WithResolver(body), WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			ctrl.Tick(step)
		}
	})
	assert.Equal(t, mgl64.Vec3{}, ctrl.Motion().HorizontalVelocity)
}

func TestInputIsSmoothed(t *testing.T) {
	r := newRig(t)
	r.input.next.Move = mgl64.Vec2{1, 0}
	r.tick()

	m := r.ctrl.Motion()
	assert.Equal(t, mgl64.Vec2{1, 0}, m.RawMoveInput)
	assert.Greater(t, m.SmoothedMoveInput.X(), 0.0)
	assert.Less(t, m.SmoothedMoveInput.X(), 1.0)
}

func TestRawInputIsClampedToUnitLength(t *testing.T) {
	r := newRig(t)
	r.input.next.Move = mgl64.Vec2{3, 4}
	r.tick()
	assert.InDelta(t, 1.0, r.ctrl.Motion().RawMoveInput.Len(), 1e-12)
}

func TestWalkAndSprintSpeeds(t *testing.T) {
	r := newRig(t)
	r.settle()
	r.input.next.Move = mgl64.Vec2{0, 1}

	for i := 0; i < 120; i++ {
		r.tick()
		assert.LessOrEqual(t, r.ctrl.Motion().HorizontalVelocity.Len(), 5+1e-9)
	}
	assert.InDelta(t, 5.0, r.ctrl.Motion().HorizontalVelocity.Z(), 1e-3)
	assert.InDelta(t, 5.0/8, r.anim.floats[ParamSpeed], 1e-3)

	r.input.next.Sprint = true
	for i := 0; i < 120; i++ {
		r.tick()
	}
	assert.InDelta(t, 8.0, r.ctrl.Motion().HorizontalVelocity.Z(), 1e-3)
	assert.InDelta(t, 1.0, r.anim.floats[ParamSpeed], 1e-3)

	r.input.next = InputFrame{}
	for i := 0; i < 300; i++ {
		r.tick()
	}
	assert.InDelta(t, 0.0, r.ctrl.Motion().HorizontalVelocity.Len(), 1e-6)
}

func TestFacingRotatesTowardMovement(t *testing.T) {
	r := newRig(t)
	r.settle()
	assert.InDelta(t, 0.0, r.ctrl.Yaw(), 1e-9)

	r.input.next.Move = mgl64.Vec2{1, 0}
	r.tick()
	r.tick()
	assert.LessOrEqual(t, r.ctrl.Yaw(), 720*step*2+1e-9)

	for i := 0; i < 60; i++ {
		r.tick()
	}
	assert.InDelta(t, 90.0, r.ctrl.Yaw(), 1e-9)
	facing := r.ctrl.Facing()
	assert.InDelta(t, 1.0, facing.X(), 1e-9)
	assert.InDelta(t, 0.0, facing.Z(), 1e-9)
}

func TestJumpWhileGrounded(t *testing.T) {
	r := newRig(t)
	r.settle()

	r.input.next.Jump = true
	res := r.tick()

	takeoff := r.ctrl.Config().JumpTakeoffSpeed()
	assert.True(t, res.Jumped)
	assert.True(t, res.Params.Jump)
	assert.Equal(t, takeoff, r.ctrl.Motion().VerticalVelocity)
	assert.Equal(t, 1, r.anim.triggers[TriggerJump])

	last := r.body.moves[len(r.body.moves)-1]
	assert.InDelta(t, takeoff*step, last.Y(), 1e-12)
}

func TestJumpWhileAirborneDoesNothing(t *testing.T) {
	r := newRig(t)
	r.settle()
	r.body.grounded = false
	r.tick()
	before := r.ctrl.Motion().VerticalVelocity

	r.input.next.Jump = true
	res := r.tick()

	assert.False(t, res.Jumped)
	assert.InDelta(t, before-9.81*step, r.ctrl.Motion().VerticalVelocity, 1e-12)
	assert.Zero(t, r.anim.triggers[TriggerJump])
}

func TestJumpBlockedByControlLock(t *testing.T) {
	r := newRig(t)
	r.settle()

	r.input.next.Dodge = true
	r.tick()
	require.True(t, r.ctrl.IsControlLocked())

	r.input.next.Jump = true
	res := r.tick()
	assert.False(t, res.Jumped)
	assert.Zero(t, r.anim.triggers[TriggerJump])
}

func TestDodgeEndToEnd(t *testing.T) {
	r := newRig(t)
	r.settle()

	r.input.next.Dodge = true
	res := r.tick()

	require.True(t, res.Dodged)
	assert.Equal(t, 1, r.anim.triggers[TriggerRoll])
	assert.True(t, r.ctrl.IsDodging())
	assert.True(t, r.ctrl.IsInvulnerable())
	assert.True(t, r.ctrl.IsControlLocked())
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, r.ctrl.DodgeDirection())

	require.Len(t, r.body.moves, 3)
	assert.Equal(t, mgl64.Vec3{}, r.body.moves[0])
	assert.InDelta(t, 10*step, r.body.moves[1].Z(), 1e-12)

	// 0.3s of invulnerability and 0.4s of dodge at 60 ticks per second.
	for i := 1; i <= 60; i++ {
		r.tick()
		assert.Equal(t, i < 18, r.ctrl.IsInvulnerable(), "tick %d", i)
		assert.Equal(t, i < 24, r.ctrl.IsDodging(), "tick %d", i)
		assert.Equal(t, r.ctrl.IsDodging(), r.ctrl.IsControlLocked(), "tick %d", i)
	}
}

func TestDodgeUsesLastMoveDirection(t *testing.T) {
	r := newRig(t)
	r.settle()
	r.input.next.Move = mgl64.Vec2{-1, 0}
	for i := 0; i < 10; i++ {
		r.tick()
	}
	r.input.next = InputFrame{Dodge: true}
	r.tick()

	dir := r.ctrl.DodgeDirection()
	assert.InDelta(t, -1.0, dir.X(), 1e-9)
	assert.InDelta(t, 0.0, dir.Z(), 1e-9)
}

func TestDodgeDuringCooldownHasNoEffect(t *testing.T) {
	r := newRig(t)
	r.settle()

	r.input.next.Dodge = true
	require.True(t, r.tick().Dodged)

	ticks := 0
	for r.ctrl.IsDodging() {
		r.tick()
		ticks++
	}
	assert.Equal(t, 24, ticks)

	before := r.ctrl.Timers()
	require.Greater(t, before.DodgeCooldown, 0.0)
	dir := r.ctrl.DodgeDirection()

	r.input.next = InputFrame{Move: mgl64.Vec2{-1, 0}, Dodge: true}
	res := r.tick()
	after := r.ctrl.Timers()

	assert.False(t, res.Dodged)
	assert.Equal(t, dir, r.ctrl.DodgeDirection())
	assert.False(t, r.ctrl.IsDodging())
	assert.False(t, r.ctrl.IsInvulnerable())
	assert.Equal(t, 0.0, after.Dodge)
	assert.Equal(t, 0.0, after.Invulnerability)
	assert.InDelta(t, before.DodgeCooldown-step, after.DodgeCooldown, 1e-12)
	assert.Equal(t, 1, r.anim.triggers[TriggerRoll])

	// cooldown is 0.8s: 48 ticks after the first dodge
	r.input.next.Move = mgl64.Vec2{}
	for i := ticks + 2; i < 48; i++ {
		r.tick()
	}
	r.input.next.Dodge = true
	assert.True(t, r.tick().Dodged)
}

func TestDodgeWhileDodgingHasNoEffect(t *testing.T) {
	r := newRig(t, func(c *config.MotorConfig) { c.DodgeCooldown = 0 })
	r.settle()

	r.input.next.Dodge = true
	require.True(t, r.tick().Dodged)
	dir := r.ctrl.DodgeDirection()
	r.tick()

	before := r.ctrl.Timers()
	require.Greater(t, before.Dodge, 0.0)
	require.Equal(t, 0.0, before.DodgeCooldown)

	r.input.next = InputFrame{Move: mgl64.Vec2{1, 0}, Dodge: true}
	res := r.tick()
	after := r.ctrl.Timers()

	assert.False(t, res.Dodged)
	assert.Equal(t, dir, r.ctrl.DodgeDirection())
	assert.InDelta(t, before.Dodge-step, after.Dodge, 1e-12)
	assert.InDelta(t, before.Invulnerability-step, after.Invulnerability, 1e-12)
	assert.InDelta(t, before.ControlLock-step, after.ControlLock, 1e-12)
	assert.Equal(t, 0.0, after.DodgeCooldown)
	assert.Equal(t, 1, r.anim.triggers[TriggerRoll])
}

func TestIsDodgingAgreesWithTimer(t *testing.T) {
	r := newRig(t)
	r.settle()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 600; i++ {
		r.input.next.Dodge = rng.Intn(10) == 0
		r.input.next.Jump = rng.Intn(20) == 0
		r.body.grounded = rng.Intn(4) != 0
		dt := 0.005 + rng.Float64()*0.03
		r.ctrl.Tick(dt)

		timers := r.ctrl.Timers()
		assert.Equal(t, timers.Dodge > 0, r.ctrl.IsDodging())
		assert.Equal(t, timers.Invulnerability > 0, r.ctrl.IsInvulnerable())
		assert.Equal(t, timers.ControlLock > 0, r.ctrl.IsControlLocked())
		assert.GreaterOrEqual(t, timers.Dodge, 0.0)
		assert.GreaterOrEqual(t, timers.ControlLock, 0.0)
		assert.GreaterOrEqual(t, timers.RollLandingPush, 0.0)
		assert.GreaterOrEqual(t, timers.DodgeCooldown, 0.0)
	}
}

func TestLockedMoveMultiplier(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		sprint     bool
		wantX      float64
	}{
		{"frozen", 0, false, 0},
		{"half walk", 0.5, false, 5 * 0.5 * step},
		{"sprint ignored", 1, true, 5 * step},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, func(c *config.MotorConfig) { c.LockedMoveMultiplier = tt.multiplier })
			r.settle()
			r.input.next = InputFrame{Move: mgl64.Vec2{1, 0}, Sprint: tt.sprint}
			for i := 0; i < 30; i++ {
				r.tick()
			}
			yaw := r.ctrl.Yaw()

			r.input.next.Dodge = true
			r.tick()
			require.True(t, r.ctrl.IsControlLocked())

			horizontal := r.body.moves[0]
			if tt.multiplier == 0 {
				assert.Equal(t, mgl64.Vec3{}, horizontal)
			} else {
				assert.InDelta(t, tt.wantX, horizontal.X(), 1e-9)
			}
			assert.Equal(t, 0.0, horizontal.Y())
			assert.InDelta(t, 0.0, horizontal.Z(), 1e-12)

			if tt.multiplier == 0 {
				r.input.next.Move = mgl64.Vec2{-1, 0}
				r.tick()
				assert.Equal(t, yaw, r.ctrl.Yaw())
			}
		})
	}
}

func TestClassifyLanding(t *testing.T) {
	tests := []struct {
		impact float64
		want   LandingType
	}{
		{0, LandingNone},
		{5, LandingNone},
		{6, LandingRoll},
		{11, LandingRoll},
		{12, LandingHard},
		{20, LandingHard},
		{-7, LandingRoll},
		{-20, LandingHard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLanding(tt.impact, 6, 12), "impact %v", tt.impact)
	}
}

// fall keeps the body airborne for n ticks of dt and then lands it.
func (r *rig) fall(n int, dt float64) TickResult {
	r.body.grounded = false
	for i := 0; i < n; i++ {
		r.ctrl.Tick(dt)
	}
	r.body.grounded = true
	r.body.reset()
	return r.ctrl.Tick(dt)
}

func TestRollLanding(t *testing.T) {
	r := newRig(t)
	r.settle()

	res := r.fall(8, 0.1)

	require.True(t, res.Landed)
	assert.Equal(t, LandingRoll, res.Landing)
	assert.InDelta(t, 7*0.981, res.Impact, 1e-9)
	assert.Equal(t, 0.35, r.ctrl.Timers().ControlLock)
	assert.Equal(t, 0.25, r.ctrl.Timers().RollLandingPush)
	assert.Equal(t, -2.0, r.ctrl.Motion().VerticalVelocity)
	assert.Equal(t, []int{int(LandingNone), int(LandingRoll)}, r.anim.ints[ParamLandingType])

	r.tick()
	require.Len(t, r.body.moves, 3)
	assert.InDelta(t, 4*step, r.body.moves[1].Z(), 1e-12)
}

func TestHardLanding(t *testing.T) {
	r := newRig(t)
	r.settle()

	res := r.fall(15, 0.1)

	assert.Equal(t, LandingHard, res.Landing)
	assert.Equal(t, 0.6, r.ctrl.Timers().ControlLock)
	assert.Equal(t, 0.0, r.ctrl.Timers().RollLandingPush)

	r.tick()
	assert.Len(t, r.body.moves, 2)
}

func TestSoftLandingLeavesControl(t *testing.T) {
	r := newRig(t)
	r.settle()

	res := r.fall(3, 0.1)

	assert.True(t, res.Landed)
	assert.Equal(t, LandingNone, res.Landing)
	assert.False(t, r.ctrl.IsControlLocked())
}

func TestLandingTypeOnlyOnLandingTicks(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 20; i++ {
		r.tick()
	}
	assert.Len(t, r.anim.ints[ParamLandingType], 1)
	assert.True(t, r.anim.bools[ParamGrounded])
}

func TestGroundSnap(t *testing.T) {
	r := newRig(t)
	r.settle()
	r.fall(2, 0.1)
	r.tick()
	assert.Equal(t, -2.0, r.ctrl.Motion().VerticalVelocity)
	last := r.body.moves[len(r.body.moves)-1]
	assert.InDelta(t, -2*step, last.Y(), 1e-12)
}

func TestSetConfig(t *testing.T) {
	r := newRig(t)
	bad := config.DefaultMotor()
	bad.WalkSpeed = -3
	assert.Error(t, r.ctrl.SetConfig(bad))
	assert.Equal(t, config.DefaultMotor(), r.ctrl.Config())

	good := config.DefaultMotor()
	good.DodgeSpeed = 20
	require.NoError(t, r.ctrl.SetConfig(good))
	assert.Equal(t, 20.0, r.ctrl.Config().DodgeSpeed)
}

func TestWithFacing(t *testing.T) {
	ctrl, err := New(config.DefaultMotor(), WithFacing(-90), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.InDelta(t, 270.0, ctrl.Yaw(), 1e-9)
	assert.InDelta(t, -1.0, ctrl.Facing().X(), 1e-9)
}
