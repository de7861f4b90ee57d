package systems

import (
	"github.com/automoto/playermotor/components"
	"github.com/automoto/playermotor/motor"
	"github.com/automoto/playermotor/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotors ticks every player's motor by the clock step and folds the
// result into the player's stats and state label.
func UpdateMotors(ecs *ecs.ECS) {
	dt := Step(ecs)
	components.Motor.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Motor.Get(e)
		if m.Controller == nil {
			return
		}
		m.Last = m.Controller.Tick(dt)
		if m.Last.Skipped {
			return
		}

		if e.HasComponent(components.Player) {
			recordStats(&components.Player.Get(e).Stats, m.Controller, m.Last, dt)
		}
		if e.HasComponent(components.State) {
			updateState(components.State.Get(e), classify(m.Controller, m.Last), dt)
		}
	})
}

func recordStats(s *components.StatsData, c *motor.Controller, res motor.TickResult, dt float64) {
	s.Ticks++
	s.Distance += gamemath.Planar(res.Delta).Len()
	if !c.IsGrounded() {
		s.Airtime += dt
	}
	if res.Jumped {
		s.Jumps++
	}
	if res.Dodged {
		s.Dodges++
	}
	if res.Landed {
		s.Landings[res.Landing]++
		if res.Impact > s.MaxImpact {
			s.MaxImpact = res.Impact
		}
	}
}

// classify picks the coarse label for the motor's post-tick state. Dodging
// wins over everything, then airborne, then a landing lock.
func classify(c *motor.Controller, res motor.TickResult) components.MotorState {
	switch {
	case c.IsDodging():
		return components.StateDodging
	case !c.IsGrounded():
		return components.StateAirborne
	case c.IsControlLocked():
		return components.StateRecovering
	case res.Params.Speed > 0.01:
		return components.StateMoving
	default:
		return components.StateIdle
	}
}

func updateState(state *components.StateData, next components.MotorState, dt float64) {
	if state.CurrentState == next {
		state.StateTime += dt
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTime = 0
}
