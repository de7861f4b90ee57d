// Package sim runs a headless motor world at a fixed step: one level, one
// player, scripted or live input, and optional live retuning.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/automoto/playermotor/components"
	"github.com/automoto/playermotor/config"
	"github.com/automoto/playermotor/input"
	"github.com/automoto/playermotor/motor"
	"github.com/automoto/playermotor/shared/leveldata"
	"github.com/automoto/playermotor/systems"
	"github.com/automoto/playermotor/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures New. Config and Level are required.
type Options struct {
	Config    *config.File
	LevelName string
	Level     *leveldata.CollisionData
	Script    *input.Script // drives the player when set
	Device    input.Device  // live device, used when Script is nil
	Updates   <-chan *config.File
	Logger    *slog.Logger
}

// Sim owns the world and the systems that advance it.
type Sim struct {
	ecs     *ecs.ECS
	player  *donburi.Entry
	cfg     *config.File
	updates <-chan *config.File
	log     *slog.Logger
}

// Summary describes a run so far.
type Summary struct {
	Level    string
	Ticks    int
	Elapsed  float64
	State    components.MotorState
	Position mgl64.Vec3
	Yaw      float64
	Stats    components.StatsData
}

// New builds the world and spawns the player.
func New(opts Options) (*Sim, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("sim: no config")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	sc := opts.Config.Sim

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.WithPauseCheck(systems.UpdateInput))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMotors))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	e.AddSystem(systems.EndPauseStep)

	factory.CreateClock(e, sc.Step())
	if _, err := factory.CreateLevel(e, opts.LevelName, opts.Level); err != nil {
		return nil, err
	}

	ps := factory.PlayerSpec{
		Motor:         opts.Config.Motor,
		Mode:          sc.InputMode,
		Device:        opts.Device,
		PixelsPerUnit: sc.PixelsPerUnit,
		BlendTime:     0.1,
		Logger:        log,
	}
	if opts.Script != nil {
		ps.Device = nil
		ps.Script = input.NewScriptDevice(opts.Script)
	}
	player, err := factory.CreatePlayer(e, ps)
	if err != nil {
		return nil, err
	}

	log.Info("level loaded",
		"level", opts.LevelName,
		"solids", len(opts.Level.SolidRects),
		"spawns", len(opts.Level.SpawnPoints),
		"width", opts.Level.MapWidth,
		"height", opts.Level.MapHeight)

	return &Sim{
		ecs:     e,
		player:  player,
		cfg:     opts.Config,
		updates: opts.Updates,
		log:     log,
	}, nil
}

// ECS exposes the world for renderers.
func (s *Sim) ECS() *ecs.ECS { return s.ecs }

// Player is the simulated player entry.
func (s *Sim) Player() *donburi.Entry { return s.player }

// Step applies any pending config update and runs one fixed step. A paused
// world does not advance.
func (s *Sim) Step() {
	s.drainUpdates()
	before := s.clock().Tick
	s.ecs.Update()

	clock := s.clock()
	if clock.Tick == before {
		return
	}
	if every := s.cfg.Sim.LogEvery; every > 0 && clock.Tick%every == 0 {
		sum := s.Summary()
		s.log.Info("tick",
			"tick", sum.Ticks,
			"state", sum.State.String(),
			"x", sum.Position.X(),
			"y", sum.Position.Y(),
			"z", sum.Position.Z(),
			"yaw", sum.Yaw)
	}
}

// Done reports whether the run has reached its tick limit or its script has
// run out.
func (s *Sim) Done() bool {
	if limit := s.cfg.Sim.Ticks; limit > 0 && s.clock().Tick >= limit {
		return true
	}
	return systems.ScriptsDone(s.ecs)
}

// Run steps until Done or ctx is cancelled. In realtime mode steps are paced
// by a ticker at the configured rate; otherwise they run back to back.
func (s *Sim) Run(ctx context.Context) error {
	s.log.Info("sim started",
		"tickrate", s.cfg.Sim.TickRate,
		"realtime", s.cfg.Sim.Realtime,
		"mode", string(s.cfg.Sim.InputMode))

	if !s.cfg.Sim.Realtime {
		for !s.Done() {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Step()
		}
		return nil
	}

	ticker := time.NewTicker(time.Duration(s.cfg.Sim.Step() * float64(time.Second)))
	defer ticker.Stop()
	for !s.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Step()
		}
	}
	return nil
}

// Reconfigure retunes every motor. The change takes effect on the next step.
func (s *Sim) Reconfigure(motorCfg config.MotorConfig) error {
	if err := systems.ApplyMotorConfig(s.ecs, motorCfg); err != nil {
		return err
	}
	s.cfg.Motor = motorCfg
	s.log.Info("motor retuned",
		"walk_speed", motorCfg.WalkSpeed,
		"jump_height", motorCfg.JumpHeight,
		"dodge_speed", motorCfg.DodgeSpeed)
	return nil
}

func (s *Sim) drainUpdates() {
	if s.updates == nil {
		return
	}
	select {
	case f, ok := <-s.updates:
		if !ok {
			s.updates = nil
			return
		}
		if err := s.Reconfigure(f.Motor); err != nil {
			s.log.Warn("config update rejected", "err", err)
		}
	default:
	}
}

// Summary reports the player's state and accumulated stats.
func (s *Sim) Summary() Summary {
	clock := s.clock()
	player := components.Player.Get(s.player)
	sum := Summary{
		Ticks:    clock.Tick,
		Elapsed:  clock.Elapsed,
		State:    components.State.Get(s.player).CurrentState,
		Position: components.Body.Get(s.player).Position(),
		Yaw:      components.Motor.Get(s.player).Controller.Yaw(),
		Stats:    player.Stats,
	}
	if levelEntry, ok := components.Level.First(s.ecs.World); ok {
		sum.Level = components.Level.Get(levelEntry).Name
	}
	return sum
}

// LogValue renders a summary as a structured group.
func (sum Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", sum.Level),
		slog.Int("ticks", sum.Ticks),
		slog.Float64("elapsed", sum.Elapsed),
		slog.String("state", sum.State.String()),
		slog.Float64("distance", sum.Stats.Distance),
		slog.Float64("airtime", sum.Stats.Airtime),
		slog.Int("jumps", sum.Stats.Jumps),
		slog.Int("dodges", sum.Stats.Dodges),
		slog.Int("rolls", sum.Stats.Landings[motor.LandingRoll]),
		slog.Int("hard_landings", sum.Stats.Landings[motor.LandingHard]),
		slog.Float64("max_impact", sum.Stats.MaxImpact),
	)
}

func (s *Sim) clock() components.ClockData {
	clockEntry, ok := components.Clock.First(s.ecs.World)
	if !ok {
		return components.ClockData{}
	}
	return *components.Clock.Get(clockEntry)
}
