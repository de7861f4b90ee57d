package factory

import (
	"fmt"
	"log/slog"

	"github.com/automoto/playermotor/animation"
	"github.com/automoto/playermotor/archetypes"
	"github.com/automoto/playermotor/components"
	"github.com/automoto/playermotor/config"
	"github.com/automoto/playermotor/input"
	"github.com/automoto/playermotor/motor"
	"github.com/automoto/playermotor/physics"
	"github.com/automoto/playermotor/shared/leveldata"
	"github.com/automoto/playermotor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Player collision box in pixels.
const (
	PlayerWidth  = 12
	PlayerHeight = 24
)

// PlayerSpec describes a player to spawn.
type PlayerSpec struct {
	Index         int
	Motor         config.MotorConfig
	Mode          config.InputMode
	Device        input.Device        // polled in poll mode
	Script        *input.ScriptDevice // optional, feeds the push buffer or stands in for Device
	PixelsPerUnit float64
	BlendTime     float64 // animation float blend, seconds
	Logger        *slog.Logger
}

// CreatePlayer spawns a player at its level spawn with a fully wired motor.
func CreatePlayer(ecs *ecs.ECS, ps PlayerSpec) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create player %d: no collision space", ps.Index)
	}
	space := components.Space.Get(spaceEntry)

	var spawn leveldata.SpawnPoint
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		spawn, _ = components.Level.Get(levelEntry).Data.Spawn(ps.Index)
	}

	device := ps.Device
	if device == nil && ps.Script != nil {
		device = ps.Script
	}
	source, err := input.NewSource(ps.Mode, device)
	if err != nil {
		return nil, fmt.Errorf("create player %d: %w", ps.Index, err)
	}
	if recv, ok := source.(input.Receiver); ok && ps.Script != nil {
		ps.Script.Forward(recv)
	}

	body := physics.NewBody(space,
		spawn.X-PlayerWidth/2, spawn.Y-PlayerHeight,
		PlayerWidth, PlayerHeight,
		ps.PixelsPerUnit, tags.ResolvPlayer)
	params := animation.NewParamStore(ps.BlendTime)

	log := ps.Logger
	if log == nil {
		log = slog.Default()
	}
	ctrl, err := motor.New(ps.Motor,
		motor.WithResolver(body),
		motor.WithInput(source),
		motor.WithAnimation(params),
		motor.WithFacing(spawn.Facing),
		motor.WithLogger(log.With("player", ps.Index)),
	)
	if err != nil {
		return nil, fmt.Errorf("create player %d: %w", ps.Index, err)
	}

	player := archetypes.Player.Spawn(ecs)
	body.Object.Data = player

	components.Player.SetValue(player, components.PlayerData{Index: ps.Index, Spawn: spawn})
	components.Body.SetValue(player, components.BodyData{Body: body})
	components.Motor.SetValue(player, components.MotorData{Controller: ctrl})
	components.Input.SetValue(player, components.InputData{
		Mode:   ps.Mode,
		Source: source,
		Script: ps.Script,
	})
	components.Animation.SetValue(player, components.AnimationData{Params: params})
	components.State.SetValue(player, components.StateData{CurrentState: components.StateIdle})

	return player, nil
}
