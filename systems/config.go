package systems

import (
	"fmt"

	"github.com/automoto/playermotor/components"
	"github.com/automoto/playermotor/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyMotorConfig retunes every motor in the world. The tuning is validated
// once up front, so either every motor changes or none does.
func ApplyMotorConfig(ecs *ecs.ECS, cfg config.MotorConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var firstErr error
	components.Motor.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Motor.Get(e)
		if m.Controller == nil || firstErr != nil {
			return
		}
		if err := m.Controller.SetConfig(cfg); err != nil {
			firstErr = fmt.Errorf("apply motor config: %w", err)
		}
	})
	return firstErr
}
