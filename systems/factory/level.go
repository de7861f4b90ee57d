package factory

import (
	"fmt"

	"github.com/automoto/playermotor/archetypes"
	"github.com/automoto/playermotor/components"
	"github.com/automoto/playermotor/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space and one wall per solid rect.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.CollisionData) (*donburi.Entry, error) {
	if data == nil {
		return nil, fmt.Errorf("level %q has no collision data", name)
	}
	if data.MapWidth <= 0 || data.MapHeight <= 0 {
		return nil, fmt.Errorf("level %q has an empty map (%dx%d)", name, data.MapWidth, data.MapHeight)
	}

	cell := data.TileSize
	if cell <= 0 {
		cell = 16
	}
	CreateSpace(ecs, data.MapWidth, data.MapHeight, cell, cell)

	for _, r := range data.SolidRects {
		CreateWall(ecs, r)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Name: name, Data: data})
	return level, nil
}
