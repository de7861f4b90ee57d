// Package leveldata provides TMX level parsing for the simulation hosts.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
// Coordinates are pixels with y pointing down.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
	TileSize    int
}

// SolidRect is a run of solid tiles merged along a row.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y   float64
	Index  int
	Facing float64 // yaw in degrees
}

// Spawn returns the spawn for player index i, wrapping around the list.
// ok is false when the level has no spawns.
func (d *CollisionData) Spawn(i int) (SpawnPoint, bool) {
	if d == nil || len(d.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	n := len(d.SpawnPoints)
	i %= n
	if i < 0 {
		i += n
	}
	return d.SpawnPoints[i], true
}
