package leveldata

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollisionData(t *testing.T) {
	data, err := LoadCollisionData(os.DirFS("testdata"), "levels/ledge.tmx")
	require.NoError(t, err)

	assert.Equal(t, 160, data.MapWidth)
	assert.Equal(t, 96, data.MapHeight)
	assert.Equal(t, 16, data.TileSize)

	require.Len(t, data.SolidRects, 2)
	assert.Equal(t, SolidRect{X: 96, Y: 32, W: 32, H: 16}, data.SolidRects[0])
	assert.Equal(t, SolidRect{X: 0, Y: 80, W: 160, H: 16}, data.SolidRects[1])

	require.Len(t, data.SpawnPoints, 2)
	assert.Equal(t, SpawnPoint{X: 24, Y: 40, Index: 0, Facing: 90}, data.SpawnPoints[0])
	assert.Equal(t, SpawnPoint{X: 80, Y: 40, Index: 1}, data.SpawnPoints[1])
}

func TestLoadCollisionDataMissingFile(t *testing.T) {
	_, err := LoadCollisionData(os.DirFS("testdata"), "levels/nope.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"ledge"}, names)
	assert.Contains(t, levels, "ledge")

	_, _, err = LoadAllLevels(os.DirFS("testdata"), "empty")
	assert.Error(t, err)
}

func TestFlatFloor(t *testing.T) {
	data := FlatFloor(40, 15, 16)
	assert.Equal(t, 640, data.MapWidth)
	assert.Equal(t, 240, data.MapHeight)
	require.Len(t, data.SolidRects, 3)
	assert.Equal(t, SolidRect{X: 0, Y: 224, W: 640, H: 16}, data.SolidRects[0])

	spawn, ok := data.Spawn(3)
	require.True(t, ok)
	assert.Equal(t, 320.0, spawn.X)
	assert.Less(t, spawn.Y, 224.0)
}

func TestSpawnWithoutPoints(t *testing.T) {
	_, ok := (&CollisionData{}).Spawn(0)
	assert.False(t, ok)

	var nilData *CollisionData
	_, ok = nilData.Spawn(0)
	assert.False(t, ok)
}

func TestSpawnWrapsNegativeIndex(t *testing.T) {
	data := &CollisionData{SpawnPoints: []SpawnPoint{{Index: 0}, {Index: 1}, {Index: 2}}}

	tests := []struct {
		i    int
		want int
	}{
		{0, 0},
		{4, 1},
		{-1, 2},
		{-3, 0},
		{-4, 2},
		{math.MaxInt, math.MaxInt % 3},
		{math.MinInt, ((math.MinInt % 3) + 3) % 3},
	}
	for _, tt := range tests {
		spawn, ok := data.Spawn(tt.i)
		require.True(t, ok, "index %d", tt.i)
		assert.Equal(t, tt.want, spawn.Index, "index %d", tt.i)
	}
}
