package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	// CollisionLayer is the tile layer whose non-empty tiles are solid.
	CollisionLayer = "collision"
	// SpawnGroup is the object group holding player spawns.
	SpawnGroup = "PlayerSpawn"
)

// LoadCollisionData parses a TMX file and returns collision data (solid tiles
// and player spawn points). It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		TileSize:  levelMap.TileWidth,
	}

	found := false
	tile := float64(levelMap.TileWidth)
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
				switch {
				case solid && runStart < 0:
					runStart = x
				case !solid && runStart >= 0:
					data.SolidRects = append(data.SolidRects, SolidRect{
						X: float64(runStart) * tile,
						Y: float64(y) * tile,
						W: float64(x-runStart) * tile,
						H: tile,
					})
					runStart = -1
				}
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q tile layer", tmxPath, CollisionLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				X:      o.X,
				Y:      o.Y,
				Index:  o.Properties.GetInt("spawnIndex"),
				Facing: o.Properties.GetFloat("facing"),
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

// FlatFloor builds a level of widthTiles by heightTiles with a one tile floor,
// walls on both ends and a single spawn above the middle of the floor.
func FlatFloor(widthTiles, heightTiles, tileSize int) *CollisionData {
	tile := float64(tileSize)
	w := float64(widthTiles) * tile
	h := float64(heightTiles) * tile
	return &CollisionData{
		SolidRects: []SolidRect{
			{X: 0, Y: h - tile, W: w, H: tile},
			{X: 0, Y: 0, W: tile, H: h - tile},
			{X: w - tile, Y: 0, W: tile, H: h - tile},
		},
		SpawnPoints: []SpawnPoint{{X: w / 2, Y: h - 4*tile}},
		MapWidth:    widthTiles * tileSize,
		MapHeight:   heightTiles * tileSize,
		TileSize:    tileSize,
	}
}
