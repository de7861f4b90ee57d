package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/playermotor/assets"
	"github.com/automoto/playermotor/shared/leveldata"
)

// Default flat arena, in tiles.
const (
	FlatWidth  = 40
	FlatHeight = 15
	FlatTile   = 16
)

// LoadLevel reads a TMX file and names the level after its file stem. A name
// without the .tmx extension selects an embedded level, and an empty path
// yields the flat arena.
func LoadLevel(path string) (string, *leveldata.CollisionData, error) {
	if path == "" {
		return "flat", leveldata.FlatFloor(FlatWidth, FlatHeight, FlatTile), nil
	}
	if filepath.Ext(path) != ".tmx" {
		data, err := assets.Level(path)
		if err != nil {
			return "", nil, err
		}
		return path, data, nil
	}
	data, err := leveldata.LoadCollisionData(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return "", nil, fmt.Errorf("load level: %w", err)
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), data, nil
}
