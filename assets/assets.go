package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/automoto/playermotor/shared/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// Levels loads every embedded level, keyed by file stem.
func Levels() (map[string]*leveldata.CollisionData, []string, error) {
	return leveldata.LoadAllLevels(levelFS, "levels")
}

// Level loads one embedded level by name.
func Level(name string) (*leveldata.CollisionData, error) {
	data, err := leveldata.LoadCollisionData(levelFS, path.Join("levels", name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("embedded level %q: %w", name, err)
	}
	return data, nil
}
