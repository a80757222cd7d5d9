package data

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	resource "github.com/quasilyte/ebitengine-resource"
	"github.com/rs/zerolog"

	"shooter-ebiten/core"
)

// AssetPaths locate the stage data inside the asset filesystem.
type AssetPaths struct {
	EnemiesCSV string
	SquadsCSV  string
	StagesCSV  string
}

func DefaultAssetPaths() AssetPaths {
	return AssetPaths{
		EnemiesCSV: "data/enemies.csv",
		SquadsCSV:  "data/squads.csv",
		StagesCSV:  "data/stages.csv",
	}
}

// NewLoader returns a resource loader reading from fsys with the stage CSV files registered.
// audioContext may be nil; the stage data has no sounds.
func NewLoader(audioContext *audio.Context, fsys fs.FS, paths AssetPaths) *resource.Loader {
	loader := resource.NewLoader(audioContext)
	loader.OpenAssetFunc = func(path string) io.ReadCloser {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			panic(fmt.Sprintf("data: open asset %s: %v", path, err))
		}
		return io.NopCloser(bytes.NewReader(data))
	}

	loader.RawRegistry.Assign(map[resource.RawID]resource.RawInfo{
		RawEnemiesCSV: {Path: paths.EnemiesCSV},
		RawSquadsCSV:  {Path: paths.SquadsCSV},
		RawStagesCSV:  {Path: paths.StagesCSV},
	})
	return loader
}

// StageData is every authoring record the game ships with.
type StageData struct {
	Enemies []core.EnemyData
	Squads  []core.SquadData
	Stages  []core.StageData
}

// LoadStageData parses the registered CSV resources.
func LoadStageData(loader *resource.Loader, log zerolog.Logger) (StageData, error) {
	var (
		sd  StageData
		err error
	)
	if sd.Enemies, err = ParseEnemies(bytes.NewReader(loader.LoadRaw(RawEnemiesCSV).Data), log); err != nil {
		return StageData{}, fmt.Errorf("failed to load enemies.csv: %w", err)
	}
	if sd.Squads, err = ParseSquads(bytes.NewReader(loader.LoadRaw(RawSquadsCSV).Data), log); err != nil {
		return StageData{}, fmt.Errorf("failed to load squads.csv: %w", err)
	}
	if sd.Stages, err = ParseStages(bytes.NewReader(loader.LoadRaw(RawStagesCSV).Data), log); err != nil {
		return StageData{}, fmt.Errorf("failed to load stages.csv: %w", err)
	}
	log.Debug().
		Int("enemies", len(sd.Enemies)).
		Int("squads", len(sd.Squads)).
		Int("stages", len(sd.Stages)).
		Msg("stage data loaded")
	return sd, nil
}
