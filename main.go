package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"

	"shooter-ebiten/assets"
	"shooter-ebiten/core"
	"shooter-ebiten/data"
	"shooter-ebiten/ecs/system"
	"shooter-ebiten/scene"
	"shooter-ebiten/stage"
)

func main() {
	cfg, err := data.LoadConfig(".")
	if err != nil {
		// the logger is not configured yet
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Logger = data.NewLogger(cfg.LogLevel, os.Stderr).With().Str("run", uuid.NewString()).Logger()
	log.Info().
		Str("stage", cfg.StageID).
		Int64("seed", cfg.Seed).
		Msg("starting")

	metrics, err := system.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics")
	}

	loader := data.NewLoader(nil, assets.FS, data.DefaultAssetPaths())
	stageData, err := data.LoadStageData(loader, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load stage data")
	}

	catalog := stage.NewCatalog(stageData.Enemies, stageData.Squads, stageData.Stages)
	if err := catalog.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid stage data")
	}

	res := &scene.Resources{
		Config:    cfg,
		Catalog:   catalog,
		Collision: core.NewCollisionRegistry(),
		Metrics:   metrics,
		Font:      text.NewGoXFace(basicfont.Face7x13),
		Log:       log.Logger,
	}

	manager, err := scene.NewManager(res)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create scene manager")
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Shooter (bamenn)")

	if err := ebiten.RunGame(manager.Sequence); err != nil {
		log.Fatal().Err(err).Msg("game loop stopped")
	}
}
