package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"

	"shooter-ebiten/core"
	"shooter-ebiten/data"
	"shooter-ebiten/ecs/system"
	"shooter-ebiten/stage"
)

// Scene is what the bamenn sequence switches between.
type Scene interface {
	ebiten.Game
}

// Resources are created once in main and shared by every scene.
type Resources struct {
	Config    data.Config
	Catalog   *stage.Catalog
	Collision *core.CollisionRegistry
	Metrics   *system.Metrics
	Font      text.Face
	Log       zerolog.Logger
}
