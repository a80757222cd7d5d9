package system

import (
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"

	"shooter-ebiten/core"
)

// SimContext holds the dependencies every simulation system of one stage run shares.
type SimContext struct {
	World      donburi.World
	Converter  *core.CoordinatesConverter
	Collision  *core.CollisionRegistry
	Timers     *Timers
	Characters *core.Registry[*Character]
	Bullets    *core.Registry[*Bullet]
	Metrics    *Metrics
	Log        zerolog.Logger

	// RecycleDelayMs is how long a bullet may stay outside the visual area.
	RecycleDelayMs float64
}

// NewSimContext builds a context with an empty world and fresh registries.
// metrics may be nil.
func NewSimContext(converter *core.CoordinatesConverter, collision *core.CollisionRegistry, metrics *Metrics, logger zerolog.Logger) *SimContext {
	return &SimContext{
		World:      donburi.NewWorld(),
		Converter:  converter,
		Collision:  collision,
		Timers:     NewTimers(),
		Characters: core.NewRegistry[*Character](),
		Bullets:    core.NewRegistry[*Bullet](),
		Metrics:    metrics,
		Log:        logger,

		RecycleDelayMs: core.BulletRecycleDelayMs,
	}
}
