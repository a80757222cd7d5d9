package stage

import (
	"math"

	"github.com/yohamta/donburi"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/component"
	"shooter-ebiten/ecs/entity"
	"shooter-ebiten/ecs/system"
	"shooter-ebiten/pattern"
)

const (
	radialVolleys      = 3
	playerShotInterval = 5 // frames
)

// PlayerParams configures the player character.
type PlayerParams struct {
	MaxHealth  float64
	ShotSpeed  float64
	ShotDamage float64
	SizeInArea float64
	Start      core.AreaPoint
}

// Factory builds characters into the world of ctx.
type Factory struct {
	ctx          *system.SimContext
	enemyBullets *system.BulletsPool
	target       pattern.Target
}

// NewFactory returns a factory whose enemies shoot into enemyBullets.
// target feeds aimed patterns and may be nil.
func NewFactory(ctx *system.SimContext, enemyBullets *system.BulletsPool, target pattern.Target) *Factory {
	return &Factory{ctx: ctx, enemyBullets: enemyBullets, target: target}
}

func (f *Factory) newActor(sizeInArea float64, texture core.TextureMeta, tag donburi.IComponentType) *entity.Actor {
	actor := entity.NewActor(f.ctx.World, f.ctx.Converter, tag)
	size := sizeInArea * f.ctx.Converter.AreaSizeInCanvas()
	actor.Body().Radius = size / 2
	app := actor.Appearance()
	app.Texture = texture
	app.Width = size
	app.Height = size
	return actor
}

func (f *Factory) NewEnemy(data core.EnemyData, mover *system.Mover) *system.Character {
	actor := f.newActor(data.SizeInArea, data.Texture, component.EnemyTag)
	muzzle := system.NewMuzzle(f.ctx, actor, core.Vec2{}, f.enemyBullets, data.Shot.Damage)
	weapon := system.NewWeapon(f.patternPlayer(muzzle, data.Shot))
	health := component.NewHealthComponent(data.Health, data.Health)
	return system.NewCharacter(f.ctx, actor, core.SideEnemy, health, mover, weapon)
}

func (f *Factory) patternPlayer(firer core.Firer, shot core.ShotData) core.PatternPlayer {
	switch shot.Pattern {
	case core.PatternRadial:
		ways := max(1, shot.Ways)
		return pattern.NewRadial(firer, pattern.RadialConfig{
			Ways:           ways,
			Speed:          shot.Speed,
			IntervalFrames: shot.IntervalFrames,
			Volleys:        radialVolleys,
			Spin:           math.Pi / float64(ways) / 2,
		})
	case core.PatternAimed:
		return pattern.NewStream(firer, pattern.StreamConfig{
			Heading:        pattern.HeadingDown,
			Speed:          shot.Speed,
			IntervalFrames: shot.IntervalFrames,
			Aim:            f.target,
		})
	default:
		return pattern.NewStream(firer, pattern.StreamConfig{
			Heading:        pattern.HeadingDown,
			Speed:          shot.Speed,
			IntervalFrames: shot.IntervalFrames,
		})
	}
}

// NewPlayer builds the player with a started NullMover. It shoots straight up into bullets.
func (f *Factory) NewPlayer(p PlayerParams, bullets *system.BulletsPool) *system.Character {
	actor := f.newActor(p.SizeInArea, core.TextureMeta{Name: "player", Color: "#7fd4ff"}, component.PlayerTag)
	muzzle := system.NewMuzzle(f.ctx, actor, core.Vec2{X: p.SizeInArea / 2}, bullets, p.ShotDamage)
	weapon := system.NewWeapon(pattern.NewStream(muzzle, pattern.StreamConfig{
		Heading:        0,
		Speed:          p.ShotSpeed,
		IntervalFrames: playerShotInterval,
	}))
	mover := system.NewNullMover()
	c := system.NewCharacter(f.ctx, actor, core.SidePlayer, component.NewHealthComponent(p.MaxHealth, p.MaxHealth), mover, weapon)
	mover.Start(actor)
	actor.MoveToPosInArea(p.Start)
	return c
}
