package system

import (
	"github.com/rs/zerolog"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/component"
	"shooter-ebiten/ecs/entity"
)

// visual area of this context covers area x in [-0.5, 0.5] and y in [-0.25, 0.25]
func newTestContext() *SimContext {
	conv := core.NewCoordinatesConverter(512, core.Vec2{X: 256, Y: 512}, core.CanvasPoint{X: 256, Y: 256})
	return NewSimContext(conv, core.NewCollisionRegistry(), nil, zerolog.Nop())
}

func newTestEnemy(ctx *SimContext, mover *Mover, health float64, weapon *Weapon) *Character {
	actor := entity.NewActor(ctx.World, ctx.Converter, component.EnemyTag)
	actor.Body().Radius = 8
	return NewCharacter(ctx, actor, core.SideEnemy, component.NewHealthComponent(health, health), mover, weapon)
}

func newStartedEnemy(ctx *SimContext) *Character {
	c := newTestEnemy(ctx, NewNullMover(), 1, nil)
	c.Mover().Start(c.Actor())
	return c
}
