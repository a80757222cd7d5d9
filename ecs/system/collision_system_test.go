package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/component"
	"shooter-ebiten/ecs/entity"
)

func TestResolveCollisions_PlayerBulletHitsEnemy(t *testing.T) {
	ctx := newTestContext()
	enemy := newStartedEnemy(ctx)
	enemy.Actor().MoveToPosInArea(core.AreaPoint{})

	pool := NewBulletsPool(ctx, core.SidePlayer, 2, 2)
	near, _ := pool.Pop()
	far, _ := pool.Pop()
	launch(near, core.CanvasPoint{X: 256 + 9, Y: 256}, core.Vec2{})
	launch(far, core.CanvasPoint{X: 256 + 11, Y: 256}, core.Vec2{})

	assert.Equal(t, 1, ResolveCollisions(ctx))
	assert.True(t, enemy.Health().IsDead())
	assert.False(t, near.IsActive())
	assert.True(t, far.IsActive())
}

func TestResolveCollisions_FiltersGroups(t *testing.T) {
	ctx := newTestContext()
	enemy := newStartedEnemy(ctx)
	enemy.Actor().MoveToPosInArea(core.AreaPoint{})

	pool := NewBulletsPool(ctx, core.SideEnemy, 1, 2)
	b, _ := pool.Pop()
	b.Init(BulletInit{Damage: 1, Position: core.CanvasPoint{X: 256, Y: 256}, Side: core.SideEnemy, Group: core.GroupEnemyBullet})

	assert.Zero(t, ResolveCollisions(ctx))
	assert.False(t, enemy.Health().IsDead())

	player := entity.NewActor(ctx.World, ctx.Converter, component.PlayerTag)
	player.Body().Radius = 4
	player.MoveToPosInArea(core.AreaPoint{})
	mover := NewNullMover()
	mover.Start(player)
	pc := NewCharacter(ctx, player, core.SidePlayer, component.NewHealthComponent(5, 5), mover, nil)

	assert.Equal(t, 1, ResolveCollisions(ctx))
	assert.Equal(t, 4.0, pc.Health().Health())
}

func TestUpdateBullets_MovesActiveOnly(t *testing.T) {
	ctx := newTestContext()
	pool := NewBulletsPool(ctx, core.SidePlayer, 2, 2)
	b, _ := pool.Pop()
	launch(b, core.CanvasPoint{X: 256, Y: 256}, core.Vec2{Y: -100})

	UpdateBullets(500, pool)
	assert.InDelta(t, 206, b.Body().Position.Y, 1e-9)
	idle := pool.Bullets()[0]
	assert.Equal(t, core.CanvasPoint{}, idle.Body().Position)
}

func TestResolveCollisions_SkipsEscapedEnemy(t *testing.T) {
	ctx := newTestContext()
	s := NewSquad(ctx, "test")
	enemy := newStartedEnemy(ctx)
	s.Add(enemy)
	s.NotifyFinishSpawning()
	enemy.Actor().MoveToPosInArea(core.AreaPoint{})
	escape(enemy)

	pool := NewBulletsPool(ctx, core.SidePlayer, 1, 2)
	b, _ := pool.Pop()
	launch(b, core.CanvasPoint{X: 256, Y: 256}, core.Vec2{})

	assert.NotPanics(t, func() { assert.Zero(t, ResolveCollisions(ctx)) })
	assert.False(t, enemy.Health().IsDead())
	assert.True(t, b.IsActive())
	st, _ := s.StatusOf(enemy)
	assert.Equal(t, core.StatusEscaped, st)
}
