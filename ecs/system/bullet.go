package system

import (
	"shooter-ebiten/core"
	"shooter-ebiten/ecs/component"
	"shooter-ebiten/ecs/entity"
	"shooter-ebiten/event"
)

// BulletInit carries everything a muzzle decides about a shot, in canvas space.
type BulletInit struct {
	Damage   float64
	Position core.CanvasPoint
	Rotation float64   // radians, 0 = canvas up
	Velocity core.Vec2 // canvas units per second
	Side     core.Side
	Group    core.CollisionGroup
	ZIndex   int
}

// Bullet is a pooled projectile. It is either in its pool (inactive) or active and moving.
type Bullet struct {
	ctx     *SimContext
	actor   *entity.Actor
	side    core.Side
	damage  float64
	active  bool
	recycle *Timer

	Killed *event.Dispatcher[*Bullet]
}

// NewBullet creates the bullet entity and returns it to pool whenever it is killed.
// The bullet is not pushed; NewBulletsPool does that for its initial stock.
func NewBullet(ctx *SimContext, pool *BulletsPool, radius float64) *Bullet {
	b := &Bullet{
		ctx:    ctx,
		actor:  entity.NewActor(ctx.World, ctx.Converter, component.BulletTag),
		side:   pool.Side(),
		Killed: event.NewDispatcher[*Bullet](),
	}
	body := b.actor.Body()
	body.Radius = radius
	body.Active = false
	ctx.Bullets.Bind(b.actor.Entity(), b)
	b.Killed.Add(pool.Push)
	return b
}

func (b *Bullet) Init(p BulletInit) {
	b.recycle.Cancel()
	b.recycle = nil
	b.side = p.Side
	b.damage = p.Damage
	b.active = true

	body := b.actor.Body()
	body.Position = p.Position
	body.Rotation = p.Rotation
	body.Velocity = p.Velocity
	body.Group = p.Group
	body.ZIndex = p.ZIndex
	body.Active = true
}

// Update integrates the velocity and arms the recycle timer while outside the visual area.
func (b *Bullet) Update(deltaMs float64) {
	if !b.active {
		return
	}
	body := b.actor.Body()
	body.Position = core.CanvasPoint(body.Position.Vec().Add(body.Velocity.Scale(deltaMs / 1000)))

	inside := b.ctx.Converter.CanvasPointIsInVisualArea(body.Position)
	switch {
	case !inside && b.recycle == nil:
		b.recycle = b.ctx.Timers.After(b.ctx.RecycleDelayMs, b.Kill)
	case inside && b.recycle != nil:
		b.recycle.Cancel()
		b.recycle = nil
	}
}

// Hit damages target and kills the bullet. Inactive bullets do nothing.
func (b *Bullet) Hit(target *component.HealthComponent) {
	if !b.active {
		return
	}
	target.Damage(b.damage)
	b.Kill()
}

// Kill deactivates the bullet and hands it back through Killed. Idempotent.
func (b *Bullet) Kill() {
	if !b.active {
		return
	}
	b.active = false
	b.recycle.Cancel()
	b.recycle = nil
	b.actor.Body().Active = false
	b.Killed.Dispatch(b)
}

func (b *Bullet) IsActive() bool        { return b.active }
func (b *Bullet) Side() core.Side       { return b.side }
func (b *Bullet) Damage() float64       { return b.damage }
func (b *Bullet) Actor() *entity.Actor  { return b.actor }
func (b *Bullet) Body() *component.Body { return b.actor.Body() }
func (b *Bullet) RecyclePending() bool  { return b.recycle.Pending() }
