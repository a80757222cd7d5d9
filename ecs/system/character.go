package system

import (
	"shooter-ebiten/core"
	"shooter-ebiten/ecs/component"
	"shooter-ebiten/ecs/entity"
	"shooter-ebiten/event"
)

// Character binds an actor to its health, mover and optional weapon.
// It is registered in SimContext.Characters under the actor's entity.
type Character struct {
	ctx     *SimContext
	actor   *entity.Actor
	side    core.Side
	health  *component.HealthComponent
	mover   *Mover
	weapon  *Weapon
	escaped bool
	removed bool

	Destroyed *event.Dispatcher[*Character]
}

// NewCharacter wires the pieces together. weapon may be nil.
// The mover is not started here.
func NewCharacter(ctx *SimContext, actor *entity.Actor, side core.Side, health *component.HealthComponent, mover *Mover, weapon *Weapon) *Character {
	c := &Character{
		ctx:       ctx,
		actor:     actor,
		side:      side,
		health:    health,
		mover:     mover,
		weapon:    weapon,
		Destroyed: event.NewDispatcher[*Character](),
	}
	actor.SetCollisionGroup(ctx.Collision.BodyGroup(side))
	ctx.Characters.Bind(actor.Entity(), c)

	health.Died.Add(func(event.Signal) { c.StopFiring(true) })
	mover.ExitedArea.Add(func(event.Signal) { c.escaped = true })
	return c
}

func (c *Character) StartFiring() {
	if c.weapon == nil || c.health.IsDead() || c.removed {
		return
	}
	c.weapon.StartFiring()
}

func (c *Character) StopFiring(immediately bool) {
	if c.weapon == nil {
		return
	}
	c.weapon.StopFiring(immediately)
}

// Update advances the mover, then the weapon.
func (c *Character) Update(deltaMs float64) {
	if c.removed {
		return
	}
	c.mover.Update(deltaMs)
	if c.weapon != nil {
		c.weapon.Tick(deltaMs)
	}
}

func (c *Character) Kill() {
	c.health.Kill()
}

// Destroy removes the actor from the world. Idempotent.
func (c *Character) Destroy() {
	if c.removed {
		return
	}
	c.removed = true
	c.StopFiring(true)
	c.ctx.Characters.Unbind(c.actor.Entity())
	c.actor.Remove()
	c.Destroyed.Dispatch(c)
}

// Finished reports whether the scene should remove the character.
func (c *Character) Finished() bool { return c.health.IsDead() || c.escaped }

func (c *Character) Actor() *entity.Actor               { return c.actor }
func (c *Character) Side() core.Side                    { return c.side }
func (c *Character) Health() *component.HealthComponent { return c.health }
func (c *Character) Mover() *Mover                      { return c.mover }
func (c *Character) Weapon() *Weapon                    { return c.weapon }
func (c *Character) Escaped() bool                      { return c.escaped }
func (c *Character) Removed() bool                      { return c.removed }
