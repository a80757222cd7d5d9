package system

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"shooter-ebiten/ecs/component"
)

var (
	bulletQuery    = query.NewQuery(filter.Contains(component.BulletTag, component.BodyComponent))
	characterQuery = query.NewQuery(filter.And(
		filter.Contains(component.BodyComponent),
		filter.Or(filter.Contains(component.PlayerTag), filter.Contains(component.EnemyTag)),
	))
)

// UpdateBullets moves every active bullet of the given pools.
func UpdateBullets(deltaMs float64, pools ...*BulletsPool) {
	for _, p := range pools {
		for _, b := range p.Owned() {
			b.Update(deltaMs)
		}
	}
}

type collisionTarget struct {
	body      *component.Body
	character *Character
}

// ResolveCollisions checks active bullets against character bodies with a circle overlap test.
// Only group pairs allowed by the CollisionRegistry are tested. Each bullet hits at most one body.
// Dead or escaped characters are not hit.
func ResolveCollisions(ctx *SimContext) int {
	var targets []collisionTarget
	characterQuery.Each(ctx.World, func(entry *donburi.Entry) {
		c, ok := ctx.Characters.Lookup(entry.Entity())
		if !ok || c.Finished() {
			return
		}
		targets = append(targets, collisionTarget{body: component.BodyComponent.Get(entry), character: c})
	})

	var hits []func()
	bulletQuery.Each(ctx.World, func(entry *donburi.Entry) {
		body := component.BodyComponent.Get(entry)
		if !body.Active {
			return
		}
		b, ok := ctx.Bullets.Lookup(entry.Entity())
		if !ok {
			return
		}
		for _, t := range targets {
			if !ctx.Collision.Collides(body.Group, t.body.Group) {
				continue
			}
			r := body.Radius + t.body.Radius
			if body.Position.Vec().Sub(t.body.Position.Vec()).Len() <= r {
				target := t.character
				hits = append(hits, func() { b.Hit(target.Health()) })
				return
			}
		}
	})

	// applied after the queries so listeners may remove entities
	for _, hit := range hits {
		hit()
	}
	return len(hits)
}
