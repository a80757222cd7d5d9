package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"shooter-ebiten/core"
)

// Muzzle is the firing point a pattern player shoots through.
type Muzzle struct {
	owner     core.Actor
	offset    core.Vec2
	pool      *BulletsPool
	damage    float64
	collision *core.CollisionRegistry
	metrics   *Metrics
	log       zerolog.Logger
}

// NewMuzzle attaches a firing point to owner. offset is in area units relative to the owner.
func NewMuzzle(ctx *SimContext, owner core.Actor, offset core.Vec2, pool *BulletsPool, damage float64) *Muzzle {
	return &Muzzle{
		owner:     owner,
		offset:    offset,
		pool:      pool,
		damage:    damage,
		collision: ctx.Collision,
		metrics:   ctx.Metrics,
		log:       ctx.Log,
	}
}

func (m *Muzzle) PosInArea() core.AreaPoint {
	return core.AreaPoint(m.owner.PosInArea().Vec().Add(m.offset))
}

// Fire pops a bullet and launches it along the heading encoded in data.Transform.
// The transform maps to area space; its rotation is the area heading.
// An empty pool drops the shot.
func (m *Muzzle) Fire(data core.FireData) {
	speed, ok := data.Params["speed"]
	if !ok {
		panic("muzzle: fire data has no \"speed\" parameter")
	}
	side := m.pool.Side()
	b, ok := m.pool.Pop()
	if !ok {
		m.log.Trace().Stringer("side", side).Msg("shot dropped, bullet pool empty")
		m.metrics.ShotDropped(side)
		return
	}

	posInArea, rotation := decompose(data.Transform)
	conv := m.owner.Converter()
	canvasSpeed := conv.AreaVectorToCanvas(core.Vec2{X: speed}).Len()

	b.Init(BulletInit{
		Damage:   m.damage,
		Position: conv.AreaToCanvas(posInArea),
		Rotation: rotation,
		Velocity: core.Unit(rotation - math.Pi/2).Scale(canvasSpeed),
		Side:     side,
		Group:    m.collision.BulletGroup(side),
		ZIndex:   m.collision.BulletZIndex(side),
	})
	m.metrics.BulletFired(side)
}

// decompose extracts translation and rotation (radians) from an affine transform.
func decompose(g ebiten.GeoM) (core.AreaPoint, float64) {
	a := g.Element(0, 0)
	c := g.Element(1, 0)
	return core.AreaPoint{X: g.Element(0, 2), Y: g.Element(1, 2)}, math.Atan2(c, a)
}
