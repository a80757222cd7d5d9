package entity

import (
	"shooter-ebiten/core"
	"shooter-ebiten/ecs/component"

	"github.com/yohamta/donburi"
)

// Actor is the donburi-backed implementation of core.Actor.
// Its position lives in the Body component in canvas space; area positions go through the converter.
type Actor struct {
	world     donburi.World
	entry     *donburi.Entry
	converter *core.CoordinatesConverter
}

// NewActor creates an entity with Body and Appearance plus the given tags.
func NewActor(world donburi.World, converter *core.CoordinatesConverter, tags ...donburi.IComponentType) *Actor {
	components := append([]donburi.IComponentType{component.BodyComponent, component.AppearanceComponent}, tags...)
	entry := world.Entry(world.Create(components...))
	return &Actor{world: world, entry: entry, converter: converter}
}

func (a *Actor) Entity() donburi.Entity { return a.entry.Entity() }
func (a *Actor) Entry() *donburi.Entry  { return a.entry }
func (a *Actor) Valid() bool            { return a.entry.Valid() }

func (a *Actor) Body() *component.Body {
	return component.BodyComponent.Get(a.entry)
}

func (a *Actor) Appearance() *component.Appearance {
	return component.AppearanceComponent.Get(a.entry)
}

func (a *Actor) MoveToPosInArea(p core.AreaPoint) {
	a.Body().Position = a.converter.AreaToCanvas(p)
}

func (a *Actor) PosInArea() core.AreaPoint {
	return a.converter.CanvasToArea(a.Body().Position)
}

func (a *Actor) Converter() *core.CoordinatesConverter {
	return a.converter
}

func (a *Actor) SetCollisionGroup(g core.CollisionGroup) {
	a.Body().Group = g
}

// Remove deletes the entity from the world. Removing twice is a no-op.
func (a *Actor) Remove() {
	if a.entry.Valid() {
		a.world.Remove(a.entry.Entity())
	}
}
