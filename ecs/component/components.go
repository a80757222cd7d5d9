package component

import (
	"shooter-ebiten/core"
)

// Body is the render-side state of an actor, kept in canvas space.
type Body struct {
	Position core.CanvasPoint
	Rotation float64   // radians, 0 points up the canvas
	Velocity core.Vec2 // canvas units per second
	Radius   float64   // canvas units, used by the broad-phase
	Group    core.CollisionGroup
	ZIndex   int
	Active   bool
}

// Appearance carries what the renderer needs to draw the body.
type Appearance struct {
	Texture core.TextureMeta
	Width   float64
	Height  float64
}
