// Package pattern provides the pattern players weapons drive.
// Players emit shots through a core.Firer; the transform they pass maps to area space
// and its rotation is the area heading (0 = area +x, which is up on the canvas).
package pattern

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"shooter-ebiten/core"
)

// HeadingDown is the area heading towards the bottom of the canvas.
const HeadingDown = math.Pi

// Target returns the point aimed shots head for. ok=false falls back to the fixed heading.
type Target func() (p core.AreaPoint, ok bool)

func shot(firer core.Firer, heading, speed float64) {
	origin := firer.PosInArea()
	var g ebiten.GeoM
	g.Rotate(heading)
	g.Translate(origin.X, origin.Y)
	firer.Fire(core.FireData{
		Transform: g,
		Params:    map[string]float64{"speed": speed},
	})
}

func headingTo(from, to core.AreaPoint) float64 {
	d := to.Vec().Sub(from.Vec())
	return math.Atan2(d.Y, d.X)
}
