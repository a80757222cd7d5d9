package core

import "math"

// Vec2 is a plain 2-D vector shared by every coordinate space.
type Vec2 struct {
	X, Y float64
}

// Unit returns the unit vector pointing at angle (radians).
func Unit(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos, Y: sin}
}

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }

// AreaPoint is a location in the normalized square playfield, [-0.5, 0.5] on both axes.
type AreaPoint Vec2

// VisualAreaPoint is a location normalized against the visible sub-rectangle.
type VisualAreaPoint Vec2

// CanvasPoint is a location in render space (pixels).
type CanvasPoint Vec2

func (p AreaPoint) Vec() Vec2       { return Vec2(p) }
func (p VisualAreaPoint) Vec() Vec2 { return Vec2(p) }
func (p CanvasPoint) Vec() Vec2     { return Vec2(p) }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
