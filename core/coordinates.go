package core

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CoordinatesConverter converts between area, visual area and canvas space.
// It is immutable after construction.
//
//	area       -> canvas: translate(center) * scale(areaSize) * rotate(-90deg)
//	visualArea -> canvas: translate(center) * scale(visualSize.X, visualSize.Y) * rotate(-90deg)
type CoordinatesConverter struct {
	areaSizeInCanvas       float64
	visualAreaSizeInCanvas Vec2
	centerInCanvas         CanvasPoint

	areaToCanvas       ebiten.GeoM
	canvasToArea       ebiten.GeoM
	visualToCanvas     ebiten.GeoM
	canvasToVisual     ebiten.GeoM
	areaVecToCanvas    ebiten.GeoM
	canvasVecToAreaVec ebiten.GeoM
}

// NewCoordinatesConverter builds the forward and inverse transforms once.
func NewCoordinatesConverter(areaSizeInCanvas float64, visualAreaSizeInCanvas Vec2, centerInCanvas CanvasPoint) *CoordinatesConverter {
	c := &CoordinatesConverter{
		areaSizeInCanvas:       areaSizeInCanvas,
		visualAreaSizeInCanvas: visualAreaSizeInCanvas,
		centerInCanvas:         centerInCanvas,
	}

	c.areaVecToCanvas = quarterTurn()
	c.areaVecToCanvas.Scale(areaSizeInCanvas, areaSizeInCanvas)
	c.canvasVecToAreaVec = c.areaVecToCanvas
	c.canvasVecToAreaVec.Invert()

	c.areaToCanvas = c.areaVecToCanvas
	c.areaToCanvas.Translate(centerInCanvas.X, centerInCanvas.Y)
	c.canvasToArea = c.areaToCanvas
	c.canvasToArea.Invert()

	c.visualToCanvas = quarterTurn()
	c.visualToCanvas.Scale(visualAreaSizeInCanvas.X, visualAreaSizeInCanvas.Y)
	c.visualToCanvas.Translate(centerInCanvas.X, centerInCanvas.Y)
	c.canvasToVisual = c.visualToCanvas
	c.canvasToVisual.Invert()

	return c
}

// quarterTurn is rotate(-90deg) with exact elements: (x, y) -> (y, -x).
func quarterTurn() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, 0)
	g.SetElement(0, 1, 1)
	g.SetElement(1, 0, -1)
	g.SetElement(1, 1, 0)
	return g
}

func apply(g *ebiten.GeoM, v Vec2) Vec2 {
	x, y := g.Apply(v.X, v.Y)
	return Vec2{X: x, Y: y}
}

func (c *CoordinatesConverter) AreaSizeInCanvas() float64    { return c.areaSizeInCanvas }
func (c *CoordinatesConverter) VisualAreaSizeInCanvas() Vec2 { return c.visualAreaSizeInCanvas }
func (c *CoordinatesConverter) CenterInCanvas() CanvasPoint  { return c.centerInCanvas }

func (c *CoordinatesConverter) AreaToCanvas(p AreaPoint) CanvasPoint {
	return CanvasPoint(apply(&c.areaToCanvas, Vec2(p)))
}

func (c *CoordinatesConverter) CanvasToArea(p CanvasPoint) AreaPoint {
	return AreaPoint(apply(&c.canvasToArea, Vec2(p)))
}

func (c *CoordinatesConverter) VisualAreaToCanvas(p VisualAreaPoint) CanvasPoint {
	return CanvasPoint(apply(&c.visualToCanvas, Vec2(p)))
}

func (c *CoordinatesConverter) CanvasToVisualArea(p CanvasPoint) VisualAreaPoint {
	return VisualAreaPoint(apply(&c.canvasToVisual, Vec2(p)))
}

func (c *CoordinatesConverter) AreaToVisualArea(p AreaPoint) VisualAreaPoint {
	return c.CanvasToVisualArea(c.AreaToCanvas(p))
}

func (c *CoordinatesConverter) VisualAreaToArea(p VisualAreaPoint) AreaPoint {
	return c.CanvasToArea(c.VisualAreaToCanvas(p))
}

// AreaVectorToCanvas converts a delta; the center translation is not applied.
func (c *CoordinatesConverter) AreaVectorToCanvas(v Vec2) Vec2 {
	return apply(&c.areaVecToCanvas, v)
}

// CanvasVectorToArea converts a canvas delta back to area units.
func (c *CoordinatesConverter) CanvasVectorToArea(v Vec2) Vec2 {
	return apply(&c.canvasVecToAreaVec, v)
}

// CanvasPointIsInVisualArea reports whether p lies inside the visual area, boundary included.
func (c *CoordinatesConverter) CanvasPointIsInVisualArea(p CanvasPoint) bool {
	v := c.CanvasToVisualArea(p)
	return v.X >= -0.5 && v.X <= 0.5 && v.Y >= -0.5 && v.Y <= 0.5
}

func (c *CoordinatesConverter) AreaPointIsInVisualArea(p AreaPoint) bool {
	return c.CanvasPointIsInVisualArea(c.AreaToCanvas(p))
}

// ClampCanvasPointInVisualArea moves p to the nearest point of the visual area.
func (c *CoordinatesConverter) ClampCanvasPointInVisualArea(p CanvasPoint) CanvasPoint {
	v := c.CanvasToVisualArea(p)
	v.X = Clamp(v.X, -0.5, 0.5)
	v.Y = Clamp(v.Y, -0.5, 0.5)
	return c.VisualAreaToCanvas(v)
}
