package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConverter() *CoordinatesConverter {
	return NewCoordinatesConverter(640, Vec2{X: 480, Y: 640}, CanvasPoint{X: 240, Y: 320})
}

// dyadic sizes keep every conversion exact
func newExactConverter() *CoordinatesConverter {
	return NewCoordinatesConverter(512, Vec2{X: 256, Y: 512}, CanvasPoint{X: 256, Y: 256})
}

func TestCoordinatesConverter_RoundTrip(t *testing.T) {
	c := newTestConverter()
	for _, p := range []AreaPoint{{0, 0}, {0.5, -0.5}, {-0.25, 0.3}, {0.12, 0.49}, {-0.7, 0.9}} {
		got := c.CanvasToArea(c.AreaToCanvas(p))
		assert.InDelta(t, p.X, got.X, 1e-9)
		assert.InDelta(t, p.Y, got.Y, 1e-9)
	}
	for _, p := range []VisualAreaPoint{{0, 0}, {0.5, 0.5}, {-0.5, 0.2}, {0.33, -0.41}} {
		got := c.CanvasToVisualArea(c.VisualAreaToCanvas(p))
		assert.InDelta(t, p.X, got.X, 1e-9)
		assert.InDelta(t, p.Y, got.Y, 1e-9)
	}
}

func TestCoordinatesConverter_AreaAxes(t *testing.T) {
	c := newExactConverter()

	assert.Equal(t, CanvasPoint{X: 256, Y: 256}, c.AreaToCanvas(AreaPoint{0, 0}))
	// area +x points up the canvas, area +y points right
	assert.Equal(t, CanvasPoint{X: 256, Y: 0}, c.AreaToCanvas(AreaPoint{0.5, 0}))
	assert.Equal(t, CanvasPoint{X: 512, Y: 256}, c.AreaToCanvas(AreaPoint{0, 0.5}))
}

func TestCoordinatesConverter_VectorIgnoresCenter(t *testing.T) {
	c := newExactConverter()

	assert.Equal(t, Vec2{X: 0, Y: -512}, c.AreaVectorToCanvas(Vec2{X: 1, Y: 0}))
	assert.Equal(t, Vec2{X: 1, Y: 0}, c.CanvasVectorToArea(Vec2{X: 0, Y: -512}))
	assert.InDelta(t, 256.0, c.AreaVectorToCanvas(Vec2{X: 0.5, Y: 0}).Len(), 1e-12)
}

func TestCoordinatesConverter_VisualAreaBoundaryIsInclusive(t *testing.T) {
	c := newExactConverter()

	top := c.VisualAreaToCanvas(VisualAreaPoint{0.5, 0})
	assert.Equal(t, CanvasPoint{X: 256, Y: 0}, top)
	assert.True(t, c.CanvasPointIsInVisualArea(top))
	assert.False(t, c.CanvasPointIsInVisualArea(CanvasPoint{X: 256, Y: -1}))

	right := c.VisualAreaToCanvas(VisualAreaPoint{0, 0.5})
	assert.Equal(t, CanvasPoint{X: 384, Y: 256}, right)
	assert.True(t, c.CanvasPointIsInVisualArea(right))
	assert.False(t, c.CanvasPointIsInVisualArea(CanvasPoint{X: 385, Y: 256}))

	assert.True(t, c.AreaPointIsInVisualArea(AreaPoint{0.5, 0.25}))
	assert.False(t, c.AreaPointIsInVisualArea(AreaPoint{0.5, 0.26}))
}

func TestCoordinatesConverter_ClampCanvasPointInVisualArea(t *testing.T) {
	c := newExactConverter()

	clamped := c.ClampCanvasPointInVisualArea(CanvasPoint{X: 1000, Y: -1000})
	assert.Equal(t, CanvasPoint{X: 384, Y: 0}, clamped)
	assert.True(t, c.CanvasPointIsInVisualArea(clamped))

	inside := CanvasPoint{X: 300, Y: 200}
	assert.Equal(t, inside, c.ClampCanvasPointInVisualArea(inside))
}
