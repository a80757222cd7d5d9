package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"shooter-ebiten/core"
)

func assertPointInDelta(t *testing.T, want, got core.AreaPoint) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestStraightMoveRoute_ReconstructsActivePosition(t *testing.T) {
	active := core.AreaPoint{X: 0.2, Y: -0.1}
	for _, activateTime := range []float64{0, 0.5, 1, 3.25} {
		for _, angle := range []float64{0, 45, 90, 180, 270, 333} {
			r := NewStraightMoveRoute(active, activateTime, 0.4, angle)
			assertPointInDelta(t, active, r.PositionInArea(activateTime*1000))
		}
	}
}

func TestStraightMoveRoute_Direction(t *testing.T) {
	// 90 degrees heads towards area -y
	r := NewStraightMoveRoute(core.AreaPoint{}, 1, 0.5, 90)
	assertPointInDelta(t, core.AreaPoint{X: 0, Y: 0.5}, r.InitialPosition())
	assertPointInDelta(t, core.AreaPoint{X: 0, Y: -0.5}, r.PositionInArea(2000))

	r = NewStraightMoveRoute(core.AreaPoint{}, 2, 0.25, 0)
	assertPointInDelta(t, core.AreaPoint{X: -0.5, Y: 0}, r.InitialPosition())
}

func newTestBasicRoute() MoveRoute {
	return NewBasicMoveRoute(BasicMoveRouteParams{
		ActivePosInArea:         core.AreaPoint{X: 0.3, Y: 0.1},
		ActivateTime:            1.5,
		Enter:                   MovePhase{Direction: 0, Speed: 0.6, Duration: 1},
		Base:                    MovePhase{Direction: 0, Speed: 0.05, Duration: 2},
		Exit:                    MovePhase{Direction: math.Pi / 2, Speed: 0.5, Duration: 1},
		ExitInterpolateDuration: 0.5,
	})
}

func TestBasicMoveRoute_PassesActivePosition(t *testing.T) {
	r := newTestBasicRoute()
	assertPointInDelta(t, core.AreaPoint{X: 0.3, Y: 0.1}, r.PositionInArea(1500))
}

func TestBasicMoveRoute_ContinuousAtMilestones(t *testing.T) {
	r := newTestBasicRoute()
	const eps = 1e-6
	for _, ms := range []float64{1000, 1500, 3500, 4000} {
		before := r.PositionInArea(ms - eps)
		after := r.PositionInArea(ms)
		assert.InDelta(t, before.X, after.X, 1e-6, "x at %v", ms)
		assert.InDelta(t, before.Y, after.Y, 1e-6, "y at %v", ms)
	}
}

func TestBasicMoveRoute_Phases(t *testing.T) {
	r := newTestBasicRoute()
	vEnter := core.Unit(-math.Pi).Scale(0.6)
	vBase := core.Unit(-math.Pi).Scale(0.05)

	// initial = active - vEnter*1 - (vEnter+vBase)/2*0.5
	back := vEnter.Add(vEnter.Add(vBase).Scale(0.25))
	initial := core.AreaPoint(core.Vec2{X: 0.3, Y: 0.1}.Sub(back))
	assertPointInDelta(t, initial, r.InitialPosition())
	assertPointInDelta(t, initial, r.PositionInArea(0))

	half := core.AreaPoint(initial.Vec().Add(vEnter.Scale(0.5)))
	assertPointInDelta(t, half, r.PositionInArea(500))

	// cruise
	cruise := core.AreaPoint(core.Vec2{X: 0.3, Y: 0.1}.Add(vBase.Scale(1)))
	assertPointInDelta(t, cruise, r.PositionInArea(2500))

	// quadratic from v0 to v1: x0 + v0*t + a*t^2/2
	enteredPos := initial.Vec().Add(vEnter)
	a := vBase.Sub(vEnter).Scale(1 / 0.5)
	mid := core.AreaPoint(enteredPos.Add(vEnter.Scale(0.25)).Add(a.Scale(0.25 * 0.25 / 2)))
	assertPointInDelta(t, mid, r.PositionInArea(1250))
}

func TestBasicMoveRoute_ZeroDurations(t *testing.T) {
	r := NewBasicMoveRoute(BasicMoveRouteParams{
		ActivePosInArea: core.AreaPoint{X: 0.1, Y: 0.2},
		ActivateTime:    0,
		Enter:           MovePhase{Direction: 1, Speed: 0.3, Duration: 0},
		Base:            MovePhase{Direction: 2, Speed: 0.1, Duration: 0},
		Exit:            MovePhase{Direction: math.Pi, Speed: 0.4, Duration: 1},
	})
	assertPointInDelta(t, core.AreaPoint{X: 0.1, Y: 0.2}, r.InitialPosition())
	for _, ms := range []float64{0, 1, 1000} {
		p := r.PositionInArea(ms)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "NaN at %v", ms)
	}
	// only the exit leg remains: heading pi moves along +x
	assertPointInDelta(t, core.AreaPoint{X: 0.5, Y: 0.2}, r.PositionInArea(1000))
}

func TestBasicMoveRoute_EnterLongerThanActivateTime(t *testing.T) {
	r := NewBasicMoveRoute(BasicMoveRouteParams{
		ActivePosInArea: core.AreaPoint{},
		ActivateTime:    0.5,
		Enter:           MovePhase{Direction: 0, Speed: 1, Duration: 2},
		Base:            MovePhase{Direction: 0, Speed: 0, Duration: 1},
	})
	assertPointInDelta(t, core.AreaPoint{X: 0.5, Y: 0}, r.InitialPosition())
	assertPointInDelta(t, core.AreaPoint{}, r.PositionInArea(500))
	assertPointInDelta(t, core.AreaPoint{}, r.PositionInArea(1200))
}
