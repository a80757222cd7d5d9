package system

import (
	"math"

	"shooter-ebiten/core"
)

type routeKind int

const (
	routeStraight routeKind = iota
	routeBasic
)

// MoveRoute is a closed set of analytic trajectories: time since mover start -> area position.
// Values are immutable after construction.
type MoveRoute struct {
	kind     routeKind
	straight straightRoute
	basic    basicRoute
}

// InitialPosition is where the owner is placed on Start.
func (r MoveRoute) InitialPosition() core.AreaPoint {
	switch r.kind {
	case routeStraight:
		return r.straight.initial
	case routeBasic:
		return r.basic.initial
	}
	panic("route: unknown kind")
}

// PositionInArea evaluates the route tMs milliseconds after start.
func (r MoveRoute) PositionInArea(tMs float64) core.AreaPoint {
	t := tMs / 1000
	switch r.kind {
	case routeStraight:
		return r.straight.at(t)
	case routeBasic:
		return r.basic.at(t)
	}
	panic("route: unknown kind")
}

type straightRoute struct {
	velocity core.Vec2
	initial  core.AreaPoint
}

// NewStraightMoveRoute builds a constant velocity route passing activePos at activateTime seconds.
// angleDeg is measured clockwise in area space; velocity = speed * unit(-angle).
func NewStraightMoveRoute(activePos core.AreaPoint, activateTime, speed, angleDeg float64) MoveRoute {
	v := core.Unit(-core.DegToRad(angleDeg)).Scale(speed)
	return MoveRoute{
		kind: routeStraight,
		straight: straightRoute{
			velocity: v,
			initial:  core.AreaPoint(activePos.Vec().Sub(v.Scale(activateTime))),
		},
	}
}

func (s straightRoute) at(t float64) core.AreaPoint {
	return core.AreaPoint(s.initial.Vec().Add(s.velocity.Scale(t)))
}

// MovePhase is one constant velocity leg of a BasicMoveRoute.
type MovePhase struct {
	Direction float64 // radians, area heading
	Speed     float64 // area units per second
	Duration  float64 // seconds
}

func (p MovePhase) velocity() core.Vec2 {
	return core.Unit(p.Direction - math.Pi).Scale(p.Speed)
}

type BasicMoveRouteParams struct {
	ActivePosInArea         core.AreaPoint
	ActivateTime            float64
	Enter                   MovePhase
	Base                    MovePhase
	Exit                    MovePhase
	ExitInterpolateDuration float64
}

type basicRoute struct {
	vEnter, vBase, vExit core.Vec2

	enteredTime        float64
	enteringInterpTime float64
	baseMovedTime      float64
	exitInterpTime     float64

	initial      core.AreaPoint
	active       core.AreaPoint
	enteredPos   core.AreaPoint
	exitStartPos core.AreaPoint
	exitedPos    core.AreaPoint
}

// NewBasicMoveRoute builds the five phase route: enter, interpolate to base, cruise,
// interpolate to exit, exit. The enter phase is clipped to activateTime.
func NewBasicMoveRoute(p BasicMoveRouteParams) MoveRoute {
	r := basicRoute{
		vEnter: p.Enter.velocity(),
		vBase:  p.Base.velocity(),
		vExit:  p.Exit.velocity(),
		active: p.ActivePosInArea,
	}
	r.enteredTime = math.Max(0, math.Min(p.Enter.Duration, p.ActivateTime))
	r.enteringInterpTime = math.Max(p.ActivateTime, r.enteredTime)
	r.baseMovedTime = r.enteringInterpTime + math.Max(0, p.Base.Duration)
	exitInterp := math.Max(0, p.ExitInterpolateDuration)
	r.exitInterpTime = r.baseMovedTime + exitInterp

	enterInterp := r.enteringInterpTime - r.enteredTime
	back := r.vEnter.Scale(r.enteredTime).Add(averageDisplacement(r.vEnter, r.vBase, enterInterp))
	r.initial = core.AreaPoint(r.active.Vec().Sub(back))
	r.enteredPos = core.AreaPoint(r.initial.Vec().Add(r.vEnter.Scale(r.enteredTime)))
	r.exitStartPos = core.AreaPoint(r.active.Vec().Add(r.vBase.Scale(r.baseMovedTime - r.enteringInterpTime)))
	r.exitedPos = core.AreaPoint(r.exitStartPos.Vec().Add(averageDisplacement(r.vBase, r.vExit, exitInterp)))
	return MoveRoute{kind: routeBasic, basic: r}
}

// averageDisplacement is the distance covered while accelerating uniformly from v0 to v1 over d.
func averageDisplacement(v0, v1 core.Vec2, d float64) core.Vec2 {
	return v0.Add(v1).Scale(d / 2)
}

// accelerate integrates x0 + v0*t + a*t^2/2 with a = (v1-v0)/d. Callers guarantee d > 0.
func accelerate(x0 core.AreaPoint, v0, v1 core.Vec2, d, t float64) core.AreaPoint {
	a := v1.Sub(v0).Scale(1 / d)
	return core.AreaPoint(x0.Vec().Add(v0.Scale(t)).Add(a.Scale(t * t / 2)))
}

func (r basicRoute) at(t float64) core.AreaPoint {
	switch {
	case t < r.enteredTime:
		return core.AreaPoint(r.initial.Vec().Add(r.vEnter.Scale(t)))
	case t < r.enteringInterpTime:
		d := r.enteringInterpTime - r.enteredTime
		return accelerate(r.enteredPos, r.vEnter, r.vBase, d, t-r.enteredTime)
	case t < r.baseMovedTime:
		return core.AreaPoint(r.active.Vec().Add(r.vBase.Scale(t - r.enteringInterpTime)))
	case t < r.exitInterpTime:
		d := r.exitInterpTime - r.baseMovedTime
		return accelerate(r.exitStartPos, r.vBase, r.vExit, d, t-r.baseMovedTime)
	default:
		return core.AreaPoint(r.exitedPos.Vec().Add(r.vExit.Scale(t - r.exitInterpTime)))
	}
}
