package stage

import (
	"math"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/system"
)

// Phase tuning of the top entry route, relative to the enemy's move speed.
const (
	topEnterEnterSpeedRate = 4
	topEnterBaseSpeedRate  = 0.15
	topEnterExitSpeedRate  = 2
	topEnterEnterShare     = 0.6 // share of activateTime spent at entry speed
	topEnterExitInterp     = 0.6 // seconds
)

// StaticEnemyMoverCreator maps a squad's move type to routes for its members.
type StaticEnemyMoverCreator struct {
	MoveType     core.MoveType
	ActivateTime float64 // seconds
	Speed        float64 // area units per second
	// StayTime is how long a top entry cruises at its activation point, in seconds.
	StayTime   float64
	IsLeftSide bool
}

func (c StaticEnemyMoverCreator) Route(pos core.AreaPoint) system.MoveRoute {
	sign := sideSign(c.IsLeftSide)
	switch c.MoveType {
	case core.MoveSideEnter:
		// enters from its own side and sweeps across
		return system.NewStraightMoveRoute(pos, c.ActivateTime, c.Speed, sign*90)
	case core.MoveTopWideEnter:
		return system.NewStraightMoveRoute(pos, c.ActivateTime, c.Speed, 180)
	default:
		// phase directions are headings rotated by pi: 0 moves towards area -x
		// leaves towards its own side
		exitDir := 3 * math.Pi / 2
		if sign < 0 {
			exitDir = math.Pi / 2
		}
		return system.NewBasicMoveRoute(system.BasicMoveRouteParams{
			ActivePosInArea: pos,
			ActivateTime:    c.ActivateTime,
			Enter: system.MovePhase{
				Direction: 0,
				Speed:     c.Speed * topEnterEnterSpeedRate,
				Duration:  c.ActivateTime * topEnterEnterShare,
			},
			Base: system.MovePhase{
				Direction: 0,
				Speed:     c.Speed * topEnterBaseSpeedRate,
				Duration:  c.StayTime,
			},
			Exit: system.MovePhase{
				Direction: exitDir,
				Speed:     c.Speed * topEnterExitSpeedRate,
			},
			ExitInterpolateDuration: topEnterExitInterp,
		})
	}
}

// Create satisfies system.MoverCreator.
func (c StaticEnemyMoverCreator) Create(pos core.AreaPoint) *system.Mover {
	return system.NewStaticEnemyMover(c.Route(pos))
}
