package stage

import (
	"fmt"
	"math"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/system"
)

// Layout constants in area units. The default visual area spans y in [-0.375, 0.375].
const (
	sideEnterX      = 0.3
	sideEnterInnerY = 0.15
	sideEnterOuterY = 0.3

	topEnterX     = 0.35
	topEnterBandY = 0.3

	topWideEnterX     = 0.3
	topWideEnterDropX = 0.1
	topWideEnterHalfY = 0.35
)

// ActivatePositionGenerator turns squad parameters into an activation schedule.
// The set of kinds is closed; see core.MoveType.
type ActivatePositionGenerator struct {
	kind core.MoveType
}

func NewActivatePositionGenerator(kind core.MoveType) (ActivatePositionGenerator, error) {
	switch kind {
	case core.MoveSideEnter, core.MoveTopEnter, core.MoveTopWideEnter:
		return ActivatePositionGenerator{kind: kind}, nil
	}
	return ActivatePositionGenerator{}, fmt.Errorf("%w: %q", ErrUnknownMoveType, kind)
}

func (g ActivatePositionGenerator) Kind() core.MoveType { return g.kind }

// sideSign is -1 for the canvas left half (area -y) and +1 for the right.
func sideSign(isLeftSide bool) float64 {
	if isLeftSide {
		return -1
	}
	return 1
}

// spawnInterval spreads spawnNum spawns so the last one leaves enemyKillTime before squadKillTime ends.
func spawnInterval(spawnNum int, enemyKillTime, squadKillTime float64) float64 {
	if spawnNum <= 1 {
		return 0
	}
	return math.Max(0, squadKillTime-enemyKillTime) / float64(spawnNum-1)
}

// Generate returns spawnNum activations in spawn order.
func (g ActivatePositionGenerator) Generate(spawnNum int, enemyKillTime, enemySize, squadKillTime float64, isLeftSide bool) []system.Activation {
	if spawnNum < 1 {
		return nil
	}
	interval := spawnInterval(spawnNum, enemyKillTime, squadKillTime)
	sign := sideSign(isLeftSide)
	out := make([]system.Activation, spawnNum)

	switch g.kind {
	case core.MoveSideEnter:
		for i := range out {
			y := sideEnterOuterY
			if spawnNum > 1 {
				y -= (sideEnterOuterY - sideEnterInnerY) * float64(i) / float64(spawnNum-1)
			}
			out[i] = system.Activation{
				TimeSec:  interval * float64(i),
				Position: core.AreaPoint{X: sideEnterX, Y: sign * y},
			}
		}

	case core.MoveTopEnter:
		width := 2 * topEnterBandY
		slots := 1
		if enemySize > 0 {
			slots = max(1, int(width/enemySize))
		}
		slots = min(slots, spawnNum)
		rows := (spawnNum + slots - 1) / slots
		step := width / float64(slots)
		for i := range out {
			row, col := i/slots, i%slots
			y := -topEnterBandY + step*(float64(col)+0.5)
			out[i] = system.Activation{
				TimeSec:  interval * float64(i),
				Position: core.AreaPoint{X: topEnterX - enemySize*float64(rows-1-row), Y: sign * y},
			}
		}

	case core.MoveTopWideEnter:
		for i := range out {
			f := 0.5
			if spawnNum > 1 {
				f = float64(i) / float64(spawnNum-1)
			}
			out[i] = system.Activation{
				TimeSec: interval * float64(i),
				Position: core.AreaPoint{
					X: topWideEnterX - topWideEnterDropX*f,
					Y: sign * (topWideEnterHalfY - 2*topWideEnterHalfY*f),
				},
			}
		}
	}
	return out
}

// PlayerIsInLeftWhenEnemiesFinished predicts the player's logical side once the squad resolves.
// Side entries sweep across the field and push the player to the other half.
func (g ActivatePositionGenerator) PlayerIsInLeftWhenEnemiesFinished(playerIsLeft bool) bool {
	if g.kind == core.MoveSideEnter {
		return !playerIsLeft
	}
	return playerIsLeft
}
