package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shooter-ebiten/core"
	"shooter-ebiten/core/mocks"
	"shooter-ebiten/event"
)

type builderFixture struct {
	ctx      *SimContext
	builder  *SquadBuilder
	spawned  []*Character
	finished int
}

func newBuilderFixture(t *testing.T, schedule []Activation, weapon func() *Weapon) *builderFixture {
	t.Helper()
	f := &builderFixture{ctx: newTestContext()}
	squad := NewSquad(f.ctx, "s1")
	createMover := func(pos core.AreaPoint) *Mover {
		return NewStaticEnemyMover(NewStraightMoveRoute(pos, 1, 0.2, 0))
	}
	createEnemy := func(m *Mover) *Character {
		var w *Weapon
		if weapon != nil {
			w = weapon()
		}
		return newTestEnemy(f.ctx, m, 1, w)
	}
	f.builder = NewSquadBuilder(f.ctx, squad, schedule, 1, createMover, createEnemy)
	f.builder.Spawned.Add(func(c *Character) { f.spawned = append(f.spawned, c) })
	f.builder.Finished.Add(func(event.Signal) { f.finished++ })
	return f
}

func TestSquadBuilder_Exhaustion(t *testing.T) {
	f := newBuilderFixture(t, []Activation{
		{TimeSec: 0, Position: core.AreaPoint{X: 0.1}},
		{TimeSec: 0.5, Position: core.AreaPoint{X: 0.2}},
	}, nil)

	f.builder.Start()
	f.builder.Update(500)
	assert.Len(t, f.spawned, 2)
	assert.Equal(t, 1, f.finished)
	assert.False(t, f.builder.Squad().IsSquadBuilding())

	f.builder.Update(500)
	f.builder.Update(500)
	assert.Len(t, f.spawned, 2)
	assert.Equal(t, 1, f.finished)
}

func TestSquadBuilder_SpawnsInScheduleOrder(t *testing.T) {
	f := newBuilderFixture(t, []Activation{
		{TimeSec: 0, Position: core.AreaPoint{X: 0.1}},
		{TimeSec: 0.25, Position: core.AreaPoint{X: 0.2}},
		{TimeSec: 1, Position: core.AreaPoint{X: 0.3}},
	}, nil)

	f.builder.Start()
	f.builder.Update(0)
	require.Len(t, f.spawned, 1)
	f.builder.Update(249)
	assert.Len(t, f.spawned, 1)
	f.builder.Update(1)
	assert.Len(t, f.spawned, 2)
	assert.Zero(t, f.finished)
	f.builder.Update(750)
	assert.Len(t, f.spawned, 3)
	assert.Equal(t, 1, f.finished)

	// movers are started at the route's initial position
	first := f.spawned[0]
	assert.True(t, first.Mover().IsStarted())
	assert.Equal(t, f.builder.Squad().Members(), f.spawned)
}

func TestSquadBuilder_UpdateBeforeStartIsNoop(t *testing.T) {
	f := newBuilderFixture(t, []Activation{{TimeSec: 0}}, nil)
	assert.NotPanics(t, func() { f.builder.Update(1000) })
	assert.Empty(t, f.spawned)
	assert.Zero(t, f.finished)
}

func TestSquadBuilder_WeaponStartsAfterActivateTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPatternPlayer(ctrl)
	starts := 0
	player.EXPECT().Start().Do(func() { starts++ }).AnyTimes()
	player.EXPECT().IsRunning().Return(true).AnyTimes()
	player.EXPECT().Tick().AnyTimes()

	f := newBuilderFixture(t, []Activation{{TimeSec: 0}}, func() *Weapon { return NewWeapon(player) })
	f.builder.Start()
	f.builder.Update(0)
	require.Len(t, f.spawned, 1)

	f.ctx.Timers.Update(999)
	assert.Zero(t, starts)
	f.ctx.Timers.Update(1)
	assert.Equal(t, 1, starts)
	assert.True(t, f.spawned[0].Weapon().IsFiring())
}

func TestSquadBuilder_DeadEnemyDoesNotStartFiring(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPatternPlayer(ctrl)
	player.EXPECT().Start().Times(0)

	f := newBuilderFixture(t, []Activation{{TimeSec: 0}}, func() *Weapon { return NewWeapon(player) })
	f.builder.Start()
	f.builder.Update(0)
	f.spawned[0].Kill()
	f.ctx.Timers.Update(2000)
	assert.False(t, f.spawned[0].Weapon().IsFiring())
}
