package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shooter-ebiten/core"
	"shooter-ebiten/core/mocks"
	"shooter-ebiten/ecs/component"
	"shooter-ebiten/ecs/entity"
	"shooter-ebiten/event"
)

func TestMover_UpdateBeforeStartPanics(t *testing.T) {
	assert.Panics(t, func() { NewStaticEnemyMover(NewStraightMoveRoute(core.AreaPoint{}, 1, 1, 0)).Update(16) })
	assert.Panics(t, func() { NewNullMover().Update(16) })
}

func TestMover_StartMovesOwnerToInitialPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	owner := mocks.NewMockActor(ctrl)

	route := NewStraightMoveRoute(core.AreaPoint{X: 0.1}, 1, 0.5, 0)
	owner.EXPECT().MoveToPosInArea(route.InitialPosition()).Times(1)

	m := NewStaticEnemyMover(route)
	m.Start(owner)
	assert.True(t, m.IsStarted())
	assert.Zero(t, m.PlayedTimeMs())
	assert.False(t, m.OwnerIsInVisualArea())
}

func TestNullMover_NeverMovesOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	owner := mocks.NewMockActor(ctrl)

	m := NewNullMover()
	m.Start(owner)
	m.Update(100)
	m.Update(100)
	assert.Equal(t, 200.0, m.PlayedTimeMs())
}

func TestStaticEnemyMover_AreaTransitions(t *testing.T) {
	ctx := newTestContext()
	actor := entity.NewActor(ctx.World, ctx.Converter, component.EnemyTag)

	// starts at y=0.5, crosses the visual band y in [-0.25, 0.25] between 500ms and 1500ms
	m := NewStaticEnemyMover(NewStraightMoveRoute(core.AreaPoint{}, 1, 0.5, 90))
	entered, exited := 0, 0
	m.EnteredArea.Add(func(event.Signal) { entered++ })
	m.ExitedArea.Add(func(event.Signal) { exited++ })

	m.Start(actor)
	assert.InDelta(t, 0.5, actor.PosInArea().Y, 1e-9)

	advance := func(ms float64) {
		for range int(ms / 100) {
			m.Update(100)
		}
	}
	advance(400)
	assert.False(t, m.OwnerIsInVisualArea())
	assert.Zero(t, entered)

	advance(200)
	require.True(t, m.OwnerIsInVisualArea())
	assert.Equal(t, 1, entered)
	assert.Zero(t, exited)

	advance(800)
	assert.True(t, m.OwnerIsInVisualArea())

	advance(200)
	assert.False(t, m.OwnerIsInVisualArea())
	assert.Equal(t, 1, exited)

	advance(2000)
	assert.Equal(t, 1, entered)
	assert.Equal(t, 1, exited)
	assert.InDelta(t, 0.5-0.5*3.6, actor.PosInArea().Y, 1e-9)
}

func TestStaticEnemyMover_RestartClearsLatches(t *testing.T) {
	ctx := newTestContext()
	actor := entity.NewActor(ctx.World, ctx.Converter)

	m := NewStaticEnemyMover(NewStraightMoveRoute(core.AreaPoint{}, 1, 0.5, 90))
	entered := 0
	m.EnteredArea.Add(func(event.Signal) { entered++ })

	m.Start(actor)
	m.Update(1000)
	m.Start(actor)
	assert.Zero(t, m.PlayedTimeMs())
	m.Update(1000)
	assert.Equal(t, 2, entered)
}
