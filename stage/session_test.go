package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/system"
	"shooter-ebiten/event"
)

const tickMs = 1000.0 / 60

func newTestSession(t *testing.T, maxHealth float64) *Session {
	t.Helper()
	s, err := NewSession(newStageContext(), testCatalog(), SessionParams{
		StageID:       "stage1",
		Seed:          3,
		PlayerBullets: 16,
		EnemyBullets:  128,
		BulletRadius:  3,
		Player: PlayerParams{
			MaxHealth:  maxHealth,
			ShotSpeed:  1,
			ShotDamage: 1,
			SizeInArea: 0.05,
			Start:      core.AreaPoint{X: -0.4},
		},
	})
	require.NoError(t, err)
	return s
}

func TestSession_EnemiesEscapeWhenIgnored(t *testing.T) {
	s := newTestSession(t, 1e9)

	total := 0
	for _, p := range s.Run().Plan {
		total += p.SpawnNum
	}

	for i := 0; i < 60*60 && !s.IsOver(); i++ {
		s.Step(tickMs)
	}

	require.True(t, s.IsCleared())
	assert.False(t, s.IsGameOver())
	assert.Empty(t, s.Enemies())

	res := s.Result()
	assert.True(t, res.Cleared)
	assert.Zero(t, res.Kills)
	assert.Equal(t, total, res.Escapes)
	require.Len(t, res.FinishReasons, len(s.Run().Squads))
	for _, r := range res.FinishReasons {
		assert.Equal(t, core.FinishAllMemberDiedOrEscaped, r)
	}
	assert.IsType(t, event.StageClearedGameEvent{}, s.Outcome())
}

func TestSession_KilledEnemiesAreRemoved(t *testing.T) {
	s := newTestSession(t, 1e9)

	for len(s.Enemies()) == 0 {
		s.Step(tickMs)
	}
	victims := append(s.Enemies()[:0:0], s.Enemies()...)
	for _, e := range victims {
		e.Kill()
	}
	s.Step(tickMs)

	for _, e := range victims {
		assert.True(t, e.Removed())
	}
	assert.Equal(t, len(victims), s.Result().Kills)
}

func TestSession_GameOverStopsStepping(t *testing.T) {
	s := newTestSession(t, 1)
	assert.Nil(t, s.Outcome())

	s.Step(tickMs)
	s.Player().Kill()
	elapsed := s.ElapsedMs()

	s.Step(tickMs)
	assert.True(t, s.IsGameOver())
	assert.Equal(t, elapsed, s.ElapsedMs())

	out, ok := s.Outcome().(event.GameOverGameEvent)
	require.True(t, ok)
	assert.False(t, out.Result.Cleared)
	assert.Equal(t, "stage1", out.Result.StageID)
}

func TestSession_MovePlayerToClampsToVisualArea(t *testing.T) {
	s := newTestSession(t, 5)

	s.MovePlayerTo(core.CanvasPoint{X: -100, Y: 900})
	pos := s.Player().Actor().Body().Position
	assert.InDelta(t, 0, pos.X, 1e-9)
	assert.InDelta(t, 640, pos.Y, 1e-9)

	s.Player().Kill()
	s.MovePlayerTo(core.CanvasPoint{X: 240, Y: 320})
	assert.InDelta(t, 0, s.Player().Actor().Body().Position.X, 1e-9)
}

func TestSession_SameSeedSamePlan(t *testing.T) {
	a := newTestSession(t, 5)
	b := newTestSession(t, 5)
	assert.Equal(t, a.Run().Plan, b.Run().Plan)
}

func TestSession_PlayerFiring(t *testing.T) {
	s := newTestSession(t, 1e9)
	playerPool := s.Pools()[0]
	before := playerPool.Len()

	s.SetFiring(true)
	s.Step(float64(core.FrameDurationMs))
	assert.Less(t, playerPool.Len(), before)

	s.SetFiring(false)
	assert.False(t, s.Player().Weapon().IsRequested())
}

func TestSession_EscapedEnemyUnderBulletCountsAsEscape(t *testing.T) {
	s := newTestSession(t, 1e9)
	for len(s.Enemies()) == 0 {
		s.Step(tickMs)
	}
	enemy := s.Enemies()[0]
	enemy.Mover().ExitedArea.Dispatch(event.Signal{})

	b, ok := s.Pools()[0].Pop()
	require.True(t, ok)
	b.Init(system.BulletInit{
		Damage:   1,
		Position: enemy.Actor().Body().Position,
		Side:     core.SidePlayer,
		Group:    core.GroupPlayerBullet,
	})
	assert.Zero(t, system.ResolveCollisions(s.Context()))
	assert.False(t, enemy.Health().IsDead())
	b.Kill()

	kills := s.Result().Kills
	require.NotPanics(t, func() { s.Step(tickMs) })
	assert.True(t, enemy.Removed())
	assert.Equal(t, kills, s.Result().Kills)
	assert.GreaterOrEqual(t, s.Result().Escapes, 1)
}
