package stage

import (
	"math/rand"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/system"
	"shooter-ebiten/event"
)

// SessionParams configures one play-through of a stage.
type SessionParams struct {
	StageID       string
	Seed          int64
	PlayerBullets int
	EnemyBullets  int
	BulletRadius  float64 // canvas units
	Player        PlayerParams
}

// Session drives a built stage and the player in a fixed tick order.
type Session struct {
	ctx     *system.SimContext
	params  SessionParams
	run     *Run
	player  *system.Character
	pools   []*system.BulletsPool
	enemies []*system.Character

	elapsedMs float64
	kills     int
	escapes   int
	reasons   []core.SquadFinishReason
}

// NewSession builds the stage with a generator seeded from params.Seed.
// The same catalog, stage and seed always produce the same run.
func NewSession(ctx *system.SimContext, cat *Catalog, params SessionParams) (*Session, error) {
	s := &Session{ctx: ctx, params: params}

	playerBullets := system.NewBulletsPool(ctx, core.SidePlayer, params.PlayerBullets, params.BulletRadius)
	enemyBullets := system.NewBulletsPool(ctx, core.SideEnemy, params.EnemyBullets, params.BulletRadius)
	s.pools = []*system.BulletsPool{playerBullets, enemyBullets}

	factory := NewFactory(ctx, enemyBullets, s.playerPos)
	s.player = factory.NewPlayer(params.Player, playerBullets)

	run, err := Build(ctx, cat, params.StageID, rand.New(rand.NewSource(params.Seed)), factory)
	if err != nil {
		return nil, err
	}
	s.run = run
	for _, b := range run.Builders {
		b.Spawned.Add(func(c *system.Character) { s.enemies = append(s.enemies, c) })
	}
	for _, sq := range run.Squads {
		sq.Finished.Add(func(r core.SquadFinishReason) { s.reasons = append(s.reasons, r) })
	}
	return s, nil
}

func (s *Session) playerPos() (core.AreaPoint, bool) {
	if s.player.Health().IsDead() {
		return core.AreaPoint{}, false
	}
	return s.player.Actor().PosInArea(), true
}

// Step advances the simulation by deltaMs: timers, squad spawning, characters,
// bullet motion, collisions, then removal of dead or escaped enemies.
// It does nothing once the session is over.
func (s *Session) Step(deltaMs float64) {
	if s.IsOver() {
		return
	}
	s.elapsedMs += deltaMs

	s.ctx.Timers.Update(deltaMs)
	s.run.Starter.Update(deltaMs)

	s.player.Update(deltaMs)
	for _, e := range s.enemies {
		e.Update(deltaMs)
	}

	system.UpdateBullets(deltaMs, s.pools...)
	system.ResolveCollisions(s.ctx)
	s.sweep()
}

func (s *Session) sweep() {
	alive := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.Finished() {
			alive = append(alive, e)
			continue
		}
		if e.Escaped() {
			s.escapes++
		} else {
			s.kills++
		}
		e.Destroy()
	}
	clear(s.enemies[len(alive):])
	s.enemies = alive
}

// MovePlayerTo places the player at a canvas point, clamped to the visual area.
func (s *Session) MovePlayerTo(p core.CanvasPoint) {
	if s.player.Health().IsDead() {
		return
	}
	conv := s.ctx.Converter
	s.player.Actor().MoveToPosInArea(conv.CanvasToArea(conv.ClampCanvasPointInVisualArea(p)))
}

// SetFiring starts or stops the player's weapon. Stopping lets the current pattern finish.
func (s *Session) SetFiring(on bool) {
	if on {
		s.player.StartFiring()
		return
	}
	s.player.StopFiring(false)
}

func (s *Session) IsCleared() bool  { return s.run.Resolved() }
func (s *Session) IsGameOver() bool { return s.player.Health().IsDead() }
func (s *Session) IsOver() bool     { return s.IsGameOver() || s.IsCleared() }

// Result summarizes the session so far.
func (s *Session) Result() event.StageResult {
	return event.StageResult{
		StageID:       s.params.StageID,
		Cleared:       s.IsCleared(),
		Kills:         s.kills,
		Escapes:       s.escapes,
		ElapsedMs:     s.elapsedMs,
		FinishReasons: append([]core.SquadFinishReason(nil), s.reasons...),
	}
}

// Outcome returns the event a scene should post once the session is over, or nil.
func (s *Session) Outcome() event.GameEvent {
	switch {
	case s.IsGameOver():
		return event.GameOverGameEvent{Result: s.Result()}
	case s.IsCleared():
		return event.StageClearedGameEvent{Result: s.Result()}
	}
	return nil
}

func (s *Session) Context() *system.SimContext  { return s.ctx }
func (s *Session) Run() *Run                    { return s.run }
func (s *Session) Player() *system.Character    { return s.player }
func (s *Session) Enemies() []*system.Character { return s.enemies }
func (s *Session) Pools() []*system.BulletsPool { return s.pools }
func (s *Session) ElapsedMs() float64           { return s.elapsedMs }
func (s *Session) Params() SessionParams        { return s.params }
