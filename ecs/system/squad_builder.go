package system

import (
	"github.com/rs/zerolog"

	"shooter-ebiten/core"
	"shooter-ebiten/event"
)

// Activation is one scheduled spawn: TimeSec after the builder starts, at Position.
type Activation struct {
	TimeSec  float64
	Position core.AreaPoint
}

// MoverCreator builds the mover for an enemy activating at pos.
type MoverCreator func(pos core.AreaPoint) *Mover

// EnemyCreator builds an enemy character around an unstarted mover.
type EnemyCreator func(mover *Mover) *Character

// SquadBuilder spawns the members of one squad following its activation schedule.
type SquadBuilder struct {
	ctx          *SimContext
	squad        *Squad
	schedule     []Activation
	activateTime float64
	createMover  MoverCreator
	createEnemy  EnemyCreator
	log          zerolog.Logger

	started   bool
	finished  bool
	elapsedMs float64
	next      int

	Spawned  *event.Dispatcher[*Character]
	Finished *event.Dispatcher[event.Signal]
}

// NewSquadBuilder takes schedule in ascending TimeSec order.
// Each spawned enemy starts firing activateTime seconds after it is created.
func NewSquadBuilder(ctx *SimContext, squad *Squad, schedule []Activation, activateTime float64, createMover MoverCreator, createEnemy EnemyCreator) *SquadBuilder {
	return &SquadBuilder{
		ctx:          ctx,
		squad:        squad,
		schedule:     schedule,
		activateTime: activateTime,
		createMover:  createMover,
		createEnemy:  createEnemy,
		log:          ctx.Log.With().Str("squad", squad.ID()).Logger(),
		Spawned:      event.NewDispatcher[*Character](),
		Finished:     event.NewDispatcher[event.Signal](),
	}
}

func (b *SquadBuilder) Start() {
	if b.started {
		return
	}
	b.started = true
	b.elapsedMs = 0
	b.log.Debug().Int("members", len(b.schedule)).Msg("squad builder started")
}

// Update is a no-op until Start.
func (b *SquadBuilder) Update(deltaMs float64) {
	if !b.started || b.finished {
		return
	}
	b.elapsedMs += deltaMs
	for b.next < len(b.schedule) && b.schedule[b.next].TimeSec*1000 <= b.elapsedMs {
		b.spawn(b.schedule[b.next])
		b.next++
	}
	if b.next >= len(b.schedule) {
		b.finished = true
		b.log.Debug().Float64("elapsedMs", b.elapsedMs).Msg("squad builder finished")
		b.Finished.Dispatch(event.Signal{})
		b.squad.NotifyFinishSpawning()
	}
}

func (b *SquadBuilder) spawn(a Activation) {
	mover := b.createMover(a.Position)
	enemy := b.createEnemy(mover)
	mover.Start(enemy.Actor())
	b.ctx.Timers.After(b.activateTime*1000, enemy.StartFiring)
	b.squad.Add(enemy)
	b.ctx.Metrics.EnemySpawned()
	b.Spawned.Dispatch(enemy)
}

func (b *SquadBuilder) Squad() *Squad     { return b.squad }
func (b *SquadBuilder) IsStarted() bool   { return b.started }
func (b *SquadBuilder) IsFinished() bool  { return b.finished }
func (b *SquadBuilder) SpawnedCount() int { return b.next }
