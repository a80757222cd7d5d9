package system

import (
	"shooter-ebiten/core"
	"shooter-ebiten/event"
)

type moverKind int

const (
	moverNull moverKind = iota
	moverStaticEnemy
)

// Mover drives an actor along a MoveRoute and reports visual-area transitions.
type Mover struct {
	kind  moverKind
	route MoveRoute

	owner        core.Actor
	started      bool
	playedTimeMs float64

	ownerIsInVisualArea bool
	enteredDispatched   bool
	exitedDispatched    bool

	EnteredArea *event.Dispatcher[event.Signal]
	ExitedArea  *event.Dispatcher[event.Signal]
}

// NewNullMover returns a mover that never moves its owner. Used for the player.
func NewNullMover() *Mover {
	return newMover(moverNull, MoveRoute{})
}

func NewStaticEnemyMover(route MoveRoute) *Mover {
	return newMover(moverStaticEnemy, route)
}

func newMover(kind moverKind, route MoveRoute) *Mover {
	return &Mover{
		kind:        kind,
		route:       route,
		EnteredArea: event.NewDispatcher[event.Signal](),
		ExitedArea:  event.NewDispatcher[event.Signal](),
	}
}

func (m *Mover) Start(owner core.Actor) {
	m.owner = owner
	m.started = true
	m.playedTimeMs = 0
	m.ownerIsInVisualArea = false
	m.enteredDispatched = false
	m.exitedDispatched = false
	if m.kind == moverStaticEnemy {
		owner.MoveToPosInArea(m.route.InitialPosition())
	}
}

func (m *Mover) Update(deltaMs float64) {
	if !m.started {
		panic("mover: Update called before Start")
	}
	m.playedTimeMs += deltaMs
	if m.kind == moverNull {
		return
	}

	pos := m.route.PositionInArea(m.playedTimeMs)
	m.owner.MoveToPosInArea(pos)

	wasIn := m.ownerIsInVisualArea
	m.ownerIsInVisualArea = m.owner.Converter().AreaPointIsInVisualArea(pos)
	switch {
	case !wasIn && m.ownerIsInVisualArea && !m.enteredDispatched:
		m.enteredDispatched = true
		m.EnteredArea.Dispatch(event.Signal{})
	case wasIn && !m.ownerIsInVisualArea && !m.exitedDispatched:
		m.exitedDispatched = true
		m.ExitedArea.Dispatch(event.Signal{})
	}
}

func (m *Mover) IsStarted() bool           { return m.started }
func (m *Mover) PlayedTimeMs() float64     { return m.playedTimeMs }
func (m *Mover) OwnerIsInVisualArea() bool { return m.ownerIsInVisualArea }
func (m *Mover) Route() MoveRoute          { return m.route }
