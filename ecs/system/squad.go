package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"shooter-ebiten/core"
	"shooter-ebiten/event"
)

type squadMember struct {
	status core.MemberStatus
	died   *event.Listener[event.Signal]
	exited *event.Listener[event.Signal]
}

// Squad tracks a group of enemies until every member has died or escaped.
type Squad struct {
	id       string
	members  []*Character
	status   map[*Character]*squadMember
	building bool
	finished bool
	metrics  *Metrics
	log      zerolog.Logger

	Finished *event.Dispatcher[core.SquadFinishReason]
}

func NewSquad(ctx *SimContext, id string) *Squad {
	return &Squad{
		id:       id,
		status:   make(map[*Character]*squadMember),
		building: true,
		metrics:  ctx.Metrics,
		log:      ctx.Log.With().Str("squad", id).Logger(),
		Finished: event.NewDispatcher[core.SquadFinishReason](),
	}
}

// Add registers member as living. The member's mover must already be attached.
func (s *Squad) Add(member *Character) {
	if member.Mover() == nil {
		panic(fmt.Sprintf("squad %s: member has no mover", s.id))
	}
	if _, ok := s.status[member]; ok {
		panic(fmt.Sprintf("squad %s: member added twice", s.id))
	}
	m := &squadMember{status: core.StatusLiving}
	s.members = append(s.members, member)
	s.status[member] = m

	m.died = member.Health().Died.Add(func(event.Signal) {
		s.transition(member, core.StatusDied)
	})
	m.exited = member.Mover().ExitedArea.Add(func(event.Signal) {
		s.transition(member, core.StatusEscaped)
	})
	// Listeners stay until the member leaves the world.
	member.Destroyed.Add(func(*Character) {
		m.died.Remove()
		m.exited.Remove()
	})
}

func (s *Squad) transition(member *Character, to core.MemberStatus) {
	m := s.status[member]
	if m.status != core.StatusLiving {
		panic(fmt.Sprintf("squad %s: member already %s, cannot become %s", s.id, m.status, to))
	}
	m.status = to
	s.checkFinished()
}

// NotifyFinishSpawning marks the member list complete.
func (s *Squad) NotifyFinishSpawning() {
	s.building = false
	s.checkFinished()
}

func (s *Squad) checkFinished() {
	if s.building || s.finished {
		return
	}
	allDied := true
	for _, member := range s.members {
		switch s.status[member].status {
		case core.StatusLiving:
			return
		case core.StatusEscaped:
			allDied = false
		}
	}
	s.finished = true
	reason := core.FinishAllMemberDiedOrEscaped
	if allDied {
		reason = core.FinishAllMemberDied
	}
	s.log.Debug().Str("reason", string(reason)).Int("members", len(s.members)).Msg("squad finished")
	s.metrics.SquadFinished(reason)
	s.Finished.Dispatch(reason)
}

func (s *Squad) StatusOf(member *Character) (core.MemberStatus, bool) {
	m, ok := s.status[member]
	if !ok {
		return 0, false
	}
	return m.status, true
}

// Count returns how many members are in the given status.
func (s *Squad) Count(status core.MemberStatus) int {
	n := 0
	for _, m := range s.status {
		if m.status == status {
			n++
		}
	}
	return n
}

func (s *Squad) ID() string            { return s.id }
func (s *Squad) Members() []*Character { return s.members }
func (s *Squad) IsSquadBuilding() bool { return s.building }
func (s *Squad) IsFinished() bool      { return s.finished }
