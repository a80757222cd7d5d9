package system

import (
	"math"
	"sort"

	"shooter-ebiten/event"
)

// StarterEntry starts Builder StartOffsetSec seconds after the starter's first update.
type StarterEntry struct {
	StartOffsetSec float64
	Builder        *SquadBuilder
}

// SquadBuilderStarter sequences squad builders and reports when all of them finished.
// Finished counts builders that finished spawning, not squads that resolved;
// callers that need resolution listen to each Squad.Finished.
type SquadBuilderStarter struct {
	entries       []StarterEntry
	elapsedMs     float64
	next          int
	finishedCount int
	finished      bool

	Finished *event.Dispatcher[event.Signal]
}

// NewSquadBuilderStarter sorts entries by offset and shifts offsets so the earliest is zero.
func NewSquadBuilderStarter(entries []StarterEntry) *SquadBuilderStarter {
	sorted := make([]StarterEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartOffsetSec < sorted[j].StartOffsetSec
	})
	if len(sorted) > 0 {
		earliest := sorted[0].StartOffsetSec
		for i := range sorted {
			sorted[i].StartOffsetSec -= earliest
		}
	}

	s := &SquadBuilderStarter{
		entries:  sorted,
		Finished: event.NewDispatcher[event.Signal](),
	}
	for _, e := range sorted {
		e.Builder.Finished.Add(func(event.Signal) { s.builderFinished() })
	}
	return s
}

func (s *SquadBuilderStarter) builderFinished() {
	s.finishedCount++
	s.checkFinished()
}

func (s *SquadBuilderStarter) checkFinished() {
	if s.finished || s.finishedCount < len(s.entries) {
		return
	}
	s.finished = true
	s.Finished.Dispatch(event.Signal{})
}

func (s *SquadBuilderStarter) Update(deltaMs float64) {
	s.elapsedMs += deltaMs
	for s.next < len(s.entries) && s.entries[s.next].StartOffsetSec*1000 <= s.elapsedMs {
		s.entries[s.next].Builder.Start()
		s.next++
	}
	for _, e := range s.entries {
		e.Builder.Update(deltaMs)
	}
	s.checkFinished()
}

// Entries returns the normalized schedule.
func (s *SquadBuilderStarter) Entries() []StarterEntry { return s.entries }

// Duration is the latest normalized start offset in seconds.
func (s *SquadBuilderStarter) Duration() float64 {
	d := 0.0
	for _, e := range s.entries {
		d = math.Max(d, e.StartOffsetSec)
	}
	return d
}

func (s *SquadBuilderStarter) IsFinished() bool { return s.finished }
