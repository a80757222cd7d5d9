package stage

import (
	"errors"
	"fmt"

	"shooter-ebiten/core"
)

var (
	ErrUnknownEnemy    = errors.New("unknown enemy")
	ErrUnknownSquad    = errors.New("unknown squad")
	ErrUnknownStage    = errors.New("unknown stage")
	ErrUnknownMoveType = errors.New("unknown move type")
)

// Catalog indexes the stage authoring records by id.
type Catalog struct {
	Enemies map[string]core.EnemyData
	Squads  map[string]core.SquadData
	Stages  map[string]core.StageData
}

func NewCatalog(enemies []core.EnemyData, squads []core.SquadData, stages []core.StageData) *Catalog {
	c := &Catalog{
		Enemies: make(map[string]core.EnemyData, len(enemies)),
		Squads:  make(map[string]core.SquadData, len(squads)),
		Stages:  make(map[string]core.StageData, len(stages)),
	}
	for _, e := range enemies {
		c.Enemies[e.ID] = e
	}
	for _, s := range squads {
		c.Squads[s.ID] = s
	}
	for _, s := range stages {
		c.Stages[s.ID] = s
	}
	return c
}

func (c *Catalog) Enemy(id string) (core.EnemyData, error) {
	e, ok := c.Enemies[id]
	if !ok {
		return core.EnemyData{}, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
	}
	return e, nil
}

func (c *Catalog) Squad(id string) (core.SquadData, error) {
	s, ok := c.Squads[id]
	if !ok {
		return core.SquadData{}, fmt.Errorf("%w: %q", ErrUnknownSquad, id)
	}
	return s, nil
}

func (c *Catalog) Stage(id string) (core.StageData, error) {
	s, ok := c.Stages[id]
	if !ok {
		return core.StageData{}, fmt.Errorf("%w: %q", ErrUnknownStage, id)
	}
	return s, nil
}

// Validate resolves every reference so broken data fails before a run starts.
func (c *Catalog) Validate() error {
	var errs []error
	for _, s := range c.Squads {
		if _, err := c.Enemy(s.EnemyID); err != nil {
			errs = append(errs, fmt.Errorf("squad %q: %w", s.ID, err))
		}
		if _, err := NewActivatePositionGenerator(s.MoveType); err != nil {
			errs = append(errs, fmt.Errorf("squad %q: %w", s.ID, err))
		}
	}
	for _, st := range c.Stages {
		for i, e := range st.Entries {
			for _, id := range e.Candidates {
				if _, err := c.Squad(id); err != nil {
					errs = append(errs, fmt.Errorf("stage %q entry %d: %w", st.ID, i, err))
				}
			}
		}
	}
	return errors.Join(errs...)
}
