package stage

import (
	"fmt"
	"math"
	"math/rand"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/system"
	"shooter-ebiten/event"
)

// PlannedSquad is one squad of a stage run, resolved against the catalog.
type PlannedSquad struct {
	Squad          core.SquadData
	Enemy          core.EnemyData
	StartOffsetSec float64
	SpawnNum       int
	EnemyIsLeft    bool
	PlayerIsLeft   bool // logical player side when the squad starts
}

// SpawnNum is how many enemies fit in the squad's kill time, at least one.
func SpawnNum(squad core.SquadData, enemy core.EnemyData) int {
	if enemy.KillTime <= 0 {
		return 1
	}
	return max(1, int(math.Floor(squad.KillTime/enemy.KillTime)))
}

// Plan picks one candidate per stage entry with rng and lays the squads out in time.
// Each squad starts KillTime-OverTime seconds after the previous one.
func Plan(cat *Catalog, stageID string, rng *rand.Rand) ([]PlannedSquad, error) {
	st, err := cat.Stage(stageID)
	if err != nil {
		return nil, err
	}

	playerIsLeft := rng.Intn(2) == 0
	offset := 0.0
	plan := make([]PlannedSquad, 0, len(st.Entries))
	for i, entry := range st.Entries {
		if len(entry.Candidates) == 0 {
			return nil, fmt.Errorf("stage %q entry %d: no candidates: %w", stageID, i, ErrUnknownSquad)
		}
		squad, err := cat.Squad(entry.Candidates[rng.Intn(len(entry.Candidates))])
		if err != nil {
			return nil, fmt.Errorf("stage %q entry %d: %w", stageID, i, err)
		}
		enemy, err := cat.Enemy(squad.EnemyID)
		if err != nil {
			return nil, fmt.Errorf("squad %q: %w", squad.ID, err)
		}
		gen, err := NewActivatePositionGenerator(squad.MoveType)
		if err != nil {
			return nil, fmt.Errorf("squad %q: %w", squad.ID, err)
		}

		plan = append(plan, PlannedSquad{
			Squad:          squad,
			Enemy:          enemy,
			StartOffsetSec: offset,
			SpawnNum:       SpawnNum(squad, enemy),
			EnemyIsLeft:    playerIsLeft != squad.ActivateInOtherSideOfPlayer,
			PlayerIsLeft:   playerIsLeft,
		})
		playerIsLeft = gen.PlayerIsInLeftWhenEnemiesFinished(playerIsLeft)
		offset += squad.KillTime - squad.OverTime
	}
	return plan, nil
}

// EnemyFactory creates enemy characters around a mover the builder will start.
type EnemyFactory interface {
	NewEnemy(data core.EnemyData, mover *system.Mover) *system.Character
}

// Run is a built stage ready to be driven by its starter.
type Run struct {
	StageID  string
	Plan     []PlannedSquad
	Starter  *system.SquadBuilderStarter
	Builders []*system.SquadBuilder
	Squads   []*system.Squad
}

// Build plans the stage and creates one squad builder per planned squad.
// Unknown ids in the stage data are reported here, before any enemy exists.
func Build(ctx *system.SimContext, cat *Catalog, stageID string, rng *rand.Rand, factory EnemyFactory) (*Run, error) {
	plan, err := Plan(cat, stageID, rng)
	if err != nil {
		return nil, err
	}

	run := &Run{StageID: stageID, Plan: plan}
	entries := make([]system.StarterEntry, 0, len(plan))
	for i, p := range plan {
		gen, _ := NewActivatePositionGenerator(p.Squad.MoveType)
		schedule := gen.Generate(p.SpawnNum, p.Enemy.KillTime, p.Enemy.SizeInArea, p.Squad.KillTime, p.EnemyIsLeft)
		creator := StaticEnemyMoverCreator{
			MoveType:     p.Squad.MoveType,
			ActivateTime: p.Squad.ActivateTime,
			Speed:        p.Enemy.MoveSpeedInArea,
			StayTime:     p.Enemy.KillTime,
			IsLeftSide:   p.EnemyIsLeft,
		}
		enemy := p.Enemy
		squad := system.NewSquad(ctx, fmt.Sprintf("%s#%d", p.Squad.ID, i))
		builder := system.NewSquadBuilder(ctx, squad, schedule, p.Squad.ActivateTime, creator.Create,
			func(m *system.Mover) *system.Character { return factory.NewEnemy(enemy, m) })

		run.Squads = append(run.Squads, squad)
		run.Builders = append(run.Builders, builder)
		entries = append(entries, system.StarterEntry{StartOffsetSec: p.StartOffsetSec, Builder: builder})
	}
	run.Starter = system.NewSquadBuilderStarter(entries)
	run.Starter.Finished.Add(func(event.Signal) {
		ctx.Log.Debug().Str("stage", stageID).Msg("all squads spawned")
	})

	ctx.Log.Info().
		Str("stage", stageID).
		Int("squads", len(plan)).
		Float64("lastStartSec", run.Starter.Duration()).
		Msg("stage built")
	return run, nil
}

// Resolved reports whether every builder finished spawning and every squad finished.
func (r *Run) Resolved() bool {
	if !r.Starter.IsFinished() {
		return false
	}
	for _, s := range r.Squads {
		if !s.IsFinished() {
			return false
		}
	}
	return true
}
