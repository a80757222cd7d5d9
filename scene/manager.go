package scene

import (
	"github.com/noppikinatta/bamenn"

	"shooter-ebiten/event"
)

// Manager owns the bamenn sequence and switches between the stage and result scenes.
type Manager struct {
	Sequence  *bamenn.Sequence
	resources *Resources

	stageID string
	seed    int64
}

// NewManager starts on the configured stage.
func NewManager(res *Resources) (*Manager, error) {
	m := &Manager{
		resources: res,
		stageID:   res.Config.StageID,
		seed:      res.Config.Seed,
	}

	initialScene, err := m.newStageScene()
	if err != nil {
		return nil, err
	}
	m.Sequence = bamenn.NewSequence(initialScene)
	return m, nil
}

func (m *Manager) newStageScene() (Scene, error) {
	return NewStageScene(m.resources, m, m.stageID, m.seed)
}

func (m *Manager) newResultScene(title string, result event.StageResult) (Scene, error) {
	return NewResultScene(m.resources, m, title, result), nil
}

// GoToStage restarts the current stage with the same seed.
func (m *Manager) GoToStage() {
	scene, err := m.newStageScene()
	if err != nil {
		m.resources.Log.Error().Err(err).Str("stage", m.stageID).Msg("failed to switch to stage scene")
		return
	}
	m.Sequence.Switch(scene)
}

func (m *Manager) GoToResult(title string, result event.StageResult) {
	scene, err := m.newResultScene(title, result)
	if err != nil {
		m.resources.Log.Error().Err(err).Msg("failed to switch to result scene")
		return
	}
	m.Sequence.Switch(scene)
}

// Handle reacts to an event posted by the current scene.
func (m *Manager) Handle(ev event.GameEvent) {
	switch e := ev.(type) {
	case event.StageClearedGameEvent:
		m.resources.Log.Info().
			Str("stage", e.Result.StageID).
			Int("kills", e.Result.Kills).
			Int("escapes", e.Result.Escapes).
			Msg("stage cleared")
		m.GoToResult("STAGE CLEAR", e.Result)
	case event.GameOverGameEvent:
		m.resources.Log.Info().
			Str("stage", e.Result.StageID).
			Float64("elapsedMs", e.Result.ElapsedMs).
			Msg("game over")
		m.GoToResult("GAME OVER", e.Result)
	case event.RetryRequestedGameEvent:
		m.GoToStage()
	default:
		m.resources.Log.Warn().Type("event", ev).Msg("unhandled game event")
	}
}
