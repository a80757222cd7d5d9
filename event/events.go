package event

import "shooter-ebiten/core"

// GameEvent is the marker interface for events a scene hands to the scene manager.
type GameEvent interface {
	isGameEvent()
}

// StageResult summarizes a finished stage for the result screen.
type StageResult struct {
	StageID       string
	Cleared       bool
	Kills         int
	Escapes       int
	ElapsedMs     float64
	FinishReasons []core.SquadFinishReason
}

// StageClearedGameEvent is posted when every squad of the stage resolved.
type StageClearedGameEvent struct {
	Result StageResult
}

func (e StageClearedGameEvent) isGameEvent() {}

// GameOverGameEvent is posted when the player died.
type GameOverGameEvent struct {
	Result StageResult
}

func (e GameOverGameEvent) isGameEvent() {}

// RetryRequestedGameEvent is posted by the result screen.
type RetryRequestedGameEvent struct{}

func (e RetryRequestedGameEvent) isGameEvent() {}
