package core

import "github.com/hajimehoshi/ebiten/v2"

// --- Enums and Constants ---

type Side int
type MemberStatus int
type SquadFinishReason string
type MoveType string

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

const (
	StatusLiving MemberStatus = iota
	StatusDied
	StatusEscaped
)

func (s MemberStatus) String() string {
	switch s {
	case StatusLiving:
		return "living"
	case StatusDied:
		return "died"
	case StatusEscaped:
		return "escaped"
	}
	return "unknown"
}

const (
	FinishAllMemberDied          SquadFinishReason = "allMemberDied"
	FinishAllMemberDiedOrEscaped SquadFinishReason = "allMemberDiedOrEscaped"
)

const (
	MoveSideEnter    MoveType = "sideEnter"
	MoveTopEnter     MoveType = "topEnter"
	MoveTopWideEnter MoveType = "topWideEnter"
)

// FrameDurationMs is the fixed quantum pattern players are ticked with: ceil(1000/TPS).
const FrameDurationMs = (1000 + ebiten.DefaultTPS - 1) / ebiten.DefaultTPS

// BulletRecycleDelayMs is how long a bullet may stay outside the visual area before it returns to its pool.
const BulletRecycleDelayMs = 200

// --- Stage authoring records ---

// TextureMeta describes how the renderer should draw an enemy. The core only carries it.
type TextureMeta struct {
	Name  string
	Color string
}

type EnemyData struct {
	ID              string
	KillTime        float64 // seconds the player is expected to need per enemy
	SizeInArea      float64
	MoveSpeedInArea float64
	Health          float64
	Texture         TextureMeta
	Shot            ShotData
}

// PatternKind names a bullet pattern an enemy fires with.
type PatternKind string

const (
	PatternStream PatternKind = "stream"
	PatternAimed  PatternKind = "aimed"
	PatternRadial PatternKind = "radial"
)

type ShotData struct {
	Pattern        PatternKind
	Speed          float64 // area units per second
	IntervalFrames int
	Ways           int
	Damage         float64
}

type SquadData struct {
	ID                          string
	EnemyID                     string
	MoveType                    MoveType
	OverTime                    float64 // seconds the next squad overlaps this one
	KillTime                    float64 // seconds allotted to the whole squad
	ActivateTime                float64 // seconds from spawn until the enemy reaches its activation point and opens fire
	ActivateInOtherSideOfPlayer bool
}

// StageEntry lists candidate squad ids; one is picked with the stage's seeded generator.
type StageEntry struct {
	Candidates []string
}

type StageData struct {
	ID      string
	Entries []StageEntry
}
