package core

import "github.com/hajimehoshi/ebiten/v2"

//go:generate go tool mockgen -destination=./mocks/core_mock.go -package=mocks . Actor,PatternPlayer,Firer

// Actor is the positioning capability of a rendered entity.
// The simulation only moves it and reads it back; drawing happens elsewhere.
type Actor interface {
	MoveToPosInArea(p AreaPoint)
	PosInArea() AreaPoint
	Converter() *CoordinatesConverter
	SetCollisionGroup(g CollisionGroup)
}

// PatternPlayer is the external bullet-pattern evaluator driven by a Weapon.
type PatternPlayer interface {
	Start()
	Tick()
	IsRunning() bool
}

// FireData is one fire instruction issued by a pattern player.
// Transform is in area space and decomposes into position, rotation and scale.
// Params must contain "speed" in area units per second.
type FireData struct {
	Transform ebiten.GeoM
	Params    map[string]float64
}

// Firer is the firing capability pattern players call into.
type Firer interface {
	Fire(data FireData)
	// PosInArea is the firing point patterns anchor their transforms on.
	PosInArea() AreaPoint
}
