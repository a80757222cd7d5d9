package component

import (
	"github.com/yohamta/donburi"
)

// --- Component types ---
var (
	BodyComponent       = donburi.NewComponentType[Body]()
	AppearanceComponent = donburi.NewComponentType[Appearance]()

	// --- Tags ---
	PlayerTag = donburi.NewComponentType[struct{}]()
	EnemyTag  = donburi.NewComponentType[struct{}]()
	BulletTag = donburi.NewComponentType[struct{}]()
)
