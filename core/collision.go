package core

// CollisionGroup tags a body for the broad-phase filter.
type CollisionGroup int

const (
	GroupNone CollisionGroup = iota
	GroupPlayerBody
	GroupPlayerBullet
	GroupEnemyBody
	GroupEnemyBullet
)

// CollisionRegistry is created once at startup and handed to every component that tags bodies.
type CollisionRegistry struct {
	pairs   map[[2]CollisionGroup]bool
	bulletZ map[Side]int
}

func NewCollisionRegistry() *CollisionRegistry {
	r := &CollisionRegistry{
		pairs:   make(map[[2]CollisionGroup]bool),
		bulletZ: map[Side]int{
			SidePlayer: 10,
			SideEnemy:  20,
		},
	}
	r.allow(GroupPlayerBullet, GroupEnemyBody)
	r.allow(GroupEnemyBullet, GroupPlayerBody)
	return r
}

func (r *CollisionRegistry) allow(a, b CollisionGroup) {
	r.pairs[[2]CollisionGroup{a, b}] = true
	r.pairs[[2]CollisionGroup{b, a}] = true
}

// Collides reports whether bodies of group a and b may hit each other.
func (r *CollisionRegistry) Collides(a, b CollisionGroup) bool {
	return r.pairs[[2]CollisionGroup{a, b}]
}

func (r *CollisionRegistry) BodyGroup(s Side) CollisionGroup {
	if s == SidePlayer {
		return GroupPlayerBody
	}
	return GroupEnemyBody
}

func (r *CollisionRegistry) BulletGroup(s Side) CollisionGroup {
	if s == SidePlayer {
		return GroupPlayerBullet
	}
	return GroupEnemyBullet
}

// BulletZIndex keeps enemy bullets drawn above player bullets.
func (r *CollisionRegistry) BulletZIndex(s Side) int {
	return r.bulletZ[s]
}
