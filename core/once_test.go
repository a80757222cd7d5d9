package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestOnce(t *testing.T) {
	var o Once[string]
	_, ok := o.Get()
	assert.False(t, ok)
	assert.Panics(t, func() { o.MustGet() })

	o.Set("wrapper")
	assert.Equal(t, "wrapper", o.MustGet())
	assert.Panics(t, func() { o.Set("again") })
	assert.Equal(t, "wrapper", o.MustGet())
}

func TestRegistry_BindOnce(t *testing.T) {
	r := NewRegistry[*int]()
	v := 7
	r.Bind(donburi.Entity(1), &v)

	got, ok := r.Lookup(donburi.Entity(1))
	require.True(t, ok)
	assert.Same(t, &v, got)
	assert.Panics(t, func() { r.Bind(donburi.Entity(1), &v) })

	_, ok = r.Lookup(donburi.Entity(2))
	assert.False(t, ok)

	r.Unbind(donburi.Entity(1))
	assert.Equal(t, 0, r.Len())
	assert.NotPanics(t, func() { r.Bind(donburi.Entity(1), &v) })
}

func TestCollisionRegistry(t *testing.T) {
	r := NewCollisionRegistry()

	assert.True(t, r.Collides(GroupPlayerBullet, GroupEnemyBody))
	assert.True(t, r.Collides(GroupEnemyBody, GroupPlayerBullet))
	assert.True(t, r.Collides(GroupEnemyBullet, GroupPlayerBody))
	assert.False(t, r.Collides(GroupEnemyBullet, GroupEnemyBody))
	assert.False(t, r.Collides(GroupPlayerBullet, GroupPlayerBody))
	assert.False(t, r.Collides(GroupPlayerBullet, GroupEnemyBullet))

	assert.Equal(t, GroupEnemyBullet, r.BulletGroup(SideEnemy))
	assert.Equal(t, GroupPlayerBody, r.BodyGroup(SidePlayer))
	assert.Greater(t, r.BulletZIndex(SideEnemy), r.BulletZIndex(SidePlayer))
}
