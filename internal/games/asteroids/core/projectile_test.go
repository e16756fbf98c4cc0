package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileLaunch(t *testing.T) {
	p := NewProjectile(90, V(10, 10), BulletParams{Radius: 1, Speed: 4, Life: 3})

	assert.Equal(t, 180.0, p.Angle)
	assert.InDelta(t, -4, p.Vel.X, 1e-9)
	assert.InDelta(t, 0, p.Vel.Y, 1e-9)
	assert.Equal(t, 3, p.Life())
}

func TestProjectileExpires(t *testing.T) {
	world := Bounds{W: 800, H: 600}
	params := DefaultParams().Bullet
	p := NewProjectile(0, V(400, 300), params)

	for i := 0; i < params.Life-1; i++ {
		p.Advance(world)
		require.True(t, p.Alive(), "tick %d", i+1)
	}
	assert.Equal(t, 1, p.Life())

	p.Advance(world)
	assert.False(t, p.Alive())
	assert.Equal(t, 0, p.Life())
}

func TestProjectileVelocityIsFixed(t *testing.T) {
	world := Bounds{W: 800, H: 600}
	p := NewProjectile(45, V(400, 300), DefaultParams().Bullet)
	vel := p.Vel

	p.Angle = 300
	p.Advance(world)
	p.Advance(world)
	assert.Equal(t, vel, p.Vel)
}
