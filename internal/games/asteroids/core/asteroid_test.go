package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeClassTable(t *testing.T) {
	p := DefaultParams().Rocks

	assert.Equal(t, 15.0, p.Class(SizeLarge).Radius)
	assert.Equal(t, 5.0, p.Class(SizeMedium).Radius)
	assert.Equal(t, 2.0, p.Class(SizeSmall).Radius)

	assert.Equal(t, []Size{SizeMedium, SizeMedium, SizeSmall}, ChildSizes(SizeLarge))
	assert.Equal(t, []Size{SizeSmall, SizeSmall}, ChildSizes(SizeMedium))
	assert.Empty(t, ChildSizes(SizeSmall))
}

func TestNewLargeAsteroidSpawnRange(t *testing.T) {
	p := DefaultParams().Rocks
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		a := NewLargeAsteroid(rng, p)
		require.Equal(t, SizeLarge, a.Size())
		assert.GreaterOrEqual(t, a.Pos.X, 1.0)
		assert.LessOrEqual(t, a.Pos.X, 50.0)
		assert.GreaterOrEqual(t, a.Pos.Y, 1.0)
		assert.LessOrEqual(t, a.Pos.Y, 150.0)
		assert.InDelta(t, 1.5, math.Hypot(a.Vel.X, a.Vel.Y), 1e-9)
		assert.Greater(t, a.Vel.X, 0.0, "heading in [1,50] degrees points right")
		assert.Greater(t, a.Vel.Y, 0.0)
	}
}

func TestAsteroidSpinIsCosmetic(t *testing.T) {
	p := DefaultParams().Rocks
	a := NewAsteroid(SizeSmall, V(10, 10), V(1, 0), p)

	a.Advance(Bounds{W: 800, H: 600})
	a.Advance(Bounds{W: 800, H: 600})

	assert.Equal(t, 10.0, a.Angle)
	assert.Equal(t, V(1, 0), a.Vel)
	assert.InDelta(t, 12, a.Pos.X, 1e-9)
}

func TestFragmentLarge(t *testing.T) {
	p := DefaultParams().Rocks
	rng := rand.New(rand.NewSource(5))
	parent := NewAsteroid(SizeLarge, V(100, 200), V(1.5, -0.5), p)

	children := parent.Fragment(rng, p)

	assert.False(t, parent.Alive())
	require.Len(t, children, 3)
	assert.Equal(t, SizeMedium, children[0].Size())
	assert.Equal(t, SizeMedium, children[1].Size())
	assert.Equal(t, SizeSmall, children[2].Size())

	signs := [][2]float64{{-1, +1}, {+1, -1}, {-1, +1}}
	for i, c := range children {
		assert.True(t, c.Alive())
		assert.Equal(t, parent.Pos, c.Pos, "child %d spawns at parent position", i)

		dx := c.Vel.X - parent.Vel.X
		dy := c.Vel.Y - parent.Vel.Y
		assert.GreaterOrEqual(t, dx*signs[i][0], 0.0, "child %d x offset sign", i)
		assert.GreaterOrEqual(t, dy*signs[i][1], 0.0, "child %d y offset sign", i)
		assert.LessOrEqual(t, math.Abs(dx), float64(p.Scatter))
		assert.LessOrEqual(t, math.Abs(dy), float64(p.Scatter))
		assert.Equal(t, p.Class(c.Size()).Radius, c.Radius())
	}
}

func TestFragmentMedium(t *testing.T) {
	p := DefaultParams().Rocks
	rng := rand.New(rand.NewSource(9))
	parent := NewAsteroid(SizeMedium, V(50, 50), V(0, 0), p)

	children := parent.Fragment(rng, p)

	require.Len(t, children, 2)
	for _, c := range children {
		assert.Equal(t, SizeSmall, c.Size())
		assert.Equal(t, V(50, 50), c.Pos)
	}
	assert.LessOrEqual(t, children[0].Vel.X, 0.0)
	assert.LessOrEqual(t, children[0].Vel.Y, 0.0)
	assert.GreaterOrEqual(t, children[1].Vel.X, 0.0)
	assert.GreaterOrEqual(t, children[1].Vel.Y, 0.0)
}

func TestFragmentSmall(t *testing.T) {
	p := DefaultParams().Rocks
	parent := NewAsteroid(SizeSmall, V(50, 50), V(0, 0), p)

	children := parent.Fragment(rand.New(rand.NewSource(1)), p)

	assert.Empty(t, children)
	assert.False(t, parent.Alive())
}

func TestFragmentDeadAsteroidPanics(t *testing.T) {
	p := DefaultParams().Rocks
	rng := rand.New(rand.NewSource(1))
	a := NewAsteroid(SizeMedium, V(50, 50), V(0, 0), p)
	a.Fragment(rng, p)

	assert.Panics(t, func() { a.Fragment(rng, p) })
}

func TestFragmentScatterIsBounded(t *testing.T) {
	p := DefaultParams().Rocks
	rng := rand.New(rand.NewSource(2))
	seen := map[float64]bool{}

	for i := 0; i < 300; i++ {
		parent := NewAsteroid(SizeLarge, V(0, 0), V(0, 0), p)
		for _, c := range parent.Fragment(rng, p) {
			seen[math.Abs(c.Vel.X)] = true
			seen[math.Abs(c.Vel.Y)] = true
		}
	}

	assert.Equal(t, map[float64]bool{0: true, 1: true, 2: true}, seen)
}

func TestSizeString(t *testing.T) {
	assert.Equal(t, "large", SizeLarge.String())
	assert.Equal(t, "medium", SizeMedium.String())
	assert.Equal(t, "small", SizeSmall.String())
}
