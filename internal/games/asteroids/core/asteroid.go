package core

import (
	"fmt"
	"math/rand"
)

// Size is an asteroid size class.
type Size int

const (
	SizeLarge Size = iota
	SizeMedium
	SizeSmall
)

// String returns a human-readable name for the size.
func (s Size) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "unknown"
	}
}

// SizeClass holds the constants of one size class.
type SizeClass struct {
	Radius float64
	Spin   float64 // Degrees added to Angle every tick, cosmetic only
	Points int     // Score awarded when destroyed by a projectile
}

// RockParams configures the asteroid family.
type RockParams struct {
	InitialCount int
	Large        SizeClass
	Medium       SizeClass
	Small        SizeClass

	LargeSpeed float64 // Speed of freshly spawned large asteroids
	SpawnMaxX  int     // Spawn X drawn from [1, SpawnMaxX]
	SpawnMaxY  int     // Spawn Y drawn from [1, SpawnMaxY]
	MaxHeading int     // Spawn heading in degrees drawn from [1, MaxHeading]
	Scatter    int     // Fragment velocity offset drawn from [0, Scatter] per axis
}

// Class returns the constants for a size.
func (p RockParams) Class(s Size) SizeClass {
	switch s {
	case SizeLarge:
		return p.Large
	case SizeMedium:
		return p.Medium
	default:
		return p.Small
	}
}

// fragmentRule describes one child: its size and the sign applied to the
// random velocity offset on each axis.
type fragmentRule struct {
	size   Size
	sx, sy float64
}

var fragmentRules = map[Size][]fragmentRule{
	SizeLarge: {
		{size: SizeMedium, sx: -1, sy: +1},
		{size: SizeMedium, sx: +1, sy: -1},
		{size: SizeSmall, sx: -1, sy: +1},
	},
	SizeMedium: {
		{size: SizeSmall, sx: -1, sy: -1},
		{size: SizeSmall, sx: +1, sy: +1},
	},
	SizeSmall: nil,
}

// ChildSizes returns the sizes produced when an asteroid of size s breaks.
func ChildSizes(s Size) []Size {
	rules := fragmentRules[s]
	out := make([]Size, len(rules))
	for i, r := range rules {
		out[i] = r.size
	}
	return out
}

// Asteroid is a rock of one size class.
type Asteroid struct {
	Body
	size Size
	spin float64
}

// NewAsteroid creates an asteroid of the given size at pos with velocity vel.
func NewAsteroid(size Size, pos, vel Vec2, p RockParams) *Asteroid {
	class := p.Class(size)
	a := &Asteroid{
		Body: newBody(KindAsteroid, pos, class.Radius),
		size: size,
		spin: class.Spin,
	}
	a.Vel = vel
	return a
}

// NewLargeAsteroid creates a large asteroid with a random spawn position and
// heading. Only the initial population is built this way.
func NewLargeAsteroid(rng *rand.Rand, p RockParams) *Asteroid {
	pos := Vec2{
		X: float64(randBetween(rng, 1, p.SpawnMaxX)),
		Y: float64(randBetween(rng, 1, p.SpawnMaxY)),
	}
	heading := float64(randBetween(rng, 1, p.MaxHeading))
	return NewAsteroid(SizeLarge, pos, Polar(heading, p.LargeSpeed), p)
}

// Size returns the size class.
func (a *Asteroid) Size() Size {
	return a.size
}

// Advance moves the asteroid and spins it.
func (a *Asteroid) Advance(bounds Bounds) {
	a.Body.Advance(bounds)
	a.Angle += a.spin
}

// Fragment destroys the asteroid and returns its children, placed at the
// parent's position with the parent's velocity plus a bounded random offset.
// The caller appends the children to its collection. Fragmenting a dead
// asteroid is a programming error.
func (a *Asteroid) Fragment(rng *rand.Rand, p RockParams) []*Asteroid {
	if !a.alive {
		panic(fmt.Sprintf("asteroids: fragment called on dead %s asteroid", a.size))
	}
	a.Kill()

	rules := fragmentRules[a.size]
	if len(rules) == 0 {
		return nil
	}
	children := make([]*Asteroid, 0, len(rules))
	for _, r := range rules {
		offset := Vec2{
			X: r.sx * float64(randBetween(rng, 0, p.Scatter)),
			Y: r.sy * float64(randBetween(rng, 0, p.Scatter)),
		}
		children = append(children, NewAsteroid(r.size, a.Pos, a.Vel.Add(offset), p))
	}
	return children
}

// randBetween returns an integer in [lo, hi], both inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
