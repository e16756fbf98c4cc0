package core

import (
	"fmt"
	"math"
)

// Kind identifies what a body is, for rendering and debugging.
type Kind int

const (
	KindShip Kind = iota
	KindProjectile
	KindAsteroid
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindAsteroid:
		return "asteroid"
	default:
		return "unknown"
	}
}

// Body is the state shared by every moving object in the world.
// Ship, Projectile and Asteroid embed it and add their own rules.
type Body struct {
	Pos   Vec2    // Center position
	Vel   Vec2    // Displacement per tick
	Angle float64 // Orientation in degrees, unbounded

	radius float64
	alive  bool
	kind   Kind
}

// newBody creates a live body. A non-positive radius is a programming error.
func newBody(kind Kind, pos Vec2, radius float64) Body {
	if !(radius > 0) || math.IsInf(radius, 0) {
		panic(fmt.Sprintf("asteroids: %s radius must be positive, got %v", kind, radius))
	}
	return Body{
		Pos:    pos,
		radius: radius,
		alive:  true,
		kind:   kind,
	}
}

// Advance moves the body one tick: the previous position is wrapped first,
// then velocity is applied. The result is wrapped again so the position
// observed between ticks always lies inside the world.
func (b *Body) Advance(bounds Bounds) {
	b.Pos = bounds.Wrap(b.Pos)
	b.Pos = b.Pos.Add(b.Vel)
	b.Pos = bounds.Wrap(b.Pos)
}

// Alive reports whether the body is still in play.
func (b *Body) Alive() bool {
	return b.alive
}

// Kill takes the body out of play. There is no way back.
func (b *Body) Kill() {
	b.alive = false
}

// Radius returns the collision radius.
func (b *Body) Radius() float64 {
	return b.radius
}

// Kind returns what the body is.
func (b *Body) Kind() Kind {
	return b.kind
}

// Collides reports whether two bodies overlap using the sum of their radii
// as the half-size of the box test.
func (b *Body) Collides(o *Body) bool {
	return BoxOverlap(b.Pos, o.Pos, b.radius+o.radius)
}
