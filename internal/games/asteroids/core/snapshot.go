package core

// ShipView is the render-facing state of the ship.
type ShipView struct {
	Pos   Vec2
	Angle float64
	Alive bool
}

// AsteroidView is the render-facing state of one asteroid.
type AsteroidView struct {
	Pos   Vec2
	Angle float64
	Size  Size
}

// ProjectileView is the render-facing state of one projectile.
type ProjectileView struct {
	Pos   Vec2
	Angle float64
}

// Snapshot is a read-only copy of the world for renderers and tests.
// Only live asteroids and projectiles are included, in collection order.
type Snapshot struct {
	Tick        uint64
	World       Bounds
	Ship        ShipView
	Asteroids   []AsteroidView
	Projectiles []ProjectileView
	Status      Status
	Lost        bool
	Won         bool
	Score       int
}

// Snapshot returns a copy of the current world state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   s.tick,
		World:  s.params.World,
		Status: s.Status(),
		Lost:   s.lost,
		Won:    s.won,
		Score:  s.score,
	}
	if s.ship != nil {
		snap.Ship = ShipView{Pos: s.ship.Pos, Angle: s.ship.Angle, Alive: s.ship.Alive()}
	}
	snap.Asteroids = make([]AsteroidView, 0, len(s.asteroids))
	for _, a := range s.asteroids {
		if a.Alive() {
			snap.Asteroids = append(snap.Asteroids, AsteroidView{Pos: a.Pos, Angle: a.Angle, Size: a.Size()})
		}
	}
	snap.Projectiles = make([]ProjectileView, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		if p.Alive() {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{Pos: p.Pos, Angle: p.Angle})
		}
	}
	return snap
}
