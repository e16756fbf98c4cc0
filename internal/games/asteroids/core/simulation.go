// Package core implements the Asteroids simulation: moving bodies on a
// toroidal world, box-overlap collisions and asteroid fragmentation.
//
// The package is pure: it never touches the terminal, audio or clock.
// A driver calls Tick once per frame with the controls held for that frame
// and forwards the returned events to its collaborators.
package core

import "math/rand"

// Params holds every constant the simulation consumes. They are fixed for
// the lifetime of a Simulation.
type Params struct {
	World  Bounds
	Ship   ShipParams
	Bullet BulletParams
	Rocks  RockParams
}

// DefaultParams returns the classic tuning: an 800x600 world with five large
// rocks drifting in from the lower-left corner.
func DefaultParams() Params {
	return Params{
		World: Bounds{W: 800, H: 600},
		Ship: ShipParams{
			TurnAmount:   3,
			ThrustAmount: 0.25,
			Radius:       30,
			InitialAngle: 1,
		},
		Bullet: BulletParams{
			Radius: 30,
			Speed:  10,
			Life:   40,
		},
		Rocks: RockParams{
			InitialCount: 5,
			Large:        SizeClass{Radius: 15, Spin: 1, Points: 20},
			Medium:       SizeClass{Radius: 5, Spin: -2, Points: 50},
			Small:        SizeClass{Radius: 2, Spin: 5, Points: 100},
			LargeSpeed:   1.5,
			SpawnMaxX:    50,
			SpawnMaxY:    150,
			MaxHeading:   50,
			Scatter:      2,
		},
	}
}

// Status is the terminal state of a round.
type Status int

const (
	StatusRunning Status = iota
	StatusLost
	StatusWon
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round is over.
func (s Status) Terminal() bool {
	return s == StatusLost || s == StatusWon
}

// Controls is the set of commands held during one tick.
// Turning and thrust apply on every tick they are held; Fire and Restart
// only act on the tick they go from released to held.
type Controls struct {
	TurnLeft      bool
	TurnRight     bool
	Thrust        bool
	ReverseThrust bool
	Fire          bool
	Restart       bool
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Tick   uint64
	Status Status
	Lost   bool
	Won    bool
	Score  int
	Events []Event
}

// Simulation owns the ship and the body collections. It is not safe for
// concurrent use.
type Simulation struct {
	params Params
	rng    *rand.Rand

	ship        *Ship
	asteroids   []*Asteroid
	projectiles []*Projectile

	lost   bool
	won    bool
	score  int
	tick   uint64
	prev   Controls
	ready  bool
	events []Event
}

// NewSimulation creates a simulation. Reset must be called before Tick.
// A nil rng is replaced by one seeded with 1.
func NewSimulation(p Params, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Simulation{params: p, rng: rng}
}

// Reset starts a new round: a fresh ship at the world center, the initial
// population of large asteroids and no projectiles. Score is cleared.
// It returns the events emitted by the reset.
func (s *Simulation) Reset() []Event {
	s.ship = NewShip(s.params.Ship, s.params.World.Center())
	s.projectiles = nil
	s.asteroids = make([]*Asteroid, 0, s.params.Rocks.InitialCount)
	for i := 0; i < s.params.Rocks.InitialCount; i++ {
		s.asteroids = append(s.asteroids, NewLargeAsteroid(s.rng, s.params.Rocks))
	}
	s.lost = false
	s.won = false
	s.score = 0
	s.tick = 0
	s.ready = true
	return []Event{EventMusicStart}
}

// Tick advances the world by one step.
//
// Pipeline:
//  1. Apply controls to a live ship; a Fire edge spawns one projectile
//  2. Advance asteroids, projectiles and the ship
//  3. Prune dead asteroids and projectiles
//  4. Projectile × asteroid collisions fragment the asteroid
//  5. Ship × asteroid collisions destroy the ship only
//  6. Drop asteroids destroyed this tick, then evaluate Lost and Won
//  7. A Restart edge resets the world if the round was already over
//     before this tick
func (s *Simulation) Tick(c Controls) TickResult {
	if !s.ready {
		panic("asteroids: Tick called before Reset")
	}
	s.events = nil
	fireEdge := c.Fire && !s.prev.Fire
	restartEdge := c.Restart && !s.prev.Restart
	wasOver := s.Status().Terminal()
	s.prev = c
	s.tick++

	s.applyControls(c, fireEdge)
	s.advance()
	s.prune()
	s.collideProjectiles()
	s.collideShip()
	s.asteroids = filterAlive(s.asteroids)
	s.evaluate()

	if restartEdge && wasOver {
		s.events = append(s.events, EventMusicStop)
		s.events = append(s.events, s.Reset()...)
	}

	return TickResult{
		Tick:   s.tick,
		Status: s.Status(),
		Lost:   s.lost,
		Won:    s.won,
		Score:  s.score,
		Events: s.events,
	}
}

func (s *Simulation) applyControls(c Controls, fireEdge bool) {
	if !s.ship.Alive() {
		return
	}
	if c.TurnLeft {
		s.ship.TurnLeft()
	}
	if c.TurnRight {
		s.ship.TurnRight()
	}
	if c.Thrust {
		s.ship.Thrust()
	}
	if c.ReverseThrust {
		s.ship.ReverseThrust()
	}
	if fireEdge {
		s.projectiles = append(s.projectiles, s.ship.Fire(s.params.Bullet))
		s.events = append(s.events, EventFired)
	}
}

func (s *Simulation) advance() {
	world := s.params.World
	for _, a := range s.asteroids {
		a.Advance(world)
	}
	for _, p := range s.projectiles {
		p.Advance(world)
	}
	s.ship.Advance(world)
}

func (s *Simulation) prune() {
	s.asteroids = filterAlive(s.asteroids)
	s.projectiles = filterAlive(s.projectiles)
}

// filterAlive compacts items in place, keeping live bodies in order.
func filterAlive[T interface{ Alive() bool }](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.Alive() {
			kept = append(kept, it)
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

func (s *Simulation) collideProjectiles() {
	// Children are appended to s.asteroids; the scan only sees the rocks
	// present when it started.
	scan := s.asteroids[:len(s.asteroids):len(s.asteroids)]
	var born []*Asteroid
	for _, p := range s.projectiles {
		if !p.Alive() {
			continue
		}
		for _, a := range scan {
			if !a.Alive() {
				continue
			}
			if !p.Collides(&a.Body) {
				continue
			}
			p.Kill()
			s.score += s.params.Rocks.Class(a.Size()).Points
			born = append(born, a.Fragment(s.rng, s.params.Rocks)...)
			s.events = append(s.events, EventExplosion)
			break
		}
	}
	s.asteroids = append(s.asteroids, born...)
}

func (s *Simulation) collideShip() {
	if !s.ship.Alive() {
		return
	}
	for _, a := range s.asteroids {
		if !a.Alive() {
			continue
		}
		if s.ship.Collides(&a.Body) {
			s.ship.Kill()
			s.events = append(s.events, EventShipDestroyed, EventExplosion, EventMusicStop)
			return
		}
	}
}

// evaluate sets the terminal flags. Won needs an empty asteroid collection
// and a live ship, so Lost and Won are never both set.
func (s *Simulation) evaluate() {
	s.lost = !s.ship.Alive()
	s.won = len(s.asteroids) == 0 && s.ship.Alive()
}

// Status returns the state of the round. Lost wins over Won.
func (s *Simulation) Status() Status {
	switch {
	case s.lost:
		return StatusLost
	case s.won:
		return StatusWon
	default:
		return StatusRunning
	}
}

// Ship returns the current ship.
func (s *Simulation) Ship() *Ship {
	return s.ship
}

// Asteroids returns the asteroid collection, including bodies killed this
// tick that have not been pruned yet.
func (s *Simulation) Asteroids() []*Asteroid {
	return s.asteroids
}

// Projectiles returns the projectile collection, including bodies killed
// this tick that have not been pruned yet.
func (s *Simulation) Projectiles() []*Projectile {
	return s.projectiles
}

// Score returns points earned this round.
func (s *Simulation) Score() int {
	return s.score
}

// TickCount returns the number of ticks since the last reset.
func (s *Simulation) TickCount() uint64 {
	return s.tick
}
