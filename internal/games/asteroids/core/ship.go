package core

// ShipParams configures the player ship.
type ShipParams struct {
	TurnAmount   float64 // Degrees per tick while turning
	ThrustAmount float64 // Velocity added per tick while thrusting
	Radius       float64
	InitialAngle float64
}

// Ship is the player body. There is no drag: velocity persists once imparted.
type Ship struct {
	Body
	turn   float64
	thrust float64
}

// NewShip creates a ship at the given position.
func NewShip(p ShipParams, at Vec2) *Ship {
	s := &Ship{
		Body:   newBody(KindShip, at, p.Radius),
		turn:   p.TurnAmount,
		thrust: p.ThrustAmount,
	}
	s.Angle = p.InitialAngle
	return s
}

// TurnLeft rotates counter-clockwise.
func (s *Ship) TurnLeft() {
	s.Angle += s.turn
}

// TurnRight rotates clockwise.
func (s *Ship) TurnRight() {
	s.Angle -= s.turn
}

// Thrust accelerates along the current heading.
func (s *Ship) Thrust() {
	s.Vel = s.Vel.Add(Heading(s.Angle).Scale(s.thrust))
}

// ReverseThrust accelerates against the current heading.
func (s *Ship) ReverseThrust() {
	s.Vel = s.Vel.Sub(Heading(s.Angle).Scale(s.thrust))
}

// Fire creates a projectile leaving the ship's nose.
func (s *Ship) Fire(p BulletParams) *Projectile {
	return NewProjectile(s.Angle, s.Pos, p)
}
