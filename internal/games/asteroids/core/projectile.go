package core

// SpriteAngleOffset is added to the ship angle when a projectile is created,
// so the laser artwork lines up with the ship heading.
const SpriteAngleOffset = 90.0

// BulletParams configures projectiles.
type BulletParams struct {
	Radius float64
	Speed  float64
	Life   int // Ticks before the projectile expires
}

// Projectile is a short-lived body fired from the ship.
type Projectile struct {
	Body
	life int
}

// NewProjectile creates a projectile at the ship's position and gives it
// its one-time velocity impulse along the ship heading.
func NewProjectile(shipAngle float64, at Vec2, p BulletParams) *Projectile {
	pr := &Projectile{
		Body: newBody(KindProjectile, at, p.Radius),
		life: p.Life,
	}
	pr.Angle = shipAngle + SpriteAngleOffset
	pr.fire(p.Speed)
	return pr
}

// fire applies the launch impulse. It is never recomputed afterwards.
func (p *Projectile) fire(speed float64) {
	p.Vel = p.Vel.Add(Heading(p.Angle - SpriteAngleOffset).Scale(speed))
}

// Advance moves the projectile and burns one tick of life.
func (p *Projectile) Advance(bounds Bounds) {
	p.Body.Advance(bounds)
	p.life--
	if p.life <= 0 {
		p.Kill()
	}
}

// Life returns the remaining ticks.
func (p *Projectile) Life() int {
	return p.life
}
