package core

import "math"

// Vec2 is a continuous 2D vector used for both positions and velocities.
// World coordinates are y-up: positive Y points towards the top of the screen.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Bounds is the size of the toroidal world.
type Bounds struct {
	W, H float64
}

// Center returns the middle of the world.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W / 2, Y: b.H / 2}
}

// Wrap maps p back into [0,W)×[0,H), independently per axis.
// Leaving one edge re-enters from the opposite edge; nothing is clamped.
func (b Bounds) Wrap(p Vec2) Vec2 {
	if b.Contains(p) {
		return p
	}
	return Vec2{X: wrapAxis(p.X, b.W), Y: wrapAxis(p.Y, b.H)}
}

// Contains reports whether p lies inside [0,W)×[0,H).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

func wrapAxis(v, bound float64) float64 {
	if bound <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	v = math.Mod(v, bound)
	if v < 0 {
		v += bound
	}
	// -tiny + bound rounds up to bound.
	if v >= bound {
		v = 0
	}
	return v
}

// Heading returns the unit vector for an orientation in degrees where 0°
// points up and angles grow counter-clockwise: (-sin a, cos a).
func Heading(deg float64) Vec2 {
	r := deg * math.Pi / 180
	return Vec2{X: -math.Sin(r), Y: math.Cos(r)}
}

// Polar returns a vector of the given magnitude along a standard math angle
// (0° points right): (cos a, sin a)·mag.
func Polar(deg, mag float64) Vec2 {
	r := deg * math.Pi / 180
	return Vec2{X: math.Cos(r) * mag, Y: math.Sin(r) * mag}
}

// BoxOverlap is the collision test used for every pair of bodies: the
// centers overlap when they are closer than reach on both axes. This is a
// square test with half-size reach, not a circular distance check.
func BoxOverlap(a, b Vec2, reach float64) bool {
	return math.Abs(a.X-b.X) < reach && math.Abs(a.Y-b.Y) < reach
}
