package vmath

import "math"

// Vec2 is a float64 2D vector used for positions and velocities
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) MagSq() float64       { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Mag() float64         { return math.Sqrt(v.MagSq()) }
func (v Vec2) Perpendicular() Vec2  { return Vec2{-v.Y, v.X} }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Mag() }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Normalize returns the unit vector, zero vector stays zero
func (v Vec2) Normalize() Vec2 {
	mag := v.Mag()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// ClampMagnitude rescales v to maxMag when longer, direction preserved
// Returns true if clamping occurred
func (v Vec2) ClampMagnitude(maxMag float64) (Vec2, bool) {
	magSq := v.MagSq()
	if maxMag <= 0 {
		return Vec2{}, magSq > 0
	}
	if magSq <= maxMag*maxMag {
		return v, false
	}
	return v.Scale(maxMag / math.Sqrt(magSq)), true
}
