package vmath

// Bezier is a cubic curve defined by four control points
// P0 is the start, P3 the end, P1/P2 shape the bend
type Bezier struct {
	P0, P1, P2, P3 Vec2
}

// At evaluates the curve at t, t is clamped to [0, 1]
func (b Bezier) At(t float64) Vec2 {
	t = Clamp(t, 0, 1)
	u := 1 - t
	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t
	return Vec2{
		X: w0*b.P0.X + w1*b.P1.X + w2*b.P2.X + w3*b.P3.X,
		Y: w0*b.P0.Y + w1*b.P1.Y + w2*b.P2.Y + w3*b.P3.Y,
	}
}

// End returns the final control point
func (b Bezier) End() Vec2 { return b.P3 }

// BezierThrough builds a curve from start to end that passes through mid at t=0.5
// bend offsets the inner control points in opposite directions, which curves the path
// without moving the midpoint: B(0.5) = (P0 + 3(P1+P2) + P3) / 8
func BezierThrough(start, mid, end, bend Vec2) Bezier {
	// P1 + P2 = (8*mid - start - end) / 3
	inner := mid.Scale(8).Sub(start).Sub(end).Scale(1.0 / 6.0)
	return Bezier{
		P0: start,
		P1: inner.Add(bend),
		P2: inner.Sub(bend),
		P3: end,
	}
}
