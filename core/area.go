package core

// Area is an axis-aligned rectangle in viewport cell coordinates
// Float precision so entity positions stay sub-cell
type Area struct {
	X, Y float64 // Top-left corner
	W, H float64 // Dimensions, zero for an unset area
}

// Empty reports whether the area has no usable interior
func (a Area) Empty() bool {
	return a.W <= 0 || a.H <= 0
}

// Right returns the x coordinate of the right edge
func (a Area) Right() float64 { return a.X + a.W }

// Bottom returns the y coordinate of the bottom edge
func (a Area) Bottom() float64 { return a.Y + a.H }

// Center returns the midpoint of the area
func (a Area) Center() (x, y float64) {
	return a.X + a.W/2, a.Y + a.H/2
}

// Contains checks if point is within area, edges inclusive
func (a Area) Contains(x, y float64) bool {
	return x >= a.X && x <= a.Right() && y >= a.Y && y <= a.Bottom()
}

// Inset shrinks the area by margin on every side
// Collapses onto the center line when the margin exceeds half a dimension
func (a Area) Inset(margin float64) Area {
	out := Area{X: a.X + margin, Y: a.Y + margin, W: a.W - 2*margin, H: a.H - 2*margin}
	if out.W < 0 {
		out.X = a.X + a.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = a.Y + a.H/2
		out.H = 0
	}
	return out
}
