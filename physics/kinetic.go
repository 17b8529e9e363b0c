package physics

import (
	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/vmath"
)

// Integrate performs one frame of motion: p = p + v
func Integrate(k *core.Kinetic) {
	k.Pos = k.Pos.Add(k.Vel)
}

// SetImpulse overrides velocity
func SetImpulse(k *core.Kinetic, vel vmath.Vec2) {
	k.Vel = vel
}

// reflectAxis clamps one coordinate to [lo, hi] and flips its velocity on contact
// Velocity is forced to point back inward so an entity resting on the wall does not stick
func reflectAxis(pos, vel *float64, lo, hi float64) bool {
	if hi <= lo {
		*pos = (lo + hi) / 2
		*vel = 0
		return true
	}
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel
		}
		return true
	}
	return false
}

// ReflectBounds handles wall collision against bounds shrunk by radius
// Returns true if any reflection occurred
func ReflectBounds(k *core.Kinetic, bounds core.Area, radius float64) bool {
	inner := bounds.Inset(radius)
	rx := reflectAxis(&k.Pos.X, &k.Vel.X, inner.X, inner.Right())
	ry := reflectAxis(&k.Pos.Y, &k.Vel.Y, inner.Y, inner.Bottom())
	return rx || ry
}

// RandomPoint returns a uniform point inside the area
func RandomPoint(a core.Area, rng vmath.Rand) vmath.Vec2 {
	return vmath.Vec2{
		X: a.X + rng.Float64()*a.W,
		Y: a.Y + rng.Float64()*a.H,
	}
}
