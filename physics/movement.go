package physics

import (
	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(k *core.Kinetic, maxSpeed float64) bool {
	vel, clamped := k.Vel.ClampMagnitude(maxSpeed)
	k.Vel = vel
	return clamped
}

// ApplyJitter adds independent uniform perturbations in [-amount, amount) per axis
func ApplyJitter(k *core.Kinetic, amount float64, rng vmath.Rand) {
	if amount <= 0 {
		return
	}
	k.Vel.X += vmath.Uniform(rng, -amount, amount)
	k.Vel.Y += vmath.Uniform(rng, -amount, amount)
}

// RandomVelocity returns a velocity with each component uniform in [-maxComponent, maxComponent)
func RandomVelocity(maxComponent float64, rng vmath.Rand) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Uniform(rng, -maxComponent, maxComponent),
		Y: vmath.Uniform(rng, -maxComponent, maxComponent),
	}
}
