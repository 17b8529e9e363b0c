package engine

import (
	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/physics"
	"github.com/lixenwraith/compartment-sim/vmath"
)

// AdvanceVisual moves an entity one frame, purely cosmetic
// Transitioning entities follow their arc; resting entities random-walk inside bounds
func AdvanceVisual(e *Entity, bounds core.Area, t Tuning, rng vmath.Rand) {
	if e.Transitioning {
		e.Progress += t.TransitionSpeed
		if e.Progress >= 1 {
			// Arrival
			e.Progress = 1
			e.Transitioning = false
			e.Kinetic.Pos = e.Arc.End()
			physics.SetImpulse(&e.Kinetic, physics.RandomVelocity(t.ArrivalSpeed, rng))
			return
		}
		e.Kinetic.Pos = e.Arc.At(e.Progress)
		return
	}

	physics.Integrate(&e.Kinetic)
	physics.ReflectBounds(&e.Kinetic, bounds, t.Radius)
	physics.ApplyJitter(&e.Kinetic, t.Jitter, rng)
	physics.CapSpeed(&e.Kinetic, t.MaxSpeed)
}
