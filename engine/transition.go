package engine

import (
	"math"

	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/layout"
	"github.com/lixenwraith/compartment-sim/physics"
	"github.com/lixenwraith/compartment-sim/vmath"
)

// AdvanceDiscrete runs one batch of independent Bernoulli trials for an entity
// In A each trial moves to B with probability pAB, in B to A with probability pBA
// Only the net result is observable: a transition arc starts when the final
// compartment differs from the one at batch start
// Returns whether the net compartment changed and the number of intermediate flips
func AdvanceDiscrete(e *Entity, pAB, pBA float64, trials int, lay layout.Layout, t Tuning, rng vmath.Rand) (changed bool, flips int) {
	pAB = vmath.Clamp(pAB, 0, 1)
	pBA = vmath.Clamp(pBA, 0, 1)

	start := e.Compartment
	c := start
	for i := 0; i < trials; i++ {
		p := pBA
		if c == core.CompartmentA {
			p = pAB
		}
		if rng.Float64() < p {
			c = c.Other()
			flips++
		}
	}

	if c == start {
		return false, flips
	}

	e.Compartment = c
	beginTransition(e, lay, t, rng)
	return true, flips
}

// beginTransition builds the arc from the current position, through the jittered channel
// midpoint, to a random interior point of the entity's (new) compartment
func beginTransition(e *Entity, lay layout.Layout, t Tuning, rng vmath.Rand) {
	start := e.Kinetic.Pos

	dest := lay.Area(e.Compartment).Inset(math.Max(t.Inset, t.Radius))
	end := physics.RandomPoint(dest, rng)

	cx, cy := lay.ChannelMid()
	mid := vmath.Vec2{
		X: cx + vmath.Uniform(rng, -1, 1)*lay.Channel.W/2*t.ChannelJitter,
		Y: cy + vmath.Uniform(rng, -1, 1)*lay.Channel.H/2*t.ChannelJitter,
	}

	normal := end.Sub(start).Normalize().Perpendicular()
	bend := normal.Scale(vmath.Uniform(rng, -t.Bend, t.Bend))

	e.Arc = vmath.BezierThrough(start, mid, end, bend)
	e.Transitioning = true
	e.Progress = 0
	e.Kinetic.Vel = vmath.Vec2{}
}
