package engine

import (
	"time"

	"github.com/lixenwraith/compartment-sim/core"
)

// Display is the published view of a session
// Replaced wholesale at batch boundaries and lifecycle changes; never mutated after publish
type Display struct {
	RunID   string
	State   State
	Counts  [core.CompartmentCount]int
	Names   [core.CompartmentCount]string
	Percent [core.CompartmentCount]float64 // Live transition probabilities at publish time
	Step    uint64
	Frame   uint64
	Elapsed time.Duration
	History []Sample

	// Stationary expectation for the current total and probabilities
	Equilibrium    [core.CompartmentCount]float64
	HasEquilibrium bool
}

// Total returns the population across both compartments
func (d Display) Total() int {
	return d.Counts[core.CompartmentA] + d.Counts[core.CompartmentB]
}

// Share returns the fraction of the population in c, zero when empty
func (d Display) Share(c core.Compartment) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d.Counts[c]) / float64(total)
}
