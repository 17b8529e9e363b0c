package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/status"
	"github.com/lixenwraith/compartment-sim/vmath"
)

// Input bounds
const (
	MaxPopulation = 10000
	MaxPercent    = 100.0
)

// Params are the live, hot-swappable simulation inputs
// Safe for concurrent use; the engine reads them at batch time, never snapshots
type Params struct {
	population [core.CompartmentCount]atomic.Int64
	percent    [core.CompartmentCount]status.AtomicFloat // Indexed by source compartment
	names      [core.CompartmentCount]status.AtomicString
}

// NewParams creates parameters with every value clamped
func NewParams(popA, popB int, pctAB, pctBA float64, nameA, nameB string) *Params {
	p := &Params{}
	p.SetPopulation(core.CompartmentA, popA)
	p.SetPopulation(core.CompartmentB, popB)
	p.SetPercent(core.CompartmentA, pctAB)
	p.SetPercent(core.CompartmentB, pctBA)
	p.SetName(core.CompartmentA, nameA)
	p.SetName(core.CompartmentB, nameB)
	return p
}

// ClampPopulation limits n to [0, MaxPopulation]
func ClampPopulation(n int) int {
	return vmath.ClampInt(n, 0, MaxPopulation)
}

// ClampPercent limits pct to [0, 100], NaN maps to 0
func ClampPercent(pct float64) float64 {
	return vmath.Clamp(pct, 0, MaxPercent)
}

// Population returns the configured initial population of c
func (p *Params) Population(c core.Compartment) int {
	return int(p.population[c].Load())
}

// Total returns the configured population of both compartments
func (p *Params) Total() int {
	return p.Population(core.CompartmentA) + p.Population(core.CompartmentB)
}

// SetPopulation stores the clamped value and returns it
func (p *Params) SetPopulation(c core.Compartment, n int) int {
	n = ClampPopulation(n)
	p.population[c].Store(int64(n))
	return n
}

// AdjustPopulation adds delta with clamping and returns the new value
func (p *Params) AdjustPopulation(c core.Compartment, delta int) int {
	for {
		old := p.population[c].Load()
		n := int64(ClampPopulation(int(old) + delta))
		if p.population[c].CompareAndSwap(old, n) {
			return int(n)
		}
	}
}

// Percent returns the per-trial probability of leaving compartment from, in percent
func (p *Params) Percent(from core.Compartment) float64 {
	return p.percent[from].Get()
}

// SetPercent stores the clamped percentage and returns it
func (p *Params) SetPercent(from core.Compartment, pct float64) float64 {
	pct = ClampPercent(pct)
	p.percent[from].Set(pct)
	return pct
}

// AdjustPercent adds delta with clamping and returns the new value
func (p *Params) AdjustPercent(from core.Compartment, delta float64) float64 {
	return p.percent[from].Update(func(old float64) float64 {
		return ClampPercent(old + delta)
	})
}

// Probabilities returns the per-trial A→B and B→A probabilities as fractions in [0, 1]
func (p *Params) Probabilities() (pAB, pBA float64) {
	return p.Percent(core.CompartmentA) / MaxPercent, p.Percent(core.CompartmentB) / MaxPercent
}

// Name returns the display name of c, falling back to the compartment letter
func (p *Params) Name(c core.Compartment) string {
	if name := p.names[c].Load(); name != "" {
		return name
	}
	return c.String()
}

// SetName stores a display name, truncated to status.MaxStringLen runes
func (p *Params) SetName(c core.Compartment, name string) {
	p.names[c].Store(name)
}
