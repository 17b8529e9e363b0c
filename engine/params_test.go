package engine

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/lixenwraith/compartment-sim/core"
)

func TestParamsClamping(t *testing.T) {
	p := NewParams(-5, MaxPopulation+1, 150, math.NaN(), "", "")

	if got := p.Population(core.CompartmentA); got != 0 {
		t.Errorf("negative population should clamp to 0, got %d", got)
	}
	if got := p.Population(core.CompartmentB); got != MaxPopulation {
		t.Errorf("population should clamp to %d, got %d", MaxPopulation, got)
	}
	if got := p.Percent(core.CompartmentA); got != MaxPercent {
		t.Errorf("percent should clamp to 100, got %v", got)
	}
	if got := p.Percent(core.CompartmentB); got != 0 {
		t.Errorf("NaN percent should map to 0, got %v", got)
	}

	pAB, pBA := p.Probabilities()
	if pAB != 1 || pBA != 0 {
		t.Errorf("expected probabilities 1/0, got %v/%v", pAB, pBA)
	}
}

func TestParamsAdjust(t *testing.T) {
	p := NewParams(10, 10, 1, 99, "", "")

	if got := p.AdjustPopulation(core.CompartmentA, -25); got != 0 {
		t.Errorf("expected clamp at 0, got %d", got)
	}
	if got := p.AdjustPercent(core.CompartmentA, -2); got != 0 {
		t.Errorf("expected percent clamp at 0, got %v", got)
	}
	if got := p.AdjustPercent(core.CompartmentB, 5); got != MaxPercent {
		t.Errorf("expected percent clamp at 100, got %v", got)
	}
	if p.Total() != 10 {
		t.Errorf("expected total 10, got %d", p.Total())
	}
}

func TestParamsNames(t *testing.T) {
	p := NewParams(0, 0, 0, 0, "", "Recovered")

	if got := p.Name(core.CompartmentA); got != core.CompartmentA.String() {
		t.Errorf("empty name should fall back to %q, got %q", core.CompartmentA.String(), got)
	}
	if got := p.Name(core.CompartmentB); got != "Recovered" {
		t.Errorf("expected Recovered, got %q", got)
	}

	p.SetName(core.CompartmentA, strings.Repeat("x", 40))
	if got := p.Name(core.CompartmentA); len([]rune(got)) != 20 {
		t.Errorf("expected name truncated to 20 runes, got %d", len([]rune(got)))
	}
}

func TestParamsConcurrentAdjust(t *testing.T) {
	p := NewParams(0, 0, 0, 0, "", "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.AdjustPopulation(core.CompartmentA, 1)
			}
		}()
	}
	wg.Wait()

	if got := p.Population(core.CompartmentA); got != 800 {
		t.Errorf("expected 800 after concurrent adjustments, got %d", got)
	}
}
