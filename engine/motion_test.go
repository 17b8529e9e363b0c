package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/vmath"
)

func TestAdvanceVisualFollowsArc(t *testing.T) {
	lay := testLayout(t)
	rng := vmath.NewFastRand(10)
	tuning := DefaultTuning()
	tuning.TransitionSpeed = 0.25

	e := restingEntity(lay, core.CompartmentA)
	AdvanceDiscrete(&e, 1, 0, 1, lay, tuning, rng)
	arc := e.Arc

	for i := 1; i <= 3; i++ {
		AdvanceVisual(&e, lay.Area(e.Compartment), tuning, rng)
		want := arc.At(float64(i) * 0.25)
		if e.Kinetic.Pos != want {
			t.Fatalf("Frame %d: position %v, want %v", i, e.Kinetic.Pos, want)
		}
		if !e.Transitioning {
			t.Fatalf("Frame %d: arrived early", i)
		}
	}

	AdvanceVisual(&e, lay.Area(e.Compartment), tuning, rng)
	if e.Transitioning || e.Progress != 1 {
		t.Fatalf("Expected arrival, got transitioning=%v progress=%f", e.Transitioning, e.Progress)
	}
	if e.Kinetic.Pos != arc.End() {
		t.Errorf("Expected snap to arc end %v, got %v", arc.End(), e.Kinetic.Pos)
	}
	if math.Abs(e.Kinetic.Vel.X) > tuning.ArrivalSpeed || math.Abs(e.Kinetic.Vel.Y) > tuning.ArrivalSpeed {
		t.Errorf("Arrival velocity %v exceeds %f per axis", e.Kinetic.Vel, tuning.ArrivalSpeed)
	}
	if e.Compartment != core.CompartmentB {
		t.Errorf("Motion must not change compartment, got %v", e.Compartment)
	}
}

func TestAdvanceVisualStaysInBounds(t *testing.T) {
	lay := testLayout(t)
	rng := vmath.NewFastRand(11)
	tuning := DefaultTuning()
	bounds := lay.A

	e := restingEntity(lay, core.CompartmentA)
	e.Kinetic.Vel = vmath.V2(25, -40)

	for i := 0; i < 5000; i++ {
		AdvanceVisual(&e, bounds, tuning, rng)
		p := e.Kinetic.Pos
		if !bounds.Contains(p.X, p.Y) {
			t.Fatalf("Frame %d: position %v escaped %+v", i, p, bounds)
		}
		if speed := e.Kinetic.Vel.Mag(); speed > tuning.MaxSpeed+1e-9 {
			t.Fatalf("Frame %d: speed %f exceeds cap %f", i, speed, tuning.MaxSpeed)
		}
	}
	if e.Compartment != core.CompartmentA || e.Transitioning {
		t.Error("Random walk must not touch discrete state")
	}
}

func TestAdvanceVisualDegenerateBounds(t *testing.T) {
	rng := vmath.NewFastRand(12)
	tuning := DefaultTuning()
	bounds := core.Area{X: 5, Y: 5, W: 0.5, H: 0.5}

	e := Entity{Kinetic: core.Kinetic{Pos: vmath.V2(100, -100), Vel: vmath.V2(3, 3)}}
	for i := 0; i < 100; i++ {
		AdvanceVisual(&e, bounds, tuning, rng)
		p := e.Kinetic.Pos
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || !bounds.Contains(p.X, p.Y) {
			t.Fatalf("Frame %d: position %v not inside %+v", i, p, bounds)
		}
	}
}
