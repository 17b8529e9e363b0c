package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/compartment-sim/core"
)

func TestCompartmentColor(t *testing.T) {
	if compartmentColor(core.CompartmentA) != RgbCompartmentA {
		t.Error("compartment A should use RgbCompartmentA")
	}
	if compartmentColor(core.CompartmentB) != RgbCompartmentB {
		t.Error("compartment B should use RgbCompartmentB")
	}
	if RgbCompartmentA == RgbCompartmentB || RgbTransit == RgbCompartmentA || RgbTransit == RgbCompartmentB {
		t.Error("compartment and transit colors must be distinct")
	}
}

func TestPaletteMatchesCompartments(t *testing.T) {
	// Plot series use the 256-color palette, glyphs use RGB; both must stay distinguishable
	if PaletteA == PaletteB {
		t.Fatal("plot palettes must differ")
	}
	a := tcell.PaletteColor(PaletteA)
	b := tcell.PaletteColor(PaletteB)
	if a == b || !a.Valid() || !b.Valid() {
		t.Errorf("unexpected palette colors %v %v", a, b)
	}
}
