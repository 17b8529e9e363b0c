package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/compartment-sim/core"
)

// RGB color definitions
var (
	RgbCompartmentA = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbCompartmentB = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbTransit      = tcell.NewRGBColor(255, 255, 255) // White while in flight
	RgbBorder       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbChannel      = tcell.NewRGBColor(110, 110, 110) // Dim gray
	RgbHeader       = tcell.NewRGBColor(255, 255, 255)
	RgbFooter       = tcell.NewRGBColor(140, 140, 140)
	RgbRunning      = tcell.NewRGBColor(0, 200, 0)
	RgbPaused       = tcell.NewRGBColor(255, 255, 0)
	RgbStopped      = tcell.NewRGBColor(255, 80, 80)
	RgbOverlayBg    = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
)

// Plot series colors in the 256-color palette, matched to the compartment colors
const (
	PaletteA = 111
	PaletteB = 214
)

// compartmentColor returns the glyph color of a compartment
func compartmentColor(c core.Compartment) tcell.Color {
	if c == core.CompartmentA {
		return RgbCompartmentA
	}
	return RgbCompartmentB
}
