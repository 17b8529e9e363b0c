// Package layout maps a viewport to two compartment regions joined by a channel
package layout

import (
	"github.com/lixenwraith/compartment-sim/core"
)

// Geometry limits in cells
const (
	MinWidth  = 20 // Below this the arena cannot hold two boxes and a channel
	MinHeight = 6
	Margin    = 1.0

	minChannelWidth  = 4.0
	minChannelHeight = 3.0
)

// Layout is the arena geometry after a layout pass
// A zero Layout is invalid and makes the engine skip ticks
type Layout struct {
	Width, Height int
	A, B          core.Area
	Channel       core.Area
}

// Valid reports whether a layout pass produced usable geometry
func (l Layout) Valid() bool {
	return !l.A.Empty() && !l.B.Empty() && !l.Channel.Empty()
}

// Area returns the region of a compartment
func (l Layout) Area(c core.Compartment) core.Area {
	if c == core.CompartmentA {
		return l.A
	}
	return l.B
}

// ChannelMid returns the center of the connecting channel
func (l Layout) ChannelMid() (x, y float64) {
	return l.Channel.Center()
}

// Compute places compartment A on the left, B on the right and the channel between them
// Returns false when the viewport is too small to hold the geometry
func Compute(width, height int) (Layout, bool) {
	if width < MinWidth || height < MinHeight {
		return Layout{}, false
	}

	w, h := float64(width), float64(height)

	channelW := w / 8
	if channelW < minChannelWidth {
		channelW = minChannelWidth
	}
	boxW := (w - 2*Margin - channelW) / 2
	boxH := h - 2*Margin

	channelH := h / 4
	if channelH < minChannelHeight {
		channelH = minChannelHeight
	}
	if channelH > boxH {
		channelH = boxH
	}

	l := Layout{
		Width:  width,
		Height: height,
		A:      core.Area{X: Margin, Y: Margin, W: boxW, H: boxH},
		B:      core.Area{X: Margin + boxW + channelW, Y: Margin, W: boxW, H: boxH},
		Channel: core.Area{
			X: Margin + boxW,
			Y: Margin + (boxH-channelH)/2,
			W: channelW,
			H: channelH,
		},
	}
	return l, true
}
