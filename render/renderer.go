// Package render draws a session onto a tcell screen
package render

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/engine"
	"github.com/lixenwraith/compartment-sim/layout"
)

// Screen rows reserved around the arena
const (
	headerRows   = 1
	footerRows   = 1
	minPlotRows  = 6
	maxPlotRows  = 12
	plotMinTotal = 20 // Terminal height below which the plot panel is dropped
)

// Entity glyphs
const (
	GlyphResting    = '●'
	GlyphTransiting = '•'
)

// FooterHelp is the key summary drawn on the last row
const FooterHelp = "s start  p pause  r reset  a/A p(A→B)  b/B p(B→A)  [/] pop A  {/} pop B  d metrics  q quit"

// View is everything drawn in one frame
type View struct {
	Display   engine.Display
	Layout    layout.Layout
	HasLayout bool
	Entities  []engine.EntityView
	Metrics   []string // Nil hides the overlay
}

// Renderer owns no simulation state, it only reads the View it is given
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewRenderer creates a renderer on screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault,
	}
}

// plotRows returns the height of the history panel for a terminal of height h
func plotRows(h int) int {
	if h < plotMinTotal {
		return 0
	}
	return max(minPlotRows, min(maxPlotRows, h/3))
}

// ArenaSize returns the viewport handed to the layout for a w×h terminal
func ArenaSize(w, h int) (int, int) {
	return w, max(0, h-headerRows-footerRows-plotRows(h))
}

// Draw renders one full frame and shows it
func (r *Renderer) Draw(v View) {
	s := r.screen
	s.Clear()
	w, h := s.Size()

	r.drawHeader(v.Display, w)

	arenaY := headerRows
	if v.HasLayout && v.Layout.Valid() {
		r.drawArena(v.Layout, arenaY)
		r.drawEntities(v.Entities, arenaY)
	} else {
		drawText(s, 1, arenaY+1, r.base.Foreground(RgbStopped), "terminal too small")
	}

	if rows := plotRows(h); rows > 0 {
		_, arenaH := ArenaSize(w, h)
		r.drawPlot(v.Display, arenaY+arenaH, w, rows)
	}

	r.drawFooter(h - 1)

	if v.Metrics != nil {
		r.drawMetrics(v.Metrics, w)
	}
	s.Show()
}

func (r *Renderer) drawHeader(d engine.Display, w int) {
	s := r.screen
	style := r.base.Foreground(RgbHeader)
	fillRow(s, 0, style)

	x := drawText(s, 0, 0, r.base.Foreground(stateColor(d.State)).Bold(true), fmt.Sprintf(" %-7s", d.State))
	x = drawText(s, x+1, 0, r.base.Foreground(RgbCompartmentA), fmt.Sprintf("%s %d", d.Names[core.CompartmentA], d.Counts[core.CompartmentA]))
	x = drawText(s, x+2, 0, r.base.Foreground(RgbCompartmentB), fmt.Sprintf("%s %d", d.Names[core.CompartmentB], d.Counts[core.CompartmentB]))

	info := fmt.Sprintf("step %d  p(A→B) %.0f%%  p(B→A) %.0f%%",
		d.Step, d.Percent[core.CompartmentA], d.Percent[core.CompartmentB])
	if d.HasEquilibrium {
		info += fmt.Sprintf("  eq %.0f/%.0f", d.Equilibrium[core.CompartmentA], d.Equilibrium[core.CompartmentB])
	}
	info += "  " + formatElapsed(d.Elapsed)
	if x+2+len(info) <= w {
		drawText(s, x+2, 0, style, info)
	}
}

func (r *Renderer) drawArena(l layout.Layout, y0 int) {
	s := r.screen
	border := r.base.Foreground(RgbBorder)
	channel := r.base.Foreground(RgbChannel)

	drawBox(s, l.A, y0, border)
	drawBox(s, l.B, y0, border)

	// Channel: rails along its top and bottom, openings cut into both walls
	cx0 := cellFloor(l.Channel.X)
	cx1 := cellFloor(l.Channel.Right())
	top := cellFloor(l.Channel.Y) + y0
	bottom := cellFloor(l.Channel.Bottom()) + y0
	for x := cx0; x <= cx1; x++ {
		setCell(s, x, top, '─', channel)
		setCell(s, x, bottom, '─', channel)
	}
	for y := top + 1; y < bottom; y++ {
		setCell(s, cx0, y, ' ', r.base)
		setCell(s, cx1, y, ' ', r.base)
	}

	nameStyle := border.Bold(true)
	drawText(s, cellFloor(l.A.X)+2, cellFloor(l.A.Y)+y0, nameStyle, " A ")
	drawText(s, cellFloor(l.B.X)+2, cellFloor(l.B.Y)+y0, nameStyle, " B ")
}

func (r *Renderer) drawEntities(views []engine.EntityView, y0 int) {
	for _, e := range views {
		glyph := GlyphResting
		style := r.base.Foreground(compartmentColor(e.Compartment))
		if e.Transitioning {
			glyph = GlyphTransiting
			style = r.base.Foreground(RgbTransit)
		}
		setCell(r.screen, cellFloor(e.Pos.X), cellFloor(e.Pos.Y)+y0, glyph, style)
	}
}

func (r *Renderer) drawPlot(d engine.Display, y0, w, rows int) {
	s := r.screen
	total := d.Total()
	labelW := len(strconv.Itoa(total)) + 4

	// Caption takes one line below the graph
	lines := plotSeries(d.History, total, w-labelW-1, rows-2, fmt.Sprintf("history (%d samples)", len(d.History)))
	if lines == nil {
		drawText(s, 1, y0+rows/2, r.base.Foreground(RgbFooter), "collecting history…")
		return
	}
	for i, line := range lines {
		if i >= rows {
			break
		}
		drawANSI(s, 0, y0+i, r.base, line)
	}
}

func (r *Renderer) drawFooter(y int) {
	style := r.base.Foreground(RgbFooter)
	fillRow(r.screen, y, style)
	drawText(r.screen, 1, y, style, FooterHelp)
}

func (r *Renderer) drawMetrics(lines []string, w int) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 2
	x0 := max(0, w-width-1)
	style := r.base.Background(RgbOverlayBg).Foreground(RgbHeader)

	for i, l := range lines {
		y := headerRows + i
		for x := x0; x < x0+width; x++ {
			setCell(r.screen, x, y, ' ', style)
		}
		drawText(r.screen, x0+1, y, style, l)
	}
}

// drawBox outlines an area, shifted down by y0 rows
func drawBox(s tcell.Screen, a core.Area, y0 int, style tcell.Style) {
	x0, x1 := cellFloor(a.X), cellFloor(a.Right())
	top, bottom := cellFloor(a.Y)+y0, cellFloor(a.Bottom())+y0
	for x := x0 + 1; x < x1; x++ {
		setCell(s, x, top, '─', style)
		setCell(s, x, bottom, '─', style)
	}
	for y := top + 1; y < bottom; y++ {
		setCell(s, x0, y, '│', style)
		setCell(s, x1, y, '│', style)
	}
	setCell(s, x0, top, '┌', style)
	setCell(s, x1, top, '┐', style)
	setCell(s, x0, bottom, '└', style)
	setCell(s, x1, bottom, '┘', style)
}

func cellFloor(v float64) int {
	return int(math.Floor(v))
}

func stateColor(st engine.State) tcell.Color {
	switch st {
	case engine.StateRunning:
		return RgbRunning
	case engine.StatePaused:
		return RgbPaused
	default:
		return RgbStopped
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
