package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/compartment-sim/engine"
)

// plotSeries builds the history plot as text lines with ANSI color escapes
// Returns nil when fewer than two samples exist
func plotSeries(samples []engine.Sample, total, width, height int, caption string) []string {
	if len(samples) < 2 || width < 4 || height < 2 {
		return nil
	}

	as := make([]float64, len(samples))
	bs := make([]float64, len(samples))
	for i, s := range samples {
		as[i] = float64(s.CountA)
		bs[i] = float64(s.CountB)
	}

	upper := float64(total)
	if upper < 1 {
		upper = 1
	}

	out := asciigraph.PlotMany([][]float64{as, bs},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(upper),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.AnsiColor(PaletteA), asciigraph.AnsiColor(PaletteB)),
		asciigraph.Caption(caption),
	)
	return strings.Split(out, "\n")
}

// drawANSI writes one line of SGR-colored text, escape sequences switch the foreground
func drawANSI(s tcell.Screen, x, y int, base tcell.Style, line string) {
	style := base
	for i := 0; i < len(line); {
		if line[i] == 0x1b && i+1 < len(line) && line[i+1] == '[' {
			end := strings.IndexByte(line[i:], 'm')
			if end < 0 {
				return
			}
			style = applySGR(style, base, line[i+2:i+end])
			i += end + 1
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		setCell(s, x, y, r, style)
		x++
		i += size
	}
}

// applySGR interprets the color subset asciigraph emits
func applySGR(cur, base tcell.Style, params string) tcell.Style {
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil && parts[i] != "" {
			continue
		}
		switch {
		case parts[i] == "" || n == 0 || n == 39:
			cur = base
		case n == 38 && i+2 < len(parts) && parts[i+1] == "5":
			if idx, err := strconv.Atoi(parts[i+2]); err == nil {
				cur = cur.Foreground(tcell.PaletteColor(idx))
			}
			i += 2
		case n >= 30 && n <= 37:
			cur = cur.Foreground(tcell.PaletteColor(n - 30))
		case n >= 90 && n <= 97:
			cur = cur.Foreground(tcell.PaletteColor(n - 90 + 8))
		}
	}
	return cur
}
