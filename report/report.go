// Package report exports a session's history as CSV, JSON or a PNG chart
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/engine"
)

// ErrNoSamples is returned when there is nothing to export
var ErrNoSamples = errors.New("no history samples")

// Chart dimensions in pixels
const (
	ChartWidth  = 960
	ChartHeight = 480
)

// WriteCSV writes one row per sample under a "step,<nameA>,<nameB>" header
func WriteCSV(w io.Writer, names [core.CompartmentCount]string, samples []engine.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", names[core.CompartmentA], names[core.CompartmentB]}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	row := make([]string, 3)
	for _, s := range samples {
		row[0] = strconv.FormatUint(s.Step, 10)
		row[1] = strconv.Itoa(s.CountA)
		row[2] = strconv.Itoa(s.CountB)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Summary is the JSON document describing one run
type Summary struct {
	RunID       string          `json:"run_id,omitempty"`
	NameA       string          `json:"name_a"`
	NameB       string          `json:"name_b"`
	PercentAB   float64         `json:"p_ab"`
	PercentBA   float64         `json:"p_ba"`
	Step        uint64          `json:"step"`
	CountA      int             `json:"count_a"`
	CountB      int             `json:"count_b"`
	Equilibrium *[2]float64     `json:"equilibrium,omitempty"` // Absent when both probabilities are zero
	History     []engine.Sample `json:"history"`
}

// NewSummary captures a published display
func NewSummary(d engine.Display) Summary {
	s := Summary{
		RunID:     d.RunID,
		NameA:     d.Names[core.CompartmentA],
		NameB:     d.Names[core.CompartmentB],
		PercentAB: d.Percent[core.CompartmentA],
		PercentBA: d.Percent[core.CompartmentB],
		Step:      d.Step,
		CountA:    d.Counts[core.CompartmentA],
		CountB:    d.Counts[core.CompartmentB],
		History:   d.History,
	}
	if d.HasEquilibrium {
		eq := d.Equilibrium
		s.Equilibrium = &eq
	}
	if s.History == nil {
		s.History = []engine.Sample{}
	}
	return s
}

// WriteJSON writes the summary as indented JSON
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// RenderPNG draws both population series against the step counter
func RenderPNG(w io.Writer, names [core.CompartmentCount]string, samples []engine.Sample) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}

	xs := make([]float64, len(samples))
	as := make([]float64, len(samples))
	bs := make([]float64, len(samples))
	total := 0
	for i, s := range samples {
		xs[i] = float64(s.Step)
		as[i] = float64(s.CountA)
		bs[i] = float64(s.CountB)
		total = max(total, s.CountA+s.CountB)
	}

	// Fixed ranges keep single-sample and empty-population runs drawable
	yMax := float64(total)
	if yMax == 0 {
		yMax = 1
	}
	xMin, xMax := xs[0], xs[len(xs)-1]
	if xMax <= xMin {
		xMax = xMin + 1
	}

	graph := chart.Chart{
		Width:  ChartWidth,
		Height: ChartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "step",
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "population",
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    names[core.CompartmentA],
				XValues: xs,
				YValues: as,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    names[core.CompartmentB],
				XValues: xs,
				YValues: bs,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 255}, StrokeWidth: 3.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
