package engine

import "math"

// Tuning holds the engine constants that are fixed for the lifetime of a session
// Speeds and distances are in cells per frame and cells
type Tuning struct {
	FramesPerBatch  int     // Frames between two batches of the same entity
	TrialsPerBatch  int     // Bernoulli trials per batch, also the step increment per boundary
	HistoryCap      int     // Samples kept by the history ring
	TransitionSpeed float64 // Arc progress added per frame
	MaxSpeed        float64 // Random-walk speed cap
	ArrivalSpeed    float64 // Per-axis bound of the velocity assigned on arrival
	Jitter          float64 // Per-axis Brownian velocity perturbation
	Radius          float64 // Entity radius used for wall contact
	Inset           float64 // Margin kept between spawn/arrival points and compartment walls
	ChannelJitter   float64 // Fraction of the channel half-extent used to jitter arc midpoints
	Bend            float64 // Maximum perpendicular offset of arc control points
}

// DefaultTuning returns the tuning used by the interactive tool
func DefaultTuning() Tuning {
	return Tuning{
		FramesPerBatch:  30,
		TrialsPerBatch:  8,
		HistoryCap:      200,
		TransitionSpeed: 0.025,
		MaxSpeed:        0.35,
		ArrivalSpeed:    0.15,
		Jitter:          0.05,
		Radius:          0.5,
		Inset:           1.0,
		ChannelJitter:   0.8,
		Bend:            2.0,
	}
}

// Normalize replaces out-of-range values so the engine never divides by zero or stalls
func (t Tuning) Normalize() Tuning {
	def := DefaultTuning()

	if t.FramesPerBatch < 1 {
		t.FramesPerBatch = 1
	}
	if t.TrialsPerBatch < 1 {
		t.TrialsPerBatch = 1
	}
	if t.HistoryCap < 1 {
		t.HistoryCap = 1
	}
	if !(t.TransitionSpeed > 0) {
		t.TransitionSpeed = def.TransitionSpeed
	}
	if t.TransitionSpeed > 1 {
		t.TransitionSpeed = 1
	}
	t.MaxSpeed = nonNegative(t.MaxSpeed)
	t.ArrivalSpeed = nonNegative(t.ArrivalSpeed)
	t.Jitter = nonNegative(t.Jitter)
	t.Radius = nonNegative(t.Radius)
	t.Inset = nonNegative(t.Inset)
	t.Bend = nonNegative(t.Bend)
	if t.ChannelJitter < 0 || math.IsNaN(t.ChannelJitter) {
		t.ChannelJitter = 0
	}
	if t.ChannelJitter > 1 {
		t.ChannelJitter = 1
	}
	return t
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
