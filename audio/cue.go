// Package audio turns published simulation state into short tones
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/engine"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Pitch range: share of A maps exponentially across two octaves
	MinPitch = 220.0
	MaxPitch = 880.0

	blipDuration = 90 * time.Millisecond
	blipAttack   = 8 * time.Millisecond
	blipRelease  = 60 * time.Millisecond
)

// Player plays a finished streamer
type Player interface {
	Play(s beep.Streamer)
}

// Pitch maps the share of compartment A in [0, 1] to a frequency in [MinPitch, MaxPitch]
func Pitch(shareA float64) float64 {
	if math.IsNaN(shareA) {
		shareA = 0
	}
	shareA = math.Max(0, math.Min(1, shareA))
	return MinPitch * math.Pow(MaxPitch/MinPitch, shareA)
}

// Blip builds one enveloped sine tone
func Blip(freq, volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, blipDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, blipDuration, blipAttack, blipRelease, rate)
	return newVolume(shaped, volume)
}

// Cue plays a blip for every new batch boundary of a running session
type Cue struct {
	mu       sync.Mutex
	player   Player
	rate     beep.SampleRate
	volume   float64
	lastStep uint64
	lastRun  string
	played   int
}

// NewCue creates a cue over any player
func NewCue(player Player, volume float64, rate beep.SampleRate) *Cue {
	return &Cue{player: player, volume: volume, rate: rate}
}

// OnDisplay is a Session subscriber
// Lifecycle publishes and repeated steps are ignored so each boundary sounds once
func (c *Cue) OnDisplay(d engine.Display) {
	if d.State != engine.StateRunning || d.Total() == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if d.RunID == c.lastRun && d.Step == c.lastStep {
		return
	}
	c.lastRun = d.RunID
	c.lastStep = d.Step
	c.played++

	c.player.Play(Blip(Pitch(d.Share(core.CompartmentA)), c.volume, c.rate))
}

// Played returns the number of blips handed to the player
func (c *Cue) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// speakerPlayer routes streamers through a mixer owned by the speaker
type speakerPlayer struct {
	mixer *beep.Mixer
}

func (p *speakerPlayer) Play(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// NewSpeakerCue initializes the system speaker and returns a cue on it with its cleanup
func NewSpeakerCue(volume float64) (*Cue, func(), error) {
	// Buffer of 100ms balances latency against underruns
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, nil, fmt.Errorf("init speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	cleanup := func() {
		speaker.Lock()
		mixer.Clear()
		speaker.Unlock()
		speaker.Clear()
		speaker.Close()
	}
	return NewCue(&speakerPlayer{mixer: mixer}, volume, sampleRate), cleanup, nil
}
