// Package config loads simulator settings from defaults, a YAML file and COMPSIM_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/compartment-sim/engine"
	"github.com/lixenwraith/compartment-sim/logging"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "COMPSIM_"

// ErrInvalid marks every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full tool configuration
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Engine     EngineConfig     `yaml:"engine"`
	Display    DisplayConfig    `yaml:"display"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds the initial live parameters
type SimulationConfig struct {
	PopulationA int     `yaml:"population_a" env:"POPULATION_A"`
	PopulationB int     `yaml:"population_b" env:"POPULATION_B"`
	PercentAB   float64 `yaml:"p_ab" env:"P_AB"` // Per-trial probability A→B in percent
	PercentBA   float64 `yaml:"p_ba" env:"P_BA"`
	NameA       string  `yaml:"name_a" env:"NAME_A"`
	NameB       string  `yaml:"name_b" env:"NAME_B"`
}

// EngineConfig holds tuning fixed for a session
type EngineConfig struct {
	FramesPerBatch  int     `yaml:"frames_per_batch" env:"FRAMES_PER_BATCH"`
	TrialsPerBatch  int     `yaml:"trials_per_batch" env:"TRIALS_PER_BATCH"`
	HistoryCapacity int     `yaml:"history_capacity" env:"HISTORY_CAPACITY"`
	TransitionSpeed float64 `yaml:"transition_speed" env:"TRANSITION_SPEED"`
	MaxSpeed        float64 `yaml:"max_speed" env:"MAX_SPEED"`
	Jitter          float64 `yaml:"jitter" env:"JITTER"`
	Seed            uint64  `yaml:"seed" env:"SEED"` // 0 seeds from the clock
}

// DisplayConfig controls the interactive surface
type DisplayConfig struct {
	FPS         int  `yaml:"fps" env:"FPS"`
	Sound       bool `yaml:"sound" env:"SOUND"`
	ShowMetrics bool `yaml:"show_metrics" env:"SHOW_METRICS"`
}

// LoggingConfig selects log verbosity and destination
type LoggingConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
	File  string `yaml:"file" env:"LOG_FILE"` // Empty discards logs
}

// Default returns the built-in configuration
func Default() *Config {
	tuning := engine.DefaultTuning()
	return &Config{
		Simulation: SimulationConfig{
			PopulationA: 500,
			PopulationB: 500,
			PercentAB:   5,
			PercentBA:   5,
			NameA:       "A",
			NameB:       "B",
		},
		Engine: EngineConfig{
			FramesPerBatch:  tuning.FramesPerBatch,
			TrialsPerBatch:  tuning.TrialsPerBatch,
			HistoryCapacity: tuning.HistoryCap,
			TransitionSpeed: tuning.TransitionSpeed,
			MaxSpeed:        tuning.MaxSpeed,
			Jitter:          tuning.Jitter,
		},
		Display: DisplayConfig{
			FPS: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns defaults overlaid with the YAML file at path and then the environment
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays YAML onto cfg, unknown keys are rejected
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides fields from COMPSIM_* variables; unset variables leave fields alone
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, nil)
}

// applyEnv parses from environ, or the process environment when nil
func applyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every impossible value, each wrapping ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	s := c.Simulation
	if s.PopulationA < 0 || s.PopulationA > engine.MaxPopulation {
		invalid("population_a must be in [0, %d], got %d", engine.MaxPopulation, s.PopulationA)
	}
	if s.PopulationB < 0 || s.PopulationB > engine.MaxPopulation {
		invalid("population_b must be in [0, %d], got %d", engine.MaxPopulation, s.PopulationB)
	}
	if !(s.PercentAB >= 0 && s.PercentAB <= engine.MaxPercent) {
		invalid("p_ab must be in [0, 100], got %v", s.PercentAB)
	}
	if !(s.PercentBA >= 0 && s.PercentBA <= engine.MaxPercent) {
		invalid("p_ba must be in [0, 100], got %v", s.PercentBA)
	}

	e := c.Engine
	if e.FramesPerBatch <= 0 {
		invalid("frames_per_batch must be positive, got %d", e.FramesPerBatch)
	}
	if e.TrialsPerBatch <= 0 {
		invalid("trials_per_batch must be positive, got %d", e.TrialsPerBatch)
	}
	if e.HistoryCapacity <= 0 {
		invalid("history_capacity must be positive, got %d", e.HistoryCapacity)
	}
	if !(e.TransitionSpeed > 0 && e.TransitionSpeed <= 1) {
		invalid("transition_speed must be in (0, 1], got %v", e.TransitionSpeed)
	}
	if e.MaxSpeed < 0 || e.Jitter < 0 {
		invalid("max_speed and jitter must be non-negative")
	}

	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		invalid("fps must be in [1, 240], got %d", c.Display.FPS)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		invalid("%v", err)
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Params builds live engine parameters from the simulation section
func (c *Config) Params() *engine.Params {
	s := c.Simulation
	return engine.NewParams(s.PopulationA, s.PopulationB, s.PercentAB, s.PercentBA, s.NameA, s.NameB)
}

// Tuning builds normalized engine tuning from the engine section
func (c *Config) Tuning() engine.Tuning {
	t := engine.DefaultTuning()
	t.FramesPerBatch = c.Engine.FramesPerBatch
	t.TrialsPerBatch = c.Engine.TrialsPerBatch
	t.HistoryCap = c.Engine.HistoryCapacity
	t.TransitionSpeed = c.Engine.TransitionSpeed
	t.MaxSpeed = c.Engine.MaxSpeed
	t.Jitter = c.Engine.Jitter
	return t.Normalize()
}
