package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Engine.HistoryCapacity != 200 {
		t.Errorf("expected history capacity 200, got %d", cfg.Engine.HistoryCapacity)
	}
	if cfg.Simulation.PopulationA != 500 || cfg.Simulation.PopulationB != 500 {
		t.Errorf("expected 500/500, got %d/%d", cfg.Simulation.PopulationA, cfg.Simulation.PopulationB)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	content := `
simulation:
  population_a: 1000
  population_b: 0
  p_ab: 5
  p_ba: 15
  name_a: Susceptible
engine:
  frames_per_batch: 12
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.PopulationA != 1000 || cfg.Simulation.PercentBA != 15 {
		t.Errorf("file values not applied: %+v", cfg.Simulation)
	}
	if cfg.Simulation.NameB != "B" {
		t.Errorf("expected default name_b kept, got %q", cfg.Simulation.NameB)
	}
	if cfg.Engine.FramesPerBatch != 12 || cfg.Engine.TrialsPerBatch != 8 {
		t.Errorf("expected frames 12 and default trials 8, got %+v", cfg.Engine)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  populaton_a: 3\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown key")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); err != nil {
		t.Errorf("expected empty file to yield defaults, got %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  population_a: 10\n  p_ab: 20\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COMPSIM_POPULATION_A", "42")
	t.Setenv("COMPSIM_FPS", "60")
	t.Setenv("COMPSIM_SOUND", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.PopulationA != 42 {
		t.Errorf("expected env population 42, got %d", cfg.Simulation.PopulationA)
	}
	if cfg.Simulation.PercentAB != 20 {
		t.Errorf("expected file p_ab 20 kept, got %v", cfg.Simulation.PercentAB)
	}
	if cfg.Display.FPS != 60 || !cfg.Display.Sound {
		t.Errorf("expected fps 60 and sound on, got %+v", cfg.Display)
	}
}

func TestApplyEnvMap(t *testing.T) {
	cfg := Default()
	err := applyEnv(cfg, map[string]string{
		"COMPSIM_P_BA":             "12.5",
		"COMPSIM_TRIALS_PER_BATCH": "3",
		"COMPSIM_LOG_FILE":         "/tmp/sim.log",
		"POPULATION_A":             "9", // Missing prefix, ignored
	})
	if err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}
	if cfg.Simulation.PercentBA != 12.5 || cfg.Engine.TrialsPerBatch != 3 || cfg.Logging.File != "/tmp/sim.log" {
		t.Errorf("env not applied: %+v %+v %+v", cfg.Simulation, cfg.Engine, cfg.Logging)
	}
	if cfg.Simulation.PopulationA != 500 {
		t.Errorf("unprefixed variable applied: %d", cfg.Simulation.PopulationA)
	}

	if err := applyEnv(cfg, map[string]string{"COMPSIM_FPS": "fast"}); err == nil {
		t.Error("expected parse error for non-numeric fps")
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Display.FPS = 0
	cfg.Engine.FramesPerBatch = -1
	cfg.Engine.HistoryCapacity = 0
	cfg.Simulation.PercentAB = 140
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	for _, key := range []string{"fps", "frames_per_batch", "history_capacity", "p_ab", "loud"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected error to mention %q: %v", key, err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Simulation.NameA = "Infected"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "name_a: Infected") {
		t.Errorf("expected name_a in output:\n%s", data)
	}

	back := Default()
	if err := back.decode(data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if back.Simulation.NameA != "Infected" {
		t.Errorf("expected Infected, got %q", back.Simulation.NameA)
	}
}

func TestEngineBridges(t *testing.T) {
	cfg := Default()
	cfg.Simulation.PopulationA = 20000
	cfg.Engine.FramesPerBatch = 0

	params := cfg.Params()
	if params.Total() != 10000+500 {
		t.Errorf("expected clamped population total 10500, got %d", params.Total())
	}
	if tuning := cfg.Tuning(); tuning.FramesPerBatch != 1 {
		t.Errorf("expected normalized frames per batch 1, got %d", tuning.FramesPerBatch)
	}
}
