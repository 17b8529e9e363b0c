package engine

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateStopped, StateRunning, true},
		{StateStopped, StatePaused, false},
		{StateStopped, StateStopped, false},
		{StateRunning, StatePaused, true},
		{StateRunning, StateStopped, true},
		{StateRunning, StateRunning, false},
		{StatePaused, StateRunning, true},
		{StatePaused, StateStopped, true},
		{StatePaused, StatePaused, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "Running" {
		t.Errorf("Expected Running, got %s", StateRunning)
	}
	if State(42).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", State(42))
	}
}
