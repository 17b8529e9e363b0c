package engine

import "testing"

func TestManualFramesStepRunsQueuedCallbacks(t *testing.T) {
	m := NewManualFrames()
	var calls []int

	m.RequestFrame(func() { calls = append(calls, 1) })
	m.RequestFrame(func() { calls = append(calls, 2) })
	if m.Pending() != 2 {
		t.Fatalf("Expected 2 pending, got %d", m.Pending())
	}

	if !m.Step() {
		t.Fatal("Expected Step to run callbacks")
	}
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("Expected calls [1 2], got %v", calls)
	}
	if m.Step() {
		t.Error("Expected Step on empty queue to report false")
	}
}

func TestManualFramesCancel(t *testing.T) {
	m := NewManualFrames()
	ran := false

	h := m.RequestFrame(func() { ran = true })
	h.Cancel()
	h.Cancel()

	if m.Pending() != 0 {
		t.Errorf("Expected 0 pending after cancel, got %d", m.Pending())
	}
	if m.Step() || ran {
		t.Error("Cancelled callback must not run")
	}
}

func TestManualFramesRescheduleWaitsForNextStep(t *testing.T) {
	m := NewManualFrames()
	count := 0

	var loop func()
	loop = func() {
		count++
		if count < 5 {
			m.RequestFrame(loop)
		}
	}
	m.RequestFrame(loop)

	m.Step()
	if count != 1 {
		t.Fatalf("Expected one callback per Step, got %d", count)
	}

	if n := m.Run(10); n != 4 {
		t.Errorf("Expected Run to report 4 frames, got %d", n)
	}
	if count != 5 {
		t.Errorf("Expected 5 callbacks total, got %d", count)
	}
}
