package engine

import "testing"

func TestHistoryFIFOEviction(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		evicted := h.Append(Sample{Step: uint64(i), CountA: i, CountB: 10 - i})
		if want := i > 3; evicted != want {
			t.Errorf("Append #%d: evicted=%v, want %v", i, evicted, want)
		}
		if h.Len() > h.Cap() {
			t.Fatalf("Len %d exceeds capacity %d", h.Len(), h.Cap())
		}
	}

	got := h.Samples(nil)
	if len(got) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(got))
	}
	for i, s := range got {
		if want := uint64(i + 3); s.Step != want {
			t.Errorf("Sample %d: step %d, want %d", i, s.Step, want)
		}
	}

	latest, ok := h.Latest()
	if !ok || latest.Step != 5 {
		t.Errorf("Latest = %+v, %v; want step 5", latest, ok)
	}
}

func TestHistoryDefaultCapacity(t *testing.T) {
	h := NewHistory(DefaultTuning().HistoryCap)
	for i := 0; i < 450; i++ {
		h.Append(Sample{Step: uint64(i)})
	}
	if h.Len() != 200 {
		t.Fatalf("Expected 200 samples, got %d", h.Len())
	}

	samples := h.Samples(nil)
	if samples[0].Step != 250 || samples[199].Step != 449 {
		t.Errorf("Expected window [250, 449], got [%d, %d]", samples[0].Step, samples[199].Step)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Step <= samples[i-1].Step {
			t.Fatalf("Samples out of order at %d", i)
		}
	}
}

func TestHistoryResetAndEmpty(t *testing.T) {
	h := NewHistory(0)
	if h.Cap() != 1 {
		t.Errorf("Expected capacity clamped to 1, got %d", h.Cap())
	}
	if _, ok := h.Latest(); ok {
		t.Error("Expected no latest sample on empty history")
	}

	h.Append(Sample{Step: 1})
	h.Append(Sample{Step: 2})
	h.Reset()
	if h.Len() != 0 || len(h.Samples(nil)) != 0 {
		t.Errorf("Expected empty history after Reset, got %d", h.Len())
	}

	h.Append(Sample{Step: 7})
	if s, _ := h.Latest(); s.Step != 7 {
		t.Errorf("Expected step 7 after reuse, got %d", s.Step)
	}
}
