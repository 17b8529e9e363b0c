package status

import (
	"strings"
	"sync"
	"testing"
)

func TestAtomicFloatUpdate(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Fatalf("zero value = %v, want 0", f.Get())
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Update(func(old float64) float64 { return old + 1 })
		}()
	}
	wg.Wait()

	if got := f.Get(); got != 50 {
		t.Errorf("after 50 concurrent increments got %v, want 50", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Fatalf("zero value = %q, want empty", s.Load())
	}

	s.Store("Susceptible")
	if s.Load() != "Susceptible" {
		t.Errorf("Load() = %q", s.Load())
	}

	long := strings.Repeat("é", MaxStringLen+5)
	s.Store(long)
	if got := []rune(s.Load()); len(got) != MaxStringLen {
		t.Errorf("stored %d runes, want %d", len(got), MaxStringLen)
	}
}

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("cached pointer value = %d, want 3", b.Load())
	}
}

func TestRegistryLinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTransitions).Store(7)
	r.Ints.Get(KeyBatches).Store(2)
	r.Floats.Get(KeyShareA).Set(0.25)
	r.Bools.Get(KeyRunning).Store(true)

	lines := r.Lines()
	want := []string{
		"engine.batches 2",
		"engine.transitions 7",
		"engine.share_a 0.250",
		"engine.running true",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
