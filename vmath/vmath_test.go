package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-3, 0, 1, 0},
		{7, 0, 1, 1},
		{math.NaN(), 0, 1, 0},
		{math.Inf(1), 0, 100, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(0)
	for i := 0; i < 10000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn out of range: %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) must return 0")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at %d", i)
		}
	}
}

func TestClampMagnitude(t *testing.T) {
	v, clamped := V2(3, 4).ClampMagnitude(10)
	if clamped || v != V2(3, 4) {
		t.Errorf("Expected unchanged vector, got %v clamped=%v", v, clamped)
	}

	v, clamped = V2(30, 40).ClampMagnitude(5)
	if !clamped || math.Abs(v.Mag()-5) > 1e-9 {
		t.Errorf("Expected magnitude 5, got %v clamped=%v", v.Mag(), clamped)
	}
	if math.Abs(v.X/v.Y-0.75) > 1e-9 {
		t.Errorf("Direction not preserved: %v", v)
	}

	if v, _ := V2(1, 1).ClampMagnitude(0); v != (Vec2{}) {
		t.Errorf("Expected zero vector for zero cap, got %v", v)
	}
}

func TestBezierThroughMidpoint(t *testing.T) {
	start, mid, end := V2(2, 3), V2(20, 8), V2(35, 14)

	for _, bend := range []Vec2{{}, V2(0, 4), V2(-2.5, 1)} {
		b := BezierThrough(start, mid, end, bend)
		if b.At(0) != start || b.At(1) != end {
			t.Errorf("Endpoints wrong: %v %v", b.At(0), b.At(1))
		}
		if got := b.At(0.5); got.Dist(mid) > 1e-9 {
			t.Errorf("bend %v: At(0.5) = %v, want %v", bend, got, mid)
		}
		if b.At(-1) != start || b.At(2) != end {
			t.Error("Expected t clamped to [0, 1]")
		}
	}
}
