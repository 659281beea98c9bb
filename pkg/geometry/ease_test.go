package geometry

import (
	"math"
	"testing"
)

func TestEaseInOutQuadEndpoints(t *testing.T) {
	if EaseInOutQuad(0) != 0 {
		t.Errorf("ease at 0 should be 0, got %v", EaseInOutQuad(0))
	}
	if EaseInOutQuad(1) != 1 {
		t.Errorf("ease at 1 should be 1, got %v", EaseInOutQuad(1))
	}
	if math.Abs(EaseInOutQuad(0.5)-0.5) > 1e-12 {
		t.Errorf("ease at 0.5 should be 0.5, got %v", EaseInOutQuad(0.5))
	}
}

func TestEaseInOutQuadMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOutQuad(float64(i) / 100)
		if v < prev {
			t.Fatalf("ease not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestEaseInOutQuadClamps(t *testing.T) {
	if EaseInOutQuad(-1) != 0 {
		t.Errorf("ease below range should clamp to 0, got %v", EaseInOutQuad(-1))
	}
	if EaseInOutQuad(2) != 1 {
		t.Errorf("ease above range should clamp to 1, got %v", EaseInOutQuad(2))
	}
}
