package testutil

import (
	"math"
	"testing"
)

func TestUniformAxis(t *testing.T) {
	axis := UniformAxis(10, 0.5, 5)

	want := []float64{10, 10.5, 11, 11.5, 12}
	RequireSliceNearlyEqual(t, axis, want, 1e-15)
}

func TestGaussianLine(t *testing.T) {
	axis := UniformAxis(-10, 0.01, 2001)
	line := GaussianLine(axis, 0, 2, 1)

	RequireFinite(t, line)

	// Peak of 1 at the center, half maximum one half-width out.
	RequireNearlyEqual(t, line[1000], 1, 1e-12)
	RequireNearlyEqual(t, line[1100], 0.5, 1e-9)
	RequireNearlyEqual(t, line[900], 0.5, 1e-9)
}

func TestVelocityPlane(t *testing.T) {
	plane := VelocityPlane(4, 4, 30)

	if len(plane) != 16 {
		t.Fatalf("len=%d, want 16", len(plane))
	}

	RequireNearlyEqual(t, plane[0], -30, 1e-12)
	RequireNearlyEqual(t, plane[15], 30, 1e-12)

	if !sortedAscending(plane) {
		t.Fatal("plane values must increase monotonically")
	}
}

func sortedAscending(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] || math.IsNaN(v[i]) {
			return false
		}
	}

	return true
}
