package axes

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-astro/internal/testutil"
)

func TestFixUniform(t *testing.T) {
	axis := []float64{10, 12, 14, 16, 18}

	got, err := Fix(axis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{9, 11, 13, 15, 17}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestFixDescending(t *testing.T) {
	axis := []float64{5, 4, 3, 2}

	got, err := Fix(axis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{5.5, 4.5, 3.5, 2.5}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestFixNonUniformWarns(t *testing.T) {
	// Middle position shifted by a quarter step.
	axis := []float64{0, 1, 2.25, 3, 4}

	got, err := Fix(axis)
	if !errors.Is(err, ErrNonUniform) {
		t.Fatalf("err=%v, want ErrNonUniform", err)
	}

	// The replacement axis is still produced.
	want := []float64{-0.5, 0.5, 1.5, 2.5, 3.5}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestFixToleranceOption(t *testing.T) {
	axis := []float64{0, 1, 2.25, 3, 4}

	if _, err := Fix(axis, WithTolerance(0.3)); err != nil {
		t.Fatalf("deviation within widened tolerance, got error: %v", err)
	}

	if _, err := Fix(axis, WithTolerance(0.1)); !errors.Is(err, ErrNonUniform) {
		t.Fatal("expected ErrNonUniform with tight tolerance")
	}
}

func TestFixInvalidInputs(t *testing.T) {
	if _, err := Fix(nil); err == nil {
		t.Fatal("expected error for empty axis")
	}

	if _, err := Fix([]float64{1}); err == nil {
		t.Fatal("expected error for single position")
	}

	if _, err := Fix([]float64{2, 2, 2}); err == nil {
		t.Fatal("expected error for zero span")
	}

	if _, err := Fix([]float64{0, math.NaN(), 2}); err == nil {
		t.Fatal("expected error for NaN position")
	}
}

func TestAnalyze(t *testing.T) {
	axis := []float64{100, 100.5, 101, 101.5}

	an, err := Analyze(axis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(an.Step-0.5) > 1e-12 {
		t.Fatalf("step=%v, want 0.5", an.Step)
	}

	if math.Abs(an.Slope-0.5) > 1e-9 {
		t.Fatalf("slope=%v, want 0.5", an.Slope)
	}

	if math.Abs(an.Intercept-100) > 1e-9 {
		t.Fatalf("intercept=%v, want 100", an.Intercept)
	}

	if an.MaxAbsDeviation != 0 || an.MaxRelDeviation != 0 {
		t.Fatalf("uniform axis reported deviation: %+v", an)
	}
}

func TestAnalyzeDeviation(t *testing.T) {
	axis := []float64{0, 1.1, 2}

	an, err := Analyze(axis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(an.MaxAbsDeviation-0.1) > 1e-12 {
		t.Fatalf("abs deviation=%v, want 0.1", an.MaxAbsDeviation)
	}

	if math.Abs(an.MaxRelDeviation-0.1) > 1e-12 {
		t.Fatalf("rel deviation=%v, want 0.1", an.MaxRelDeviation)
	}
}
