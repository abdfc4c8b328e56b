package axes

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrNonUniform reports that the input axis deviates from uniform spacing by
// more than the configured tolerance. Fix still returns a usable axis; the
// caller decides whether the deviation matters.
var ErrNonUniform = errors.New("axes: axis spacing is non-uniform")

const defaultTolerance = 1e-2

// Option configures Fix.
type Option func(*config)

type config struct {
	tolerance float64
}

func defaultConfig() config {
	return config{tolerance: defaultTolerance}
}

// WithTolerance sets the maximum relative deviation from uniform spacing
// accepted without an [ErrNonUniform] result.
func WithTolerance(v float64) Option {
	return func(c *config) {
		if v > 0 {
			c.tolerance = v
		}
	}
}

// Analysis describes how close an axis is to uniform spacing.
type Analysis struct {
	// Step is the uniform spacing implied by the axis endpoints.
	Step float64

	// Slope and Intercept are the least squares fit of position against
	// sample index.
	Slope     float64
	Intercept float64

	// MaxAbsDeviation is the largest distance of any input position from
	// the endpoint-derived uniform axis; MaxRelDeviation is the same
	// relative to the step size.
	MaxAbsDeviation float64
	MaxRelDeviation float64
}

// Analyze measures the deviation of axis from uniform spacing.
func Analyze(axis []float64) (Analysis, error) {
	n := len(axis)
	if n < 2 {
		return Analysis{}, fmt.Errorf("axes: need at least 2 positions: %d", n)
	}

	for i, v := range axis {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Analysis{}, fmt.Errorf("axes: position %d is not finite: %v", i, v)
		}
	}

	step := (axis[n-1] - axis[0]) / float64(n-1)
	if step == 0 {
		return Analysis{}, fmt.Errorf("axes: axis has zero span: %v", axis[0])
	}

	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(idx, axis, nil, false)

	out := Analysis{
		Step:      step,
		Slope:     slope,
		Intercept: intercept,
	}

	for i, v := range axis {
		dev := math.Abs(v - (axis[0] + float64(i)*step))
		if dev > out.MaxAbsDeviation {
			out.MaxAbsDeviation = dev
		}
	}

	out.MaxRelDeviation = out.MaxAbsDeviation / math.Abs(step)

	return out, nil
}

// Fix replaces axis with a uniformly spaced axis of the same length, shifted
// by half a step so bin centers become bin edges:
//
//	out[i] = axis[0] + (i - 0.5) · step
//
// with step derived from the axis endpoints. Descending axes keep their
// direction. When the input deviates from uniform spacing by more than the
// tolerance, Fix returns the axis together with an error wrapping
// [ErrNonUniform].
func Fix(axis []float64, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	an, err := Analyze(axis)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(axis))
	for i := range out {
		out[i] = axis[0] + (float64(i)-0.5)*an.Step
	}

	if an.MaxRelDeviation > cfg.tolerance {
		return out, fmt.Errorf("%w: max relative deviation %.3g exceeds tolerance %.3g",
			ErrNonUniform, an.MaxRelDeviation, cfg.tolerance)
	}

	return out, nil
}
