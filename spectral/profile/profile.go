package profile

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by profile functions.
var (
	ErrEmptyProfile   = errors.New("profile: empty profile")
	ErrLengthMismatch = errors.New("profile: axis and profile length mismatch")
	ErrNoHalfMaximum  = errors.New("profile: profile does not fall to half maximum")
)

// FWHMToSigma is the ratio between a Gaussian full width at half maximum
// and its standard deviation, 2·sqrt(2·ln2).
const FWHMToSigma = 2.3548200450309493

// Gaussian evaluates a Gaussian line profile over axis:
//
//	f(x) = A · exp(-(x-x0)² / (2σ²)),  σ = FWHM / (2·sqrt(2·ln2))
func Gaussian(axis []float64, center, fwhm, amplitude float64) []float64 {
	if len(axis) == 0 || fwhm <= 0 {
		return nil
	}

	sigma := fwhm / FWHMToSigma

	out := make([]float64, len(axis))
	for i, x := range axis {
		d := (x - center) / sigma
		out[i] = amplitude * math.Exp(-0.5*d*d)
	}

	return out
}

// Moments holds the measured properties of a sampled line profile.
type Moments struct {
	// Peak is the largest sample value; PeakPos the axis position where it
	// occurs.
	Peak    float64
	PeakPos float64

	// Centroid is the intensity-weighted mean position.
	Centroid float64

	// Flux is the trapezoidal integral of the profile over the axis.
	Flux float64

	// FWHM is the width between the half-maximum crossings, found by
	// linear interpolation between samples.
	FWHM float64
}

// Measure computes [Moments] for a profile sampled over axis. The profile
// must contain a single emission peak that falls below half maximum on both
// sides; otherwise Measure returns [ErrNoHalfMaximum].
func Measure(axis, prof []float64) (Moments, error) {
	if len(prof) == 0 {
		return Moments{}, ErrEmptyProfile
	}

	if len(axis) != len(prof) {
		return Moments{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(axis), len(prof))
	}

	peakIdx := 0
	for i, v := range prof {
		if v > prof[peakIdx] {
			peakIdx = i
		}
	}

	m := Moments{
		Peak:    prof[peakIdx],
		PeakPos: axis[peakIdx],
	}

	if m.Peak <= 0 {
		return Moments{}, fmt.Errorf("profile: peak must be > 0: %f", m.Peak)
	}

	sum := 0.0
	weighted := 0.0

	for i, v := range prof {
		sum += v
		weighted += v * axis[i]
	}

	if sum != 0 {
		m.Centroid = weighted / sum
	}

	for i := 1; i < len(prof); i++ {
		m.Flux += 0.5 * (prof[i] + prof[i-1]) * (axis[i] - axis[i-1])
	}

	half := m.Peak / 2

	left, okL := crossing(axis, prof, peakIdx, -1, half)
	right, okR := crossing(axis, prof, peakIdx, 1, half)

	if !okL || !okR {
		return Moments{}, ErrNoHalfMaximum
	}

	m.FWHM = math.Abs(right - left)

	return m, nil
}

// crossing walks from the peak in the given direction until the profile
// drops below the threshold and interpolates the crossing position.
func crossing(axis, prof []float64, peakIdx, dir int, threshold float64) (float64, bool) {
	for i := peakIdx + dir; i >= 0 && i < len(prof); i += dir {
		if prof[i] >= threshold {
			continue
		}

		prev := i - dir

		frac := (prof[prev] - threshold) / (prof[prev] - prof[i])

		return axis[prev] + frac*(axis[i]-axis[prev]), true
	}

	return 0, false
}
