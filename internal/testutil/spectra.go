package testutil

import "math"

// fwhmToSigma converts a full width at half maximum to a Gaussian sigma.
const fwhmToSigma = 2.3548200450309493 // 2*sqrt(2*ln 2)

// UniformAxis generates n uniformly spaced positions starting at start.
func UniformAxis(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// GaussianLine evaluates a Gaussian line profile over axis.
func GaussianLine(axis []float64, center, fwhm, amplitude float64) []float64 {
	sigma := fwhm / fwhmToSigma

	out := make([]float64, len(axis))
	for i, x := range axis {
		d := (x - center) / sigma
		out[i] = amplitude * math.Exp(-0.5*d*d)
	}

	return out
}

// VelocityPlane generates a deterministic w-by-h velocity field spanning
// [-vmax, vmax] row by row, useful for byte-scaling tests.
func VelocityPlane(w, h int, vmax float64) []float64 {
	out := make([]float64, w*h)
	for i := range out {
		if len(out) > 1 {
			out[i] = -vmax + 2*vmax*float64(i)/float64(len(out)-1)
		}
	}

	return out
}
