package profile

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// directThreshold is the kernel length below which time-domain convolution
// beats the FFT round trip.
const directThreshold = 32

// kernelExtent truncates the Gaussian kernel at this many sigmas.
const kernelExtent = 4.0

// Broaden convolves a profile sampled with the given step by a normalized
// Gaussian kernel of the given FWHM (same units as step). The output has the
// same length as the input and, because the kernel has unit area, the same
// integrated flux up to edge effects.
func Broaden(prof []float64, kernelFWHM, step float64) ([]float64, error) {
	if len(prof) == 0 {
		return nil, ErrEmptyProfile
	}

	if step <= 0 {
		return nil, fmt.Errorf("profile: step must be > 0: %f", step)
	}

	if kernelFWHM <= 0 {
		return nil, fmt.Errorf("profile: kernel FWHM must be > 0: %f", kernelFWHM)
	}

	kernel := gaussianKernel(kernelFWHM, step)
	if len(kernel) == 1 {
		// Kernel narrower than the sampling collapses to a delta.
		return append([]float64(nil), prof...), nil
	}

	if len(kernel) < directThreshold {
		return convolveDirect(prof, kernel), nil
	}

	return convolveFFT(prof, kernel)
}

// gaussianKernel samples a unit-area Gaussian at the profile step,
// truncated at ±kernelExtent sigmas. The returned length is odd.
func gaussianKernel(fwhm, step float64) []float64 {
	sigma := fwhm / FWHMToSigma

	// Support inside half a sample: the kernel is a delta.
	if kernelExtent*sigma <= step/2 {
		return []float64{1}
	}

	half := int(math.Ceil(kernelExtent * sigma / step))

	kernel := make([]float64, 2*half+1)

	sum := 0.0

	for i := range kernel {
		d := float64(i-half) * step / sigma
		kernel[i] = math.Exp(-0.5 * d * d)
		sum += kernel[i]
	}

	out := make([]float64, len(kernel))
	vecmath.ScaleBlock(out, kernel, 1/sum)

	return out
}

// convolveDirect computes same-length convolution in the time domain.
func convolveDirect(prof, kernel []float64) []float64 {
	half := len(kernel) / 2

	out := make([]float64, len(prof))

	for i := range out {
		acc := 0.0

		for k, kv := range kernel {
			j := i + k - half
			if j < 0 || j >= len(prof) {
				continue
			}

			acc += prof[j] * kv
		}

		out[i] = acc
	}

	return out
}

// convolveFFT computes same-length convolution via the frequency domain.
func convolveFFT(prof, kernel []float64) ([]float64, error) {
	n := len(prof)
	m := len(kernel)
	half := m / 2

	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to create FFT plan: %w", err)
	}

	profPadded := make([]complex128, fftSize)
	kernelPadded := make([]complex128, fftSize)

	for i, v := range prof {
		profPadded[i] = complex(v, 0)
	}

	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	profFreq := make([]complex128, fftSize)
	kernelFreq := make([]complex128, fftSize)

	if err := plan.Forward(profFreq, profPadded); err != nil {
		return nil, err
	}

	if err := plan.Forward(kernelFreq, kernelPadded); err != nil {
		return nil, err
	}

	for i := range profFreq {
		profFreq[i] *= kernelFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, profFreq); err != nil {
		return nil, err
	}

	// Centered slice of the full convolution gives same-length output.
	out := make([]float64, n)
	for i := range out {
		out[i] = real(resultTime[i+half])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
