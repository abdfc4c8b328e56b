package thermal

import "math"

// Physical constants in SI units (CODATA 2018).
const (
	// SpeedOfLight is the speed of light in vacuum, m/s.
	SpeedOfLight = 2.99792458e8

	// Boltzmann is the Boltzmann constant, J/K.
	Boltzmann = 1.380649e-23

	// AtomicMassUnit is the unified atomic mass unit, kg.
	AtomicMassUnit = 1.66053906892e-27
)

// eightLn2 appears in the Gaussian FWHM relation FWHM = sqrt(8 ln 2) sigma.
const eightLn2 = 8 * math.Ln2

// Option configures width calculations.
type Option func(*config)

type config struct {
	logTemp bool
}

func defaultConfig() config {
	return config{}
}

// WithLogTemperature interprets the temperature argument as log10(T/K)
// instead of Kelvin.
func WithLogTemperature() Option {
	return func(c *config) {
		c.logTemp = true
	}
}

// FWHMVelocity returns the thermal full width at half maximum of a line
// emitted by ions of the given mass (in atomic mass units) at the given
// temperature, expressed as a velocity in km/s:
//
//	v = sqrt(8 ln2 · kB·T / m)
func FWHMVelocity(massAMU, temp float64, opts ...Option) (float64, error) {
	tempK, err := resolve(massAMU, temp, opts)
	if err != nil {
		return 0, err
	}

	m := massAMU * AtomicMassUnit

	return math.Sqrt(eightLn2*Boltzmann*tempK/m) / 1000, nil
}

// FWHM returns the thermal full width at half maximum in the units of
// wavelength: Δλ = (λ/c) · sqrt(8 ln2 · kB·T / m).
func FWHM(wavelength, massAMU, temp float64, opts ...Option) (float64, error) {
	if wavelength <= 0 {
		return 0, errWavelength(wavelength)
	}

	v, err := FWHMVelocity(massAMU, temp, opts...)
	if err != nil {
		return 0, err
	}

	return VelocityToWidth(v, wavelength), nil
}

// MeanSpeed returns the Maxwell–Boltzmann mean ion speed in km/s:
//
//	v = sqrt(8 · kB·T / (π·m))
func MeanSpeed(massAMU, temp float64, opts ...Option) (float64, error) {
	tempK, err := resolve(massAMU, temp, opts)
	if err != nil {
		return 0, err
	}

	m := massAMU * AtomicMassUnit

	return math.Sqrt(8*Boltzmann*tempK/(math.Pi*m)) / 1000, nil
}

// VelocityToWidth converts a velocity in km/s to a wavelength width in the
// units of wavelength: Δλ = λ·v/c.
func VelocityToWidth(velocityKmS, wavelength float64) float64 {
	return wavelength * velocityKmS * 1000 / SpeedOfLight
}

// WidthToVelocity converts a wavelength width (same units as wavelength) to
// a velocity in km/s.
func WidthToVelocity(width, wavelength float64) float64 {
	if wavelength == 0 {
		return 0
	}

	return width / wavelength * SpeedOfLight / 1000
}

// resolve validates mass and temperature and expands log-temperature input.
func resolve(massAMU, temp float64, opts []Option) (float64, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if massAMU <= 0 {
		return 0, errMass(massAMU)
	}

	tempK := temp
	if cfg.logTemp {
		tempK = math.Pow(10, temp)
	}

	if tempK <= 0 || math.IsNaN(tempK) || math.IsInf(tempK, 0) {
		return 0, errTemperature(tempK)
	}

	return tempK, nil
}
