package thermal

import "fmt"

func errMass(massAMU float64) error {
	return fmt.Errorf("thermal: ion mass must be > 0 amu: %f", massAMU)
}

func errTemperature(tempK float64) error {
	return fmt.Errorf("thermal: temperature must be > 0 K: %f", tempK)
}

func errWavelength(wavelength float64) error {
	return fmt.Errorf("thermal: wavelength must be > 0: %f", wavelength)
}
