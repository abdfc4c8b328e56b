package profile

import "fmt"

func ExampleMeasure() {
	axis := make([]float64, 401)
	for i := range axis {
		axis[i] = -10 + float64(i)*0.05
	}

	line := Gaussian(axis, 0, 2, 1)

	m, _ := Measure(axis, line)
	fmt.Printf("peak %.1f fwhm %.1f\n", m.Peak, m.FWHM)
	// Output:
	// peak 1.0 fwhm 2.0
}
