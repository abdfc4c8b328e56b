package velfield

import (
	"fmt"
	"math"
)

func ExampleScale() {
	// Velocities in km/s; NaN marks a pixel without a line detection.
	data := []float64{-30, 0, 30, math.NaN()}

	idx, _ := Scale(data, -30, 30)
	fmt.Println(idx)
	// Output:
	// [1 128 254 0]
}
