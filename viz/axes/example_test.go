package axes

import "fmt"

func ExampleFix() {
	centers := []float64{10, 12, 14, 16}

	edges, _ := Fix(centers)
	fmt.Println(edges)
	// Output:
	// [9 11 13 15]
}
