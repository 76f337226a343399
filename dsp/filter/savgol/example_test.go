package savgol_test

import (
	"fmt"

	"github.com/cwbudde/algo-tprofile/dsp/filter/savgol"
)

func ExampleFilter_Apply() {
	f, err := savgol.New(5, 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	// A spike on a flat trace is spread out and attenuated.
	y, _ := f.Apply([]float64{0, 0, 0, 0, 35, 0, 0, 0, 0})
	for _, v := range y {
		fmt.Printf("%.0f ", v)
	}
	fmt.Println()

	// Output:
	// 0 0 -3 12 17 12 -3 0 0
}

func ExampleCoefficients() {
	c, _ := savgol.Coefficients(5, 2, 0, 1)
	for _, v := range c {
		fmt.Printf("%.0f ", v*35)
	}
	fmt.Println()

	// Output:
	// -3 12 17 12 -3
}
