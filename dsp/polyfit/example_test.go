package polyfit_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tprofile/dsp/polyfit"
)

func ExampleFit() {
	// Six points of y = x^2: a quintic interpolates them exactly.
	x := polyfit.Linspace(0, 5, 6)
	y := []float64{0, 1, 4, 9, 16, 25}

	p, err := polyfit.Fit(x, y, 5)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, v := range p.EvalAll(x) {
		fmt.Printf("%.3f ", math.Round(v*1000)/1000+0) // +0 avoids printing -0.000
	}
	fmt.Println()

	// Output:
	// 0.000 1.000 4.000 9.000 16.000 25.000
}
