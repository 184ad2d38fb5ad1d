package dct_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-mfcc/dsp/dct"
)

func ExampleTransform() {
	energies := []float32{1, 1, 1, 1}

	coeffs := make([]float32, 4)
	if err := dct.Transform(coeffs, energies); err != nil {
		panic(err)
	}

	// A constant vector concentrates entirely in coefficient 0.
	var residual float64
	for _, c := range coeffs[1:] {
		residual = math.Max(residual, math.Abs(float64(c)))
	}

	fmt.Printf("c0=%.2f residual<1e-6: %v\n", coeffs[0], residual < 1e-6)
	// Output:
	// c0=2.00 residual<1e-6: true
}
