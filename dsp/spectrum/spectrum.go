// Package spectrum derives power spectra from complex FFT output.
package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-mfcc/internal/vecmath"
)

// PowerFloor is added to every bin so downstream logarithms stay finite even
// for silent input.
const PowerFloor = 1e-10

// Power computes dst[i] = re[i]^2 + im[i]^2 + PowerFloor.
// All three slices must have the same length; dst may alias re or im.
func Power(dst, re, im []float32) error {
	if len(dst) != len(re) || len(re) != len(im) {
		return fmt.Errorf("spectrum: length mismatch: dst=%d re=%d im=%d", len(dst), len(re), len(im))
	}

	vecmath.Power(dst, re, im)
	for i := range dst {
		dst[i] += PowerFloor
	}

	return nil
}

// PowerInterleaved computes the power spectrum of an interleaved complex
// spectrum x (2n values for an n-point FFT), writing the n/2+1 bins from DC
// to Nyquist into dst.
func PowerInterleaved(dst, x []float32) error {
	if len(x) == 0 || len(x)%4 != 0 {
		return fmt.Errorf("spectrum: interleaved length must be a positive multiple of 4: %d", len(x))
	}

	bins := len(x)/4 + 1
	if len(dst) != bins {
		return fmt.Errorf("spectrum: dst length %d, want %d bins", len(dst), bins)
	}

	for k := 0; k < bins; k++ {
		re := x[2*k]
		im := x[2*k+1]
		dst[k] = re*re + im*im + PowerFloor
	}

	return nil
}
