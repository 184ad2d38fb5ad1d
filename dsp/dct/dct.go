// Package dct implements the orthonormal DCT-II used for cepstral
// decorrelation, together with its DCT-III inverse.
package dct

import (
	"fmt"
	"math"
)

// Transform computes the orthonormal DCT-II of src, writing the first
// len(dst) coefficients:
//
//	dst[k] = sqrt(2/n) * w(k) * sum_i src[i] * cos(pi*k*(2i+1)/(2n))
//
// with w(0) = 1/sqrt(2) and w(k>0) = 1. len(dst) must be in [1, len(src)].
func Transform(dst, src []float32) error {
	n := len(src)
	m := len(dst)

	if n == 0 {
		return fmt.Errorf("dct: input must not be empty")
	}
	if m == 0 || m > n {
		return fmt.Errorf("dct: output length %d, want 1..%d", m, n)
	}

	scale := math.Sqrt(2 / float64(n))

	for k := 0; k < m; k++ {
		w := 1.0
		if k == 0 {
			w = 1 / math.Sqrt2
		}

		var sum float64
		for i := 0; i < n; i++ {
			sum += float64(src[i]) * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*float64(n)))
		}

		dst[k] = float32(scale * w * sum)
	}

	return nil
}

// Inverse computes the orthonormal DCT-III of src into dst, reconstructing
// len(dst) samples from len(src) coefficients:
//
//	dst[i] = sqrt(2/n) * (src[0]/sqrt(2) + sum_{k>=1} src[k] * cos(pi*k*(2i+1)/(2n)))
//
// With len(src) == len(dst) this is the exact inverse of [Transform];
// fewer coefficients give a smoothed reconstruction.
func Inverse(dst, src []float32) error {
	n := len(dst)
	m := len(src)

	if n == 0 {
		return fmt.Errorf("dct: output must not be empty")
	}
	if m == 0 || m > n {
		return fmt.Errorf("dct: input length %d, want 1..%d", m, n)
	}

	scale := math.Sqrt(2 / float64(n))

	for i := 0; i < n; i++ {
		sum := float64(src[0]) / math.Sqrt2
		for k := 1; k < m; k++ {
			sum += float64(src[k]) * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*float64(n)))
		}

		dst[i] = float32(scale * sum)
	}

	return nil
}
