package dct

import (
	"math"
	"math/rand"
	"testing"
)

func TestConstantInputConcentratesInDC(t *testing.T) {
	src := []float32{1, 1, 1, 1}
	dst := make([]float32, 4)

	if err := Transform(dst, src); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	// Orthonormal DCT-II of a constant vector: c0 = sum/sqrt(n).
	if math.Abs(float64(dst[0])-2) > 1e-6 {
		t.Fatalf("c0=%g want 2", dst[0])
	}

	for k := 1; k < 4; k++ {
		if math.Abs(float64(dst[k])) > 1e-6 {
			t.Fatalf("c%d=%g want 0", k, dst[k])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(31))

	for _, n := range []int{1, 2, 13, 26, 40} {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(r.Float64()*20 - 10)
		}

		coeffs := make([]float32, n)
		if err := Transform(coeffs, src); err != nil {
			t.Fatalf("n=%d Transform: %v", n, err)
		}

		back := make([]float32, n)
		if err := Inverse(back, coeffs); err != nil {
			t.Fatalf("n=%d Inverse: %v", n, err)
		}

		for i := range src {
			if math.Abs(float64(back[i]-src[i])) > 1e-3 {
				t.Fatalf("n=%d round trip mismatch at %d: got %g want %g", n, i, back[i], src[i])
			}
		}
	}
}

// TestOrthonormality checks that the energy of the full transform matches
// the input energy.
func TestOrthonormality(t *testing.T) {
	r := rand.New(rand.NewSource(32))

	n := 26
	src := make([]float32, n)
	for i := range src {
		src[i] = float32(r.Float64()*2 - 1)
	}

	coeffs := make([]float32, n)
	if err := Transform(coeffs, src); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	var in, out float64
	for i := range src {
		in += float64(src[i]) * float64(src[i])
		out += float64(coeffs[i]) * float64(coeffs[i])
	}

	if math.Abs(in-out)/in > 1e-4 {
		t.Fatalf("energy not preserved: in=%g out=%g", in, out)
	}
}

func TestTruncatedOutput(t *testing.T) {
	src := make([]float32, 26)
	for i := range src {
		src[i] = float32(i)
	}

	full := make([]float32, 26)
	if err := Transform(full, src); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	truncated := make([]float32, 13)
	if err := Transform(truncated, src); err != nil {
		t.Fatalf("truncated Transform: %v", err)
	}

	for k := range truncated {
		if truncated[k] != full[k] {
			t.Fatalf("truncation changed coefficient %d: %g != %g", k, truncated[k], full[k])
		}
	}
}

func TestValidation(t *testing.T) {
	if err := Transform(make([]float32, 1), nil); err == nil {
		t.Fatal("accepted empty input")
	}
	if err := Transform(nil, make([]float32, 4)); err == nil {
		t.Fatal("accepted empty output")
	}
	if err := Transform(make([]float32, 5), make([]float32, 4)); err == nil {
		t.Fatal("accepted m > n")
	}
	if err := Inverse(make([]float32, 4), make([]float32, 5)); err == nil {
		t.Fatal("Inverse accepted m > n")
	}
}
