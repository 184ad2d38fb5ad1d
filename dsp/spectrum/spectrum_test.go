package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath"
)

func TestPower(t *testing.T) {
	re := []float32{3, 0, -1}
	im := []float32{4, 2, 1}

	dst := make([]float32, 3)
	if err := Power(dst, re, im); err != nil {
		t.Fatalf("Power: %v", err)
	}

	want := []float64{25, 4, 2}
	for i := range dst {
		if math.Abs(float64(dst[i])-want[i]-PowerFloor) > 1e-6 {
			t.Fatalf("Power[%d]=%g want %g", i, dst[i], want[i])
		}
	}
}

func TestPowerIsStrictlyPositive(t *testing.T) {
	n := 64
	dst := make([]float32, n)

	if err := Power(dst, make([]float32, n), make([]float32, n)); err != nil {
		t.Fatalf("Power: %v", err)
	}

	for i, v := range dst {
		if v <= 0 {
			t.Fatalf("Power[%d]=%g, must be strictly positive", i, v)
		}
	}
}

func TestPowerLengthMismatch(t *testing.T) {
	if err := Power(make([]float32, 2), make([]float32, 3), make([]float32, 3)); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestPowerInterleaved(t *testing.T) {
	// 4-point spectrum: (1+2i), (3+4i), (5+6i), (7+8i).
	x := []float32{1, 2, 3, 4, 5, 6, 7, 8}

	dst := make([]float32, 3) // DC..Nyquist for n=4
	if err := PowerInterleaved(dst, x); err != nil {
		t.Fatalf("PowerInterleaved: %v", err)
	}

	want := []float64{5, 25, 61}
	for i := range dst {
		if math.Abs(float64(dst[i])-want[i]-PowerFloor) > 1e-5 {
			t.Fatalf("PowerInterleaved[%d]=%g want %g", i, dst[i], want[i])
		}
	}

	if err := PowerInterleaved(make([]float32, 2), x); err == nil {
		t.Fatal("expected bin count mismatch error")
	}
	if err := PowerInterleaved(dst, x[:6]); err == nil {
		t.Fatal("expected interleaved length error")
	}
}

// TestPowerMatchesFloat64Reference checks the float32 path against
// algo-vecmath's float64 implementation.
func TestPowerMatchesFloat64Reference(t *testing.T) {
	n := 513
	re := make([]float32, n)
	im := make([]float32, n)
	re64 := make([]float64, n)
	im64 := make([]float64, n)

	for i := 0; i < n; i++ {
		re[i] = float32(math.Sin(float64(i) * 0.1))
		im[i] = float32(math.Cos(float64(i) * 0.05))
		re64[i] = float64(re[i])
		im64[i] = float64(im[i])
	}

	dst := make([]float32, n)
	if err := Power(dst, re, im); err != nil {
		t.Fatalf("Power: %v", err)
	}

	ref := make([]float64, n)
	vecmath.Power(ref, re64, im64)

	for i := range dst {
		if math.Abs(float64(dst[i])-ref[i]-PowerFloor) > 1e-5 {
			t.Fatalf("Power[%d]=%g reference=%g", i, dst[i], ref[i])
		}
	}
}
