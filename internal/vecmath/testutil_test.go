package vecmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-mfcc/internal/cpu"
)

const relTol = 1e-5

func relClose(a, b, tol float64) bool {
	diff := math.Abs(a - b)
	if diff <= tol {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))

	return diff/largest <= tol
}

func randomBlock(r *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(r.Float64()*2 - 1)
	}

	return out
}

// forceWide makes useWide select the 4-wide kernels regardless of hardware.
func forceWide(t *testing.T) {
	t.Helper()
	cpu.SetForcedFeatures(cpu.Features{HasSSE2: true, HasNEON: true, Architecture: "test"})
	t.Cleanup(cpu.ResetDetection)
}

// forceScalar disables the 4-wide kernels.
func forceScalar(t *testing.T) {
	t.Helper()
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true, Architecture: "test"})
	t.Cleanup(cpu.ResetDetection)
}
