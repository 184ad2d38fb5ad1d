//go:build fastmath

package mel

import "github.com/meko-christian/algo-approx"

// melLog is the natural logarithm applied to filter energies.
// The fastmath build trades a few ULPs of accuracy for throughput in the
// per-filter hot loop.
func melLog(x float32) float32 {
	return float32(approx.FastLog(float64(x)))
}
