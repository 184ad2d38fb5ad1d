//go:build !fastmath

package mel

import "math"

// melLog is the natural logarithm applied to filter energies.
func melLog(x float32) float32 {
	return float32(math.Log(float64(x)))
}
