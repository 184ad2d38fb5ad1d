// Package signal generates deterministic test signals for the
// feature-extraction pipeline.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Sine generates a sine wave of the given frequency and amplitude.
func Sine(freqHz, amplitude, sampleRate float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("signal: sine sample rate must be > 0: %g", sampleRate)
	}

	out := make([]float32, samples)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}

	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude]
// from the given seed.
func WhiteNoise(amplitude float64, samples int, seed int64) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %g", amplitude)
	}

	out := make([]float32, samples)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}

	return out, nil
}
