// Package mel implements the Mel-scale triangular filter bank stage of the
// MFCC pipeline.
//
// A filter bank is an immutable matrix of numFilters rows over the
// fftSize/2+1 power-spectrum bins. Each row rises linearly from 0 at its
// left edge to 1 at its center and falls back to 0 at its right edge, with
// adjacent filters overlapping at 50% so interior bins always see weights
// summing to one. Banks are pure functions of (numFilters, fftSize,
// sampleRate) and are shared through a cache keyed on exactly that triple,
// so concurrent callers with different parameters never observe each other's
// bank.
package mel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-mfcc/dsp/core"
	"github.com/cwbudde/algo-mfcc/internal/vecmath"
)

// energyFloor keeps filter energies strictly positive before the log.
const energyFloor = 1e-10

// HzToMel converts a frequency in Hz to the Mel scale.
func HzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// MelToHz converts a Mel value back to Hz. Inverse of [HzToMel] up to
// floating-point rounding.
func MelToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// FilterBank holds the triangular filter matrix for one parameter triple.
// It is immutable after construction and safe for concurrent use.
type FilterBank struct {
	numFilters int
	fftSize    int
	sampleRate float64
	weights    [][]float32
}

// New builds a filter bank of numFilters triangular filters over the
// fftSize/2+1 spectrum bins of an fftSize-point FFT at the given sample
// rate.
func New(numFilters, fftSize int, sampleRate float64) (*FilterBank, error) {
	if numFilters <= 0 {
		return nil, fmt.Errorf("mel: numFilters must be > 0: %d", numFilters)
	}
	if fftSize < 2 || fftSize%2 != 0 {
		return nil, fmt.Errorf("mel: fftSize must be even and >= 2: %d", fftSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("mel: sampleRate must be > 0: %g", sampleRate)
	}

	melMin := HzToMel(0)
	melMax := HzToMel(sampleRate / 2)

	// numFilters+2 points evenly spaced on the Mel scale, mapped to
	// spectrum bin indices clamped to [1, fftSize/2].
	points := numFilters + 2
	bin := make([]int, points)
	for i := range bin {
		mel := melMin + float64(i)*(melMax-melMin)/float64(points-1)
		hz := MelToHz(mel)
		idx := int(math.Round(float64(fftSize+1) * hz / sampleRate))
		bin[i] = core.ClampInt(idx, 1, fftSize/2)
	}

	bins := fftSize/2 + 1
	weights := make([][]float32, numFilters)

	for i := range weights {
		row := make([]float32, bins)
		left, center, right := bin[i], bin[i+1], bin[i+2]

		// Zero-width segments (equal bin indices after clamping)
		// contribute nothing rather than dividing by zero.
		if center > left {
			for j := left; j < center; j++ {
				row[j] = float32(j-left) / float32(center-left)
			}
		}
		if right > center {
			for j := center; j < right; j++ {
				row[j] = 1 - float32(j-center)/float32(right-center)
			}
		}

		weights[i] = row
	}

	return &FilterBank{
		numFilters: numFilters,
		fftSize:    fftSize,
		sampleRate: sampleRate,
		weights:    weights,
	}, nil
}

// NumFilters returns the number of filters in the bank.
func (fb *FilterBank) NumFilters() int { return fb.numFilters }

// Bins returns the number of spectrum bins each filter spans (fftSize/2+1).
func (fb *FilterBank) Bins() int { return fb.fftSize/2 + 1 }

// Weights returns the weight row of filter i. The returned slice is shared
// and must not be modified.
func (fb *FilterBank) Weights(i int) []float32 {
	return fb.weights[i]
}

// Apply computes the log filter-bank energies of a power spectrum:
// dst[i] = log(max(energyFloor, power . weights[i])).
// len(power) must equal Bins() and len(dst) must equal NumFilters().
func (fb *FilterBank) Apply(dst, power []float32) error {
	if len(dst) != fb.numFilters {
		return fmt.Errorf("mel: dst length %d, want %d filters", len(dst), fb.numFilters)
	}
	if len(power) != fb.Bins() {
		return fmt.Errorf("mel: power length %d, want %d bins", len(power), fb.Bins())
	}

	for i, row := range fb.weights {
		energy := vecmath.DotProduct(power, row)
		if energy < energyFloor {
			energy = energyFloor
		}

		dst[i] = melLog(energy)
	}

	return nil
}
