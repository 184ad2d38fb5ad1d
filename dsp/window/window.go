// Package window provides the Hamming analysis window used by the MFCC
// pipeline.
//
// Coefficients for a given size are generated once and cached, since frame
// extraction applies the same window to every frame.
package window

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-mfcc/internal/vecmath"
)

// Hamming window coefficients: w[i] = a0 - a1*cos(2*pi*i/(size-1)).
const (
	hammingA0 = 0.54
	hammingA1 = 0.46
)

// Hamming returns Hamming window coefficients of the given size.
// Size must be at least 2; the symmetric form's denominator vanishes below
// that.
func Hamming(size int) ([]float32, error) {
	if size <= 1 {
		return nil, fmt.Errorf("window: size must be > 1: %d", size)
	}

	cached := coefficients(size)

	out := make([]float32, size)
	copy(out, cached)

	return out, nil
}

// Apply multiplies buf in place by the Hamming window of matching size.
// len(buf) must be at least 2.
func Apply(buf []float32) error {
	if len(buf) <= 1 {
		return fmt.Errorf("window: size must be > 1: %d", len(buf))
	}

	vecmath.MulBlockInPlace(buf, coefficients(len(buf)))

	return nil
}

var coeffCache = struct {
	sync.RWMutex
	m map[int][]float32
}{m: make(map[int][]float32)}

func coefficients(size int) []float32 {
	coeffCache.RLock()
	w, ok := coeffCache.m[size]
	coeffCache.RUnlock()

	if ok {
		return w
	}

	coeffCache.Lock()
	defer coeffCache.Unlock()

	if w, ok = coeffCache.m[size]; ok {
		return w
	}

	w = make([]float32, size)
	step := 2 * math.Pi / float64(size-1)
	for i := range w {
		w[i] = float32(hammingA0 - hammingA1*math.Cos(step*float64(i)))
	}

	coeffCache.m[size] = w

	return w
}
