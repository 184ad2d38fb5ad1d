// Package fft implements an in-place radix-2 decimation-in-time FFT over
// interleaved single-precision complex buffers.
//
// A buffer of n complex samples is stored as 2n float32 values, sample i
// occupying indices 2i (real) and 2i+1 (imaginary). The forward transform is
// unscaled; [Inverse] applies the 1/n factor, so Inverse(Forward(x))
// recovers x up to floating-point rounding.
//
// Twiddle factors are computed once per transform size and kept in a
// read-mostly cache, and butterfly stages switch to a 4-wide unrolled kernel
// when the stage geometry and the host CPU allow it. Both execution paths
// produce results within floating-point reassociation tolerance of each
// other.
package fft

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-mfcc/dsp/core"
	"github.com/cwbudde/algo-mfcc/internal/cpu"
	"github.com/cwbudde/algo-mfcc/internal/vecmath"
)

// Errors returned by the transform entry points.
var (
	ErrInvalidSize    = errors.New("fft: size must be a positive power of two")
	ErrLengthMismatch = errors.New("fft: destination length must match source")
)

// Forward computes the unscaled DFT of the complex samples in src, writing
// interleaved complex output to dst. len(src) must be 2n for a power-of-two
// n and len(dst) must equal len(src). dst may be src (in-place transform).
//
// On error no output is written.
func Forward(dst, src []float32) error {
	n, err := validate(dst, src)
	if err != nil {
		return err
	}

	if &dst[0] != &src[0] {
		copy(dst, src)
	}

	transform(dst, n)

	return nil
}

// ForwardReal computes the unscaled DFT of n real samples. len(dst) must be
// 2*len(src); the imaginary parts are zero-initialized before transforming.
func ForwardReal(dst, src []float32) error {
	n := len(src)
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	if len(dst) != 2*n {
		return fmt.Errorf("%w: len(dst)=%d want %d", ErrLengthMismatch, len(dst), 2*n)
	}

	// Expand back to front so src may share dst's first half.
	for i := n - 1; i >= 0; i-- {
		dst[2*i] = src[i]
		dst[2*i+1] = 0
	}

	transform(dst, n)

	return nil
}

// Inverse computes the inverse DFT of src into dst, including the 1/n
// scaling, via the conjugate-forward-conjugate identity. Preconditions match
// [Forward]; dst may be src.
func Inverse(dst, src []float32) error {
	n, err := validate(dst, src)
	if err != nil {
		return err
	}

	// Conjugate into dst, run the forward transform in place, then
	// conjugate and scale the result.
	for i := 0; i < 2*n; i += 2 {
		dst[i] = src[i]
		dst[i+1] = -src[i+1]
	}

	transform(dst, n)

	for i := 1; i < 2*n; i += 2 {
		dst[i] = -dst[i]
	}
	vecmath.ScaleBlockInPlace(dst, float32(1)/float32(n))

	return nil
}

// SplitComplex unpacks an interleaved complex buffer into separate real and
// imaginary slices. len(re) and len(im) must both equal len(x)/2.
func SplitComplex(re, im, x []float32) error {
	if len(x)%2 != 0 || len(re) != len(x)/2 || len(im) != len(x)/2 {
		return fmt.Errorf("%w: re=%d im=%d x=%d", ErrLengthMismatch, len(re), len(im), len(x))
	}

	for i := range re {
		re[i] = x[2*i]
		im[i] = x[2*i+1]
	}

	return nil
}

// Interleave packs separate real and imaginary slices into an interleaved
// complex buffer. len(dst) must equal 2*len(re) and len(im) must equal len(re).
func Interleave(dst, re, im []float32) error {
	if len(re) != len(im) || len(dst) != 2*len(re) {
		return fmt.Errorf("%w: dst=%d re=%d im=%d", ErrLengthMismatch, len(dst), len(re), len(im))
	}

	for i := range re {
		dst[2*i] = re[i]
		dst[2*i+1] = im[i]
	}

	return nil
}

func validate(dst, src []float32) (int, error) {
	if len(src) == 0 || len(src)%2 != 0 || !core.IsPowerOfTwo(len(src)/2) {
		return 0, fmt.Errorf("%w: %d interleaved values", ErrInvalidSize, len(src))
	}

	if len(dst) != len(src) {
		return 0, fmt.Errorf("%w: len(dst)=%d want %d", ErrLengthMismatch, len(dst), len(src))
	}

	return len(src) / 2, nil
}

// transform runs the iterative radix-2 decimation-in-time FFT on x, holding
// n interleaved complex samples already copied into place.
func transform(x []float32, n int) {
	if n == 1 {
		return
	}

	bitReverse(x, n)

	tw := twiddles(n)

	for length := 2; length <= n; length <<= 1 {
		halfLen := length >> 1
		stride := n / length

		if halfLen >= 4 && cpu.HasSIMD() {
			stageWide(x, tw, n, length, halfLen, stride)
		} else {
			stageScalar(x, tw, n, length, halfLen, stride)
		}
	}
}

// bitReverse permutes the complex samples of x into bit-reversed order.
func bitReverse(x []float32, n int) {
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j >= bit; bit >>= 1 {
			j -= bit
		}
		j += bit

		if i < j {
			x[2*i], x[2*j] = x[2*j], x[2*i]
			x[2*i+1], x[2*j+1] = x[2*j+1], x[2*i+1]
		}
	}
}

// stageScalar combines pairs separated by halfLen, one butterfly at a time.
func stageScalar(x, tw []float32, n, length, halfLen, stride int) {
	for i := 0; i < n; i += length {
		for j := 0; j < halfLen; j++ {
			butterfly(x, tw, i+j, halfLen, j*stride)
		}
	}
}

// stageWide runs four butterflies per iteration. The twiddle, load, and
// store pattern mirrors a 4-lane vector unit; the compiler is free to keep
// the lanes in registers.
func stageWide(x, tw []float32, n, length, halfLen, stride int) {
	for i := 0; i < n; i += length {
		for j := 0; j < halfLen; j += 4 {
			butterfly(x, tw, i+j, halfLen, j*stride)
			butterfly(x, tw, i+j+1, halfLen, (j+1)*stride)
			butterfly(x, tw, i+j+2, halfLen, (j+2)*stride)
			butterfly(x, tw, i+j+3, halfLen, (j+3)*stride)
		}
	}
}

// butterfly applies one radix-2 butterfly: the samples at complex indices p
// and p+halfLen are combined using the twiddle factor at table index twIdx.
func butterfly(x, tw []float32, p, halfLen, twIdx int) {
	wr := tw[2*twIdx]
	wi := tw[2*twIdx+1]

	i1 := 2 * p
	i2 := 2 * (p + halfLen)

	tr := wr*x[i2] - wi*x[i2+1]
	ti := wr*x[i2+1] + wi*x[i2]

	ur := x[i1]
	ui := x[i1+1]

	x[i1] = ur + tr
	x[i1+1] = ui + ti
	x[i2] = ur - tr
	x[i2+1] = ui - ti
}

var twiddleCache = struct {
	sync.RWMutex
	m map[int][]float32
}{m: make(map[int][]float32)}

// twiddles returns the interleaved twiddle table for size n:
// entry j holds exp(-2*pi*i*j/n) for j in [0, n/2). Tables are built once
// per size and shared across goroutines.
func twiddles(n int) []float32 {
	twiddleCache.RLock()
	tw, ok := twiddleCache.m[n]
	twiddleCache.RUnlock()

	if ok {
		return tw
	}

	twiddleCache.Lock()
	defer twiddleCache.Unlock()

	if tw, ok = twiddleCache.m[n]; ok {
		return tw
	}

	tw = make([]float32, n)
	for j := 0; j < n/2; j++ {
		theta := -2 * math.Pi * float64(j) / float64(n)
		tw[2*j] = float32(math.Cos(theta))
		tw[2*j+1] = float32(math.Sin(theta))
	}

	twiddleCache.m[n] = tw

	return tw
}
