// Package vecmath provides float32 element-wise kernels for the DSP pipeline.
//
// Every operation exists in two variants behind a single dispatch seam: a
// plain scalar loop and a 4-wide unrolled kernel shaped for the vector units
// found on amd64 (SSE2/AVX2) and arm64 (NEON). The wide kernel is selected at
// runtime when the block is large enough and a vector unit is present; both
// variants produce results within floating-point reassociation tolerance of
// each other, which the package tests enforce.
//
// Destination slices may alias their inputs. Length mismatches panic: these
// are internal kernels and a mismatch is a programming error in this module,
// not a caller-facing condition.
package vecmath

import "github.com/cwbudde/algo-mfcc/internal/cpu"

// wideThreshold is the minimum block length worth entering the 4-wide kernel.
const wideThreshold = 4

func useWide(n int) bool {
	return n >= wideThreshold && cpu.HasSIMD()
}

func checkLen2(dst, a []float32) {
	if len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
}

func checkLen3(dst, a, b []float32) {
	if len(dst) != len(a) || len(a) != len(b) {
		panic("vecmath: slice length mismatch")
	}
}
