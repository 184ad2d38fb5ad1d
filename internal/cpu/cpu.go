// Package cpu detects SIMD capabilities used to select DSP kernel variants.
//
// Detection runs once, lazily, and is cached; results can be overridden for
// testing so both scalar and vectorized code paths are exercised on any host.
package cpu

import "sync"

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool // x86-64 baseline
	HasAVX2 bool
	HasNEON bool // ARM Advanced SIMD

	// ForceGeneric disables all vectorized kernels regardless of hardware.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detected   Features
	detectOnce sync.Once

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the capabilities of the current CPU.
//
// The first call performs detection; later calls return the cached result.
// Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})

	return detected
}

// HasSIMD reports whether any vector unit usable by the kernels is present.
func HasSIMD() bool {
	f := DetectFeatures()
	if f.ForceGeneric {
		return false
	}

	return f.HasSSE2 || f.HasAVX2 || f.HasNEON
}

// HasAVX2 reports AVX2 support.
func HasAVX2() bool { return DetectFeatures().HasAVX2 }

// HasSSE2 reports SSE2 support.
func HasSSE2() bool { return DetectFeatures().HasSSE2 }

// HasNEON reports ARM NEON support.
func HasNEON() bool { return DetectFeatures().HasNEON }

// SetForcedFeatures overrides detection with f. Testing only.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	copied := f
	forced = &copied
	forcedMu.Unlock()
}

// ResetDetection clears any forced features. Testing only.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()
}
