package mel

import "sync"

type bankKey struct {
	numFilters int
	fftSize    int
	sampleRate float64
}

var bankCache = struct {
	sync.RWMutex
	m map[bankKey]*FilterBank
}{m: make(map[bankKey]*FilterBank)}

// Lookup returns the shared filter bank for the parameter triple, building
// it on first use. Safe for concurrent use; callers with different
// parameters get different banks.
func Lookup(numFilters, fftSize int, sampleRate float64) (*FilterBank, error) {
	key := bankKey{numFilters: numFilters, fftSize: fftSize, sampleRate: sampleRate}

	bankCache.RLock()
	fb, ok := bankCache.m[key]
	bankCache.RUnlock()

	if ok {
		return fb, nil
	}

	fb, err := New(numFilters, fftSize, sampleRate)
	if err != nil {
		return nil, err
	}

	bankCache.Lock()
	defer bankCache.Unlock()

	if cached, ok := bankCache.m[key]; ok {
		return cached, nil
	}

	bankCache.m[key] = fb

	return fb, nil
}

// Energies computes log filter-bank energies into dst using the cached bank
// for (len(dst), fftSize, sampleRate).
func Energies(dst, power []float32, fftSize int, sampleRate float64) error {
	fb, err := Lookup(len(dst), fftSize, sampleRate)
	if err != nil {
		return err
	}

	return fb.Apply(dst, power)
}
