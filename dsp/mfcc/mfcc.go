// Package mfcc extracts Mel-Frequency Cepstral Coefficients from frames of
// audio samples.
//
// A frame flows strictly forward through the pipeline: Hamming window,
// radix-2 FFT, power spectrum, Mel filter bank, DCT-II. The [Extractor]
// owns the scratch buffers for that chain, so a single extractor computes
// frame after frame without allocating; it is not safe for concurrent use,
// but distinct extractors are, and they share the Mel filter bank cache.
package mfcc

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-mfcc/dsp/core"
	"github.com/cwbudde/algo-mfcc/dsp/dct"
	"github.com/cwbudde/algo-mfcc/dsp/fft"
	"github.com/cwbudde/algo-mfcc/dsp/mel"
	"github.com/cwbudde/algo-mfcc/dsp/spectrum"
	"github.com/cwbudde/algo-mfcc/dsp/window"
)

// Canonical analysis parameters, used when the corresponding Config fields
// are zero.
const (
	DefaultFrameSize       = 1024
	DefaultHopSize         = 512
	DefaultNumCoefficients = 13
	DefaultNumFilters      = 26
)

// ErrInsufficientSamples is returned when the input holds fewer samples
// than one analysis frame.
var ErrInsufficientSamples = errors.New("mfcc: fewer samples than frame size")

// Config holds the analysis parameters of an [Extractor].
type Config struct {
	// SampleRate of the input audio in Hz. Required.
	SampleRate float64

	// NumCoefficients is the number of cepstral coefficients per frame.
	// Defaults to 13; must not exceed NumFilters.
	NumCoefficients int

	// NumFilters is the Mel filter bank size. Defaults to 26.
	NumFilters int

	// FrameSize is the analysis window length in samples. Must be a
	// power of two; defaults to 1024.
	FrameSize int

	// HopSize is the frame advance used by ComputeAll. Defaults to 512.
	HopSize int
}

func (c *Config) applyDefaults() {
	if c.NumCoefficients == 0 {
		c.NumCoefficients = DefaultNumCoefficients
	}
	if c.NumFilters == 0 {
		c.NumFilters = DefaultNumFilters
	}
	if c.FrameSize == 0 {
		c.FrameSize = DefaultFrameSize
	}
	if c.HopSize == 0 {
		c.HopSize = DefaultHopSize
	}
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("mfcc: sample rate must be > 0: %g", c.SampleRate)
	}
	if c.FrameSize < 2 || !core.IsPowerOfTwo(c.FrameSize) {
		return fmt.Errorf("mfcc: frame size must be a power of two >= 2: %d", c.FrameSize)
	}
	if c.HopSize <= 0 {
		return fmt.Errorf("mfcc: hop size must be > 0: %d", c.HopSize)
	}
	if c.NumFilters <= 0 {
		return fmt.Errorf("mfcc: filter count must be > 0: %d", c.NumFilters)
	}
	if c.NumCoefficients <= 0 || c.NumCoefficients > c.NumFilters {
		return fmt.Errorf("mfcc: coefficient count must be in 1..%d: %d", c.NumFilters, c.NumCoefficients)
	}

	return nil
}

// Extractor computes MFCC vectors from audio frames.
type Extractor struct {
	cfg  Config
	bank *mel.FilterBank

	frame    []float32 // windowed copy of the input frame
	spec     []float32 // interleaved complex spectrum
	power    []float32 // DC..Nyquist power bins
	energies []float32 // log Mel energies
}

// New creates an extractor for the given configuration. Zero-valued
// optional fields take the canonical defaults.
func New(cfg Config) (*Extractor, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	bank, err := mel.Lookup(cfg.NumFilters, cfg.FrameSize, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		cfg:      cfg,
		bank:     bank,
		frame:    make([]float32, cfg.FrameSize),
		spec:     make([]float32, 2*cfg.FrameSize),
		power:    make([]float32, cfg.FrameSize/2+1),
		energies: make([]float32, cfg.NumFilters),
	}, nil
}

// Config returns the effective configuration after defaults.
func (e *Extractor) Config() Config {
	return e.cfg
}

// Compute extracts one MFCC vector from the first FrameSize samples of
// audio. len(dst) must equal NumCoefficients; on error dst is untouched.
func (e *Extractor) Compute(dst, audio []float32) error {
	if len(dst) != e.cfg.NumCoefficients {
		return fmt.Errorf("mfcc: dst length %d, want %d coefficients", len(dst), e.cfg.NumCoefficients)
	}
	if len(audio) < e.cfg.FrameSize {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientSamples, len(audio), e.cfg.FrameSize)
	}

	core.CopyInto(e.frame, audio[:e.cfg.FrameSize])

	if err := window.Apply(e.frame); err != nil {
		return err
	}
	if err := fft.ForwardReal(e.spec, e.frame); err != nil {
		return err
	}
	if err := spectrum.PowerInterleaved(e.power, e.spec); err != nil {
		return err
	}
	if err := e.bank.Apply(e.energies, e.power); err != nil {
		return err
	}

	return dct.Transform(dst, e.energies)
}

// ComputeAll slides the analysis frame across audio by HopSize and returns
// one MFCC vector per full frame. At least one full frame must fit.
func (e *Extractor) ComputeAll(audio []float32) ([][]float32, error) {
	if len(audio) < e.cfg.FrameSize {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientSamples, len(audio), e.cfg.FrameSize)
	}

	frames := (len(audio)-e.cfg.FrameSize)/e.cfg.HopSize + 1
	out := make([][]float32, frames)

	for f := 0; f < frames; f++ {
		dst := make([]float32, e.cfg.NumCoefficients)
		if err := e.Compute(dst, audio[f*e.cfg.HopSize:]); err != nil {
			return nil, err
		}

		out[f] = dst
	}

	return out, nil
}

// Compute is the one-shot entry point with the canonical 1024/512 frame
// geometry: it extracts len(dst) coefficients from the first frame of audio
// using numFilters Mel filters.
func Compute(dst, audio []float32, sampleRate float64, numFilters int) error {
	e, err := New(Config{
		SampleRate:      sampleRate,
		NumCoefficients: len(dst),
		NumFilters:      numFilters,
	})
	if err != nil {
		return err
	}

	return e.Compute(dst, audio)
}
