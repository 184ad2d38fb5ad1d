// Command melbank prints the geometry of a Mel filter bank.
//
// Usage:
//
//	melbank [flags]
//
// For each triangular filter it shows the left, center and right FFT bins,
// the corresponding frequencies, and the weight-sum of the filter row.
//
// Examples:
//
//	melbank
//	melbank -filters 40 -fft 2048 -rate 44100
//	melbank -points
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-mfcc/dsp/mel"
)

func main() {
	filters := flag.Int("filters", 26, "number of Mel filters")
	fftSize := flag.Int("fft", 1024, "FFT size in samples")
	rate := flag.Float64("rate", 16000, "sample rate in Hz")
	points := flag.Bool("points", false, "print the Mel-spaced band edges instead of the filter table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: melbank [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the geometry of a Mel filter bank.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  melbank -filters 40 -fft 2048 -rate 44100\n")
		fmt.Fprintf(os.Stderr, "  melbank -points\n")
	}
	flag.Parse()

	bank, err := mel.New(*filters, *fftSize, *rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *points {
		printPoints(*filters, *rate)
		return
	}

	printBank(bank, *fftSize, *rate)
}

func printPoints(filters int, rate float64) {
	maxMel := mel.HzToMel(rate / 2)
	for i := 0; i <= filters+1; i++ {
		m := maxMel * float64(i) / float64(filters+1)
		fmt.Printf("%3d  %9.2f mel  %9.2f Hz\n", i, m, mel.MelToHz(m))
	}
}

func printBank(bank *mel.FilterBank, fftSize int, rate float64) {
	binHz := rate / float64(fftSize)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\tFirst Bin\tLast Bin\tWidth [Hz]\tWeight Sum\n")
	fmt.Fprintf(tw, "------\t---------\t--------\t----------\t----------\n")

	for i := 0; i < bank.NumFilters(); i++ {
		row := bank.Weights(i)

		first, last := -1, -1
		var sum float64
		for j, w := range row {
			if w == 0 {
				continue
			}
			if first < 0 {
				first = j
			}
			last = j
			sum += float64(w)
		}

		if first < 0 {
			fmt.Fprintf(tw, "%d\t-\t-\t0.0\t0.0000\n", i)
			continue
		}

		fmt.Fprintf(tw, "%d\t%d\t%d\t%.1f\t%.4f\n",
			i, first, last, float64(last-first+1)*binHz, sum)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
