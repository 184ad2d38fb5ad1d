package mel_test

import (
	"fmt"

	"github.com/cwbudde/algo-mfcc/dsp/mel"
)

func ExampleHzToMel() {
	fmt.Printf("%.0f\n", mel.HzToMel(0))
	fmt.Printf("%.0f\n", mel.MelToHz(mel.HzToMel(4000)))
	// Output:
	// 0
	// 4000
}

func ExampleFilterBank_Apply() {
	fb, err := mel.New(26, 1024, 16000)
	if err != nil {
		panic(err)
	}

	// Flat unit power spectrum.
	power := make([]float32, fb.Bins())
	for i := range power {
		power[i] = 1
	}

	energies := make([]float32, fb.NumFilters())
	if err := fb.Apply(energies, power); err != nil {
		panic(err)
	}

	fmt.Println(len(energies), "log energies")
	// Output:
	// 26 log energies
}
