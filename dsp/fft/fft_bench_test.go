package fft

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkForward(b *testing.B) {
	r := rand.New(rand.NewSource(1))

	for _, n := range []int{256, 1024, 4096} {
		x := randomComplex(r, n)
		dst := make([]float32, 2*n)

		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			b.SetBytes(int64(2 * n * 4))
			for i := 0; i < b.N; i++ {
				if err := Forward(dst, x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkForwardReal(b *testing.B) {
	r := rand.New(rand.NewSource(2))

	n := 1024
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(r.Float64()*2 - 1)
	}
	dst := make([]float32, 2*n)

	b.SetBytes(int64(n * 4))
	for i := 0; i < b.N; i++ {
		if err := ForwardReal(dst, samples); err != nil {
			b.Fatal(err)
		}
	}
}
