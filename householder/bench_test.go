package householder_test

import (
	"fmt"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlinalg/householder"
)

// BenchmarkGenerateQ compares panel widths on one problem size; the
// blocked path should pull ahead of nb=1 as the trailing updates turn
// into level-3 work.
func BenchmarkGenerateQ(b *testing.B) {
	rnd := rand.New(rand.NewSource(61))
	const m, n = 256, 128
	a, tau := factoredQR(rnd, m, n)

	for _, nb := range []int{1, 8, 32} {
		opts := householder.Options[float64]{BlockSize: nb}
		info := householder.GenerateQWorkspace[float64](m, n, len(tau), opts)
		opts.Work = make([]float64, info.Elements)

		b.Run(fmt.Sprintf("nb=%d", nb), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				work := a.Clone()
				b.StartTimer()
				if err := householder.GenerateQ(work, tau, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFactorQR measures the unblocked factorization sweep.
func BenchmarkFactorQR(b *testing.B) {
	rnd := rand.New(rand.NewSource(62))
	const m, n = 256, 128
	a := randReal(rnd, m, n)
	tau := make([]float64, n)
	work := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		in := a.Clone()
		b.StartTimer()
		if err := householder.FactorQR(in, tau, work); err != nil {
			b.Fatal(err)
		}
	}
}
