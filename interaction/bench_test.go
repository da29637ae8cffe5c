// SPDX-License-Identifier: MIT

package interaction_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// benchSides are the square edge lengths to benchmark (N = side²).
var benchSides = []int{8, 16, 32}

// sinks to defeat dead-code elimination
var (
	sinkT interaction.Term
	sinkF float64
	sinkV r3.Vec
)

// benchArena fills an n-site arena with deterministic random unit spins.
func benchArena(b *testing.B, n int, seed int64) *spin.Arena {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]r3.Vec, n)
	for i := range buf {
		buf[i] = spin.Spherical(math.Acos(2*rng.Float64()-1), 2*math.Pi*rng.Float64())
	}
	a, err := spin.New(buf)
	if err != nil {
		b.Fatal(err)
	}

	return a
}

// benchSquare builds an open side×side square lattice.
func benchSquare(b *testing.B, side int) *lattice.Lattice {
	b.Helper()
	lat, err := lattice.Square(side, side)
	if err != nil {
		b.Fatal(err)
	}

	return lat
}

// BenchmarkNewDipolar measures the O(N²) table construction, serial and on
// four workers.
func BenchmarkNewDipolar(b *testing.B) {
	b.ReportAllocs()
	for _, side := range benchSides {
		lat := benchSquare(b, side)
		a := benchArena(b, side*side, 1337)
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("N=%d/workers=%d", side*side, workers), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					dp, err := interaction.NewDipolar(lat, a, 0.05, interaction.WithWorkers(workers))
					if err != nil {
						b.Fatal(err)
					}
					sinkT = dp
				}
			})
		}
	}
}

// BenchmarkDipolar_Field measures one O(N) field evaluation.
func BenchmarkDipolar_Field(b *testing.B) {
	b.ReportAllocs()
	for _, side := range benchSides {
		b.Run(fmt.Sprintf("N=%d", side*side), func(b *testing.B) {
			n := side * side
			dp, err := interaction.NewDipolar(benchSquare(b, side), benchArena(b, n, 4242), 0.05)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = dp.Field(i % n)
			}
		})
	}
}

// BenchmarkExchange_SiteEnergy measures the nearest-neighbor kernel.
func BenchmarkExchange_SiteEnergy(b *testing.B) {
	b.ReportAllocs()
	lat := benchSquare(b, 32)
	ex, err := interaction.NewExchange(lat, benchArena(b, 32*32, 11), 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = ex.SiteEnergy(i % (32 * 32))
	}
}
