// SPDX-License-Identifier: MIT

package interaction_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// randomArena returns n random unit spins from a fixed seed.
func randomArena(t *testing.T, n int, seed int64) *spin.Arena {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]r3.Vec, n)
	for i := range buf {
		theta := math.Acos(2*rng.Float64() - 1)
		phi := 2 * math.Pi * rng.Float64()
		buf[i] = spin.Spherical(theta, phi)
	}
	a, err := spin.New(buf)
	require.NoError(t, err)

	return a
}

// mustSquare builds a square fixture or fails the test.
func mustSquare(t *testing.T, rows, cols int, opts ...lattice.Option) *lattice.Lattice {
	t.Helper()
	lat, err := lattice.Square(rows, cols, opts...)
	require.NoError(t, err)

	return lat
}

// totalEnergy applies the correction-factor contract.
func totalEnergy(term interaction.Term, n int) float64 {
	var e float64
	for s := 0; s < n; s++ {
		e += term.SiteEnergy(s)
	}

	return e * term.Factor()
}

// numericField returns −∂E_total/∂S_s by central differences on the raw
// (unnormalized) components of S_s.
func numericField(term interaction.Term, a *spin.Arena, s int) r3.Vec {
	const h = 1e-5
	buf := a.Spins()
	orig := buf[s]
	grad := [3]float64{}
	for c := 0; c < 3; c++ {
		plus, minus := orig, orig
		switch c {
		case 0:
			plus.X += h
			minus.X -= h
		case 1:
			plus.Y += h
			minus.Y -= h
		case 2:
			plus.Z += h
			minus.Z -= h
		}
		buf[s] = plus
		ep := totalEnergy(term, a.Len())
		buf[s] = minus
		em := totalEnergy(term, a.Len())
		grad[c] = (ep - em) / (2 * h)
	}
	buf[s] = orig

	return r3.Vec{X: -grad[0], Y: -grad[1], Z: -grad[2]}
}

func vecClose(t *testing.T, want, got r3.Vec, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	require.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	require.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
}
