// SPDX-License-Identifier: MIT

package observable_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/observable"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// skyrmion returns a Néel-type skyrmion of radius r around the lattice
// center: θ = π at the core, θ = 0 (+z) at and beyond r.
func skyrmion(lat *lattice.Lattice, radius float64) []r3.Vec {
	coords := lat.Coordinates()
	c := coords[lat.CenterSite()]
	out := make([]r3.Vec, len(coords))
	for i, p := range coords {
		d := r3.Sub(p, c)
		rho := math.Hypot(d.X, d.Y)
		theta := 0.0
		if rho < radius {
			theta = math.Pi * (1 - rho/radius)
		}
		out[i] = spin.Spherical(theta, math.Atan2(d.Y, d.X))
	}

	return out
}

func TestSolidAngle_Octant(t *testing.T) {
	x, y, z := r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1}
	assert.InDelta(t, math.Pi/2, observable.SolidAngle(x, y, z), 1e-15)
	assert.InDelta(t, -math.Pi/2, observable.SolidAngle(x, z, y), 1e-15)
	assert.InDelta(t, 1.0/8, observable.Charge([]r3.Vec{x, y, z}, [][3]int{{0, 1, 2}}), 1e-15)
}

func TestWindingNumber_UniformIsZero(t *testing.T) {
	for _, size := range []int{2, 3, 6, 11} {
		lat, err := lattice.Square(size, size)
		require.NoError(t, err)
		for _, dir := range []r3.Vec{{Z: 1}, {X: 1, Y: -2, Z: 0.5}} {
			a := spin.Uniform(lat.NumSites(), dir)
			w, err := observable.NewWindingNumber(lat, a)
			require.NoError(t, err)
			assert.Equal(t, 0.0, w.Current(), "size=%d dir=%v", size, dir)
		}
	}
}

func TestWindingNumber_Skyrmion(t *testing.T) {
	lat, err := lattice.Square(21, 21)
	require.NoError(t, err)
	a, err := spin.New(skyrmion(lat, 8))
	require.NoError(t, err)

	w, err := observable.NewWindingNumber(lat, a)
	require.NoError(t, err)
	q := w.Current()
	assert.InDelta(t, 1.0, math.Abs(q), 1e-9)

	// Mirroring every spin through the xy plane reverses the charge.
	mirrored := make([]r3.Vec, a.Len())
	for i, s := range a.Spins() {
		mirrored[i] = r3.Vec{X: s.X, Y: s.Y, Z: -s.Z}
	}
	assert.InDelta(t, -q, observable.Charge(mirrored, lat.Triangles()), 1e-9)

	w.SetCapacity(2)
	require.NoError(t, w.TakeValue())
	require.NoError(t, w.TakeValue())
	means, err := w.MeanValue(0)
	require.NoError(t, err)
	assert.InDelta(t, q, means[0], 1e-12)
	assert.InDelta(t, 0, means[1], 1e-12)
}
