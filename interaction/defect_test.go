// SPDX-License-Identifier: MIT

package interaction_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// randomOverrides draws count overrides on valid bonds of t.
func randomOverrides(rng *rand.Rand, t lattice.Table, count int) []interaction.BondOverride[float64] {
	out := make([]interaction.BondOverride[float64], 0, count)
	for len(out) < count {
		s := rng.Intn(t.Sites())
		slot := interaction.AllSlots
		if rng.Intn(3) > 0 {
			slot = rng.Intn(t.Width)
			if t.Neighbor(s, slot) == lattice.NoNeighbor {
				continue
			}
		}
		out = append(out, interaction.BondOverride[float64]{Site: s, Slot: slot, Value: rng.NormFloat64()})
	}

	return out
}

// bondFixture is one neighbor layer of a lattice with its bond vectors.
type bondFixture struct {
	name  string
	lat   *lattice.Lattice
	order int
	table lattice.Table
	bonds []r3.Vec
}

// bondFixtures covers open and periodic lattices plus the tiny periodic ones
// that list a neighbor twice.
func bondFixtures(t *testing.T) []bondFixture {
	t.Helper()
	layer := func(name string, lat *lattice.Lattice, order int) bondFixture {
		tbl, err := lat.Neighbors(order)
		require.NoError(t, err)
		b, err := lat.BondVectors(order)
		require.NoError(t, err)

		return bondFixture{name: name, lat: lat, order: order, table: tbl, bonds: b}
	}
	ring2, err := lattice.Ring(2)
	require.NoError(t, err)
	ring4, err := lattice.Ring(4, lattice.WithNextNearest())
	require.NoError(t, err)

	return []bondFixture{
		layer("square 5x4 open", mustSquare(t, 5, 4), lattice.Nearest),
		layer("square 5x4 periodic", mustSquare(t, 5, 4, lattice.WithPeriodic(true)), lattice.Nearest),
		layer("square 2x2 periodic", mustSquare(t, 2, 2, lattice.WithPeriodic(true)), lattice.Nearest),
		layer("ring 2", ring2, lattice.Nearest),
		layer("ring 4 next-nearest", ring4, lattice.NextNearest),
	}
}

// TestBondMap_Symmetry checks At(n, Reverse(s,k)) == reciprocal(At(s,k)) and
// r(n, Reverse(s,k)) == −r(s,k) for random override sets, including
// conflicts and repeated neighbors.
func TestBondMap_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	negate := func(v float64) float64 { return -v }
	identity := func(v float64) float64 { return v }

	for _, fx := range bondFixtures(t) {
		tbl, w := fx.table, fx.table.Width
		// an antisymmetric base: sign of the bond direction.
		signed := func(s, k int) float64 {
			if b := fx.bonds[s*w+k]; b.X+b.Y > 0 {
				return 1
			}
			return -1
		}

		for trial := 0; trial < 25; trial++ {
			overrides := randomOverrides(rng, tbl, 1+rng.Intn(12))

			for _, rc := range []struct {
				name string
				rec  func(float64) float64
				base func(s, k int) float64
			}{
				{"identity", identity, func(int, int) float64 { return 1 }},
				{"negate", negate, signed},
			} {
				m, err := interaction.BuildSymmetricBondMap(tbl, fx.bonds, rc.base, overrides, rc.rec)
				require.NoError(t, err, rc.name)

				for s := 0; s < tbl.Sites(); s++ {
					for k, n := range tbl.Row(s) {
						if n == lattice.NoNeighbor {
							continue
						}
						back := m.Reverse(s, k)
						require.GreaterOrEqual(t, back, 0)
						require.Equal(t, s, tbl.Neighbor(n, back))
						require.Equal(t, r3.Scale(-1, fx.bonds[s*w+k]), fx.bonds[n*w+back],
							"%s: bond %d/%d paired with a slot of the wrong direction", fx.name, s, k)
						require.Equal(t, rc.rec(m.At(s, k)), m.At(n, back),
							"%s %s trial=%d bond %d/%d", fx.name, rc.name, trial, s, k)
					}
				}
			}
		}
	}
}

// TestBondMap_LastOverrideWins resolves conflicting overrides on one bond.
func TestBondMap_LastOverrideWins(t *testing.T) {
	lat, err := lattice.Ring(6)
	require.NoError(t, err)
	tbl, _ := lat.Neighbors(lattice.Nearest)

	m, err := interaction.BuildSymmetricBondMap(tbl, nil,
		func(int, int) float64 { return 1 },
		[]interaction.BondOverride[float64]{
			{Site: 2, Slot: 0, Value: 5}, // bond 2→3
			{Site: 3, Slot: 1, Value: 7}, // same bond, from 3
		},
		func(v float64) float64 { return v })
	require.NoError(t, err)

	assert.Equal(t, 7.0, m.At(2, 0))
	assert.Equal(t, 7.0, m.At(3, 1))
	assert.Equal(t, 1.0, m.At(2, 1))
	assert.Equal(t, []int{2, 3}, m.Sites())
	_, ok := m.Row(0)
	assert.False(t, ok)
}

// TestBondMap_TinyPeriodicRing pairs the two bonds of a periodic 2-ring by
// direction: 0→1 along +x comes back as 1→0 along −x.
func TestBondMap_TinyPeriodicRing(t *testing.T) {
	lat, err := lattice.Ring(2)
	require.NoError(t, err)
	tbl, _ := lat.Neighbors(lattice.Nearest)
	bonds, _ := lat.BondVectors(lattice.Nearest)
	require.Equal(t, []int{1, 1}, tbl.Row(0))
	zero := func(int, int) float64 { return 0 }
	negate := func(v float64) float64 { return -v }

	m, err := interaction.BuildSymmetricBondMap(tbl, bonds, zero,
		[]interaction.BondOverride[float64]{{Site: 0, Slot: 1, Value: 3}}, negate)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Reverse(0, 0))
	assert.Equal(t, 0, m.Reverse(0, 1))
	assert.Equal(t, -3.0, m.At(1, 0))
	assert.Equal(t, 0.0, m.At(1, 1))

	// Without bond vectors the repeated neighbor pairs by occurrence.
	occ, err := interaction.BuildSymmetricBondMap(tbl, nil, zero, nil, negate)
	require.NoError(t, err)
	assert.Equal(t, 0, occ.Reverse(0, 0))
	assert.Equal(t, 1, occ.Reverse(0, 1))

	_, err = interaction.BuildSymmetricBondMap(tbl, bonds[:3], zero, nil, negate)
	assert.ErrorIs(t, err, interaction.ErrMissingTopology)
}

// TestBondMap_Rejects covers invalid overrides; nothing is partially applied.
func TestBondMap_Rejects(t *testing.T) {
	lat := mustSquare(t, 3, 3)
	tbl, _ := lat.Neighbors(lattice.Nearest)
	one := func(int, int) float64 { return 1 }
	id := func(v float64) float64 { return v }

	cases := map[string]interaction.BondOverride[float64]{
		"site below range": {Site: -1, Slot: 0},
		"site above range": {Site: 9, Slot: 0},
		"slot above width": {Site: 4, Slot: 4},
		"slot below":       {Site: 4, Slot: -2},
		"boundary slot":    {Site: 0, Slot: 2}, // −x of the corner
	}
	for name, o := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := interaction.BuildSymmetricBondMap(tbl, nil, one, []interaction.BondOverride[float64]{{Site: 4, Slot: 0, Value: 2}, o}, id)
			assert.ErrorIs(t, err, interaction.ErrBadDefect)
		})
	}

	_, err := interaction.BuildSymmetricBondMap(tbl, nil, nil, nil, id)
	assert.ErrorIs(t, err, interaction.ErrNilArgument)

	asym := lattice.Table{Width: 1, Index: []int{1, 1}}
	_, err = interaction.BuildSymmetricBondMap(asym, nil, one, nil, id)
	assert.ErrorIs(t, err, interaction.ErrBadDefect)
}

// TestDefectDM_Antisymmetric checks the vector map after point defects.
func TestDefectDM_Antisymmetric(t *testing.T) {
	lat := mustSquare(t, 4, 4, lattice.WithPeriodic(true))
	a := spin.Uniform(lat.NumSites(), r3.Vec{Z: 1})
	tbl, _ := lat.Neighbors(lattice.Nearest)

	dm, err := interaction.NewDefectDM(lat, a, 1, interaction.Chiral, r3.Vec{}, []interaction.BondOverride[float64]{
		{Site: 5, Slot: interaction.AllSlots, Value: 0},
		{Site: 10, Slot: 3, Value: 2},
	})
	require.NoError(t, err)

	vm := dm.Vectors()
	for s := 0; s < lat.NumSites(); s++ {
		for k, n := range tbl.Row(s) {
			assert.Equal(t, r3.Scale(-1, vm.At(s, k)), vm.At(n, vm.Reverse(s, k)))
		}
	}
	// Site 5 is switched off on every bond; 10→6 (−y) doubled.
	for k := range tbl.Row(5) {
		assert.Equal(t, 0.0, r3.Norm(vm.At(5, k)))
	}
	assert.Equal(t, r3.Vec{Y: -2}, vm.At(10, 3))
	assert.Equal(t, r3.Vec{Y: 2}, vm.At(6, 1))

	_, err = interaction.NewDefectDM(lat, a, 1, interaction.Chiral, r3.Vec{}, []interaction.BondOverride[float64]{{Site: 99, Slot: 0}})
	assert.ErrorIs(t, err, interaction.ErrBadDefect)
}

// TestDefectDM_RepeatedNeighbors checks antisymmetry and bond direction of
// the vector map for random defects on every fixture, both conventions.
func TestDefectDM_RepeatedNeighbors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, fx := range bondFixtures(t) {
		w := fx.table.Width
		for _, conv := range []interaction.DMConvention{interaction.Neel, interaction.Chiral} {
			a := randomArena(t, fx.lat.NumSites(), 3)
			overrides := randomOverrides(rng, fx.table, 1+rng.Intn(6))
			dm, err := interaction.NewDefectDM(fx.lat, a, 1, conv, r3.Vec{Z: 1}, overrides, interaction.WithOrder(fx.order))
			require.NoError(t, err, fx.name)

			vm := dm.Vectors()
			for s := 0; s < fx.table.Sites(); s++ {
				for k, n := range fx.table.Row(s) {
					if n == lattice.NoNeighbor {
						continue
					}
					back := vm.Reverse(s, k)
					require.Equal(t, r3.Scale(-1, fx.bonds[s*w+k]), fx.bonds[n*w+back], "%s %v bond %d/%d", fx.name, conv, s, k)
					require.Equal(t, r3.Scale(-1, vm.At(s, k)), vm.At(n, back), "%s %v bond %d/%d", fx.name, conv, s, k)
				}
			}
		}
	}
}

// TestDefectDM_TinyRingEnergy doubles the +x bond of a periodic 2-ring.
// S0×S1 = x̂; bond +x carries D = 2x̂ and bond −x keeps D = −x̂, so the
// direct bond sum is −2 + 1 = −1.
func TestDefectDM_TinyRingEnergy(t *testing.T) {
	lat, err := lattice.Ring(2)
	require.NoError(t, err)
	a, err := spin.New([]r3.Vec{{Y: 1}, {Z: 1}})
	require.NoError(t, err)

	dm, err := interaction.NewDefectDM(lat, a, 1, interaction.Chiral, r3.Vec{},
		[]interaction.BondOverride[float64]{{Site: 0, Slot: 0, Value: 2}})
	require.NoError(t, err)

	assert.InDelta(t, -1.0, totalEnergy(dm, 2), 1e-12)
	assert.InDelta(t, -1.0, dm.PairEnergy(0, 1), 1e-12)
	for s := 0; s < 2; s++ {
		vecClose(t, numericField(dm, a, s), dm.Field(s), 1e-6, "site %d", s)
	}
}

// TestDefectAnisotropy_Sites replaces K only where overridden.
func TestDefectAnisotropy_Sites(t *testing.T) {
	a := spin.Uniform(3, r3.Vec{X: 1})
	da, err := interaction.NewDefectAnisotropy(a, 1, r3.Vec{Z: 1}, map[int]float64{1: 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 1}, []float64{da.SiteEnergy(0), da.SiteEnergy(1), da.SiteEnergy(2)})

	_, err = interaction.NewDefectAnisotropy(a, 1, r3.Vec{Z: 1}, map[int]float64{3: 1})
	assert.ErrorIs(t, err, interaction.ErrBadDefect)
}
