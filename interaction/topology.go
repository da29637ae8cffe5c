// SPDX-License-Identifier: MIT
// Package: interaction
//
// topology.go — shared validation and neighbor-topology loading.

package interaction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// bondTopology is the per-order neighbor data a bonded term reads.
type bondTopology struct {
	table lattice.Table
	bonds []r3.Vec // nil when the lattice has none or the term does not read them
}

// checkArena verifies the arena is present and, when geo is given, sized to it.
func checkArena(method string, geo lattice.Geometry, arena *spin.Arena) error {
	if arena == nil {
		return fmt.Errorf("%s: arena: %w", method, ErrNilArgument)
	}
	if geo == nil {
		return nil
	}
	if arena.Len() != geo.NumSites() {
		return fmt.Errorf("%s: arena=%d, lattice=%d: %w", method, arena.Len(), geo.NumSites(), ErrSizeMismatch)
	}

	return nil
}

// loadTopology fetches the neighbor table (and bond vectors when needBonds)
// for the given order. Absence is a fatal configuration error.
func loadTopology(method string, geo lattice.Geometry, arena *spin.Arena, order int, needBonds bool) (bondTopology, error) {
	if geo == nil {
		return bondTopology{}, fmt.Errorf("%s: geometry: %w", method, ErrNilArgument)
	}
	if err := checkArena(method, geo, arena); err != nil {
		return bondTopology{}, err
	}

	t, err := geo.Neighbors(order)
	if err != nil {
		return bondTopology{}, fmt.Errorf("%s: %w: %w", method, ErrMissingTopology, err)
	}
	if t.Sites() != geo.NumSites() {
		return bondTopology{}, fmt.Errorf("%s: table covers %d sites, lattice has %d: %w",
			method, t.Sites(), geo.NumSites(), ErrMissingTopology)
	}

	topo := bondTopology{table: t}
	if needBonds {
		b, err := geo.BondVectors(order)
		if err != nil {
			return bondTopology{}, fmt.Errorf("%s: %w: %w", method, ErrMissingTopology, err)
		}
		if len(b) != len(t.Index) {
			return bondTopology{}, fmt.Errorf("%s: %d bond vectors for %d slots: %w",
				method, len(b), len(t.Index), ErrMissingTopology)
		}
		topo.bonds = b
	}

	return topo, nil
}

// optionalBonds returns the bond vectors of order when geo supplies a
// complete table for t, or nil.
func optionalBonds(geo lattice.Geometry, order int, t lattice.Table) []r3.Vec {
	b, err := geo.BondVectors(order)
	if err != nil || len(b) != len(t.Index) {
		return nil
	}

	return b
}

// pairTolerance is the relative mismatch below which two bond vectors are
// the same bond.
const pairTolerance = 1e-6

func sameBond(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) <= pairTolerance*math.Max(1, r3.Norm(a))
}

// pairSlots returns, for every slot (s,k) with neighbor n, the slot at n that
// points back to s. With bond vectors the reverse slot is the one whose bond
// is −r(s,k), so repeated neighbors on tiny periodic lattices pair by
// geometry. Slots that stay ambiguous (no bond vectors, or several equal
// bonds) pair by occurrence: the j-th such listing of n in s's row matches
// the j-th listing of s in n's row.
func pairSlots(t lattice.Table, bonds []r3.Vec) ([]int, error) {
	pair := make([]int, len(t.Index))
	w := t.Width
	matches := func(a, b int, sign float64) bool {
		if bonds == nil {
			return true
		}
		return sameBond(r3.Scale(sign, bonds[a]), bonds[b])
	}

	for s := 0; s < t.Sites(); s++ {
		row := t.Row(s)
		for k, n := range row {
			here := s*w + k
			pair[here] = -1
			if n == lattice.NoNeighbor {
				continue
			}
			occ := 0
			for k0, m := range row[:k] {
				if m == n && matches(here, s*w+k0, 1) {
					occ++
				}
			}
			seen := 0
			for k2, m := range t.Row(n) {
				if m != s || !matches(here, n*w+k2, -1) {
					continue
				}
				if seen == occ {
					pair[here] = k2
					break
				}
				seen++
			}
			if pair[here] < 0 {
				return nil, fmt.Errorf("site %d slot %d lists %d without a reverse bond: %w", s, k, n, ErrBadDefect)
			}
		}
	}

	return pair, nil
}
