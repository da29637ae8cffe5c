// SPDX-License-Identifier: MIT
// Package: interaction
//
// defect.go — symmetric per-bond coefficient maps for defect terms.
//
// Construction (BuildSymmetricBondMap):
//   1) Validate every override (site in range, slot in range or AllSlots,
//      explicit slot must point at a real neighbor).
//   2) For each override in order, for each targeted slot k of site s with
//      neighbor n: write v into (s,k) and reciprocal(v) into n's slot that
//      points back at s. Rows are materialized on first touch from base.
//
// Reverse slots follow the bond vectors when they are given: the slot at n
// carrying −r(s,k). Without bond vectors, repeated neighbors pair by
// occurrence.
//
// Invariant (verified by tests over random override sets):
//   For every site s and slot k with neighbor n, At(n, Reverse(s,k)) equals
//   reciprocal(At(s,k)). Later overrides win on both ends of a bond at once,
//   so the invariant survives conflicting overrides.
//
// Reciprocity conventions:
//   • scalar couplings (exchange): identity.
//   • DM vectors: negation (D_ns = −D_sn).
//
// Complexity:
//   • O(N*width) for reverse-slot pairing, O(Σ overrides * width) for writes.

package interaction

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
)

const methodBuildBondMap = "BuildSymmetricBondMap"

// AllSlots makes an override apply to every bond of its site (point defect).
const AllSlots = -1

// BondOverride replaces the coefficient of one bond (Slot ≥ 0) or of all
// bonds of a site (Slot == AllSlots).
type BondOverride[T any] struct {
	Site  int
	Slot  int
	Value T
}

// BondMap stores per-bond coefficients for defect-affected sites and falls
// back to base for every other site.
type BondMap[T any] struct {
	table lattice.Table
	pair  []int
	base  func(s, k int) T
	rows  map[int][]T
}

// BuildSymmetricBondMap constructs a BondMap over t. bonds, aligned with
// t.Index, may be nil; base(s,k) yields the undisturbed coefficient and must
// itself satisfy base(n, Reverse(s,k)) == reciprocal(base(s,k)).
func BuildSymmetricBondMap[T any](t lattice.Table, bonds []r3.Vec, base func(s, k int) T, overrides []BondOverride[T], reciprocal func(T) T) (*BondMap[T], error) {
	if base == nil || reciprocal == nil {
		return nil, fmt.Errorf("%s: base/reciprocal: %w", methodBuildBondMap, ErrNilArgument)
	}
	if bonds != nil && len(bonds) != len(t.Index) {
		return nil, fmt.Errorf("%s: %d bond vectors for %d slots: %w", methodBuildBondMap, len(bonds), len(t.Index), ErrMissingTopology)
	}
	pair, err := pairSlots(t, bonds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildBondMap, err)
	}
	m := &BondMap[T]{table: t, pair: pair, base: base, rows: make(map[int][]T)}

	// (1) validate everything before the first write.
	n := t.Sites()
	for i, o := range overrides {
		if o.Site < 0 || o.Site >= n {
			return nil, fmt.Errorf("%s: override %d site=%d: %w", methodBuildBondMap, i, o.Site, ErrBadDefect)
		}
		if o.Slot == AllSlots {
			continue
		}
		if o.Slot < 0 || o.Slot >= t.Width {
			return nil, fmt.Errorf("%s: override %d slot=%d: %w", methodBuildBondMap, i, o.Slot, ErrBadDefect)
		}
		if t.Neighbor(o.Site, o.Slot) == lattice.NoNeighbor {
			return nil, fmt.Errorf("%s: override %d (site=%d, slot=%d) has no neighbor: %w",
				methodBuildBondMap, i, o.Site, o.Slot, ErrBadDefect)
		}
	}

	// (2) insert overrides and propagate reciprocals.
	for _, o := range overrides {
		if o.Slot != AllSlots {
			m.set(o.Site, o.Slot, o.Value, reciprocal)
			continue
		}
		for k, nb := range t.Row(o.Site) {
			if nb == lattice.NoNeighbor {
				continue
			}
			m.set(o.Site, k, o.Value, reciprocal)
		}
	}

	return m, nil
}

// set writes v at (s,k) and reciprocal(v) at the reverse slot.
func (m *BondMap[T]) set(s, k int, v T, reciprocal func(T) T) {
	w := m.table.Width
	n := m.table.Neighbor(s, k)
	m.row(s)[k] = v
	m.row(n)[m.pair[s*w+k]] = reciprocal(v)
}

// row materializes the record of site s from base on first touch.
func (m *BondMap[T]) row(s int) []T {
	r, ok := m.rows[s]
	if ok {
		return r
	}
	r = make([]T, m.table.Width)
	for k, n := range m.table.Row(s) {
		if n != lattice.NoNeighbor {
			r[k] = m.base(s, k)
		}
	}
	m.rows[s] = r

	return r
}

// At returns the coefficient of slot k at site s.
func (m *BondMap[T]) At(s, k int) T {
	if r, ok := m.rows[s]; ok {
		return r[k]
	}

	return m.base(s, k)
}

// Row returns the stored record of s, if any.
func (m *BondMap[T]) Row(s int) ([]T, bool) {
	r, ok := m.rows[s]
	return r, ok
}

// Reverse returns the slot at Neighbor(s,k) that points back at s, or -1.
func (m *BondMap[T]) Reverse(s, k int) int { return m.pair[s*m.table.Width+k] }

// Sites returns the sites holding explicit records, ascending.
func (m *BondMap[T]) Sites() []int {
	out := make([]int, 0, len(m.rows))
	for s := range m.rows {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}
