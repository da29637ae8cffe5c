// SPDX-License-Identifier: MIT
// Package: lattice
//
// lattice.go — in-memory Geometry implementation.
//
// Contract:
//   • Coordinates fix N; every layer must hold N*Width entries.
//   • Layers are keyed by neighbor order; bond vectors are optional per layer.
//   • Setters validate eagerly and return sentinel errors; nothing panics.
//
// Complexity:
//   • AddLayer: O(N*Width) validation. Lookups: O(1).

package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodAddLayer      = "AddLayer"
	methodSetTriangles  = "SetTriangles"
	methodSetPlaquettes = "SetPlaquettes"
	methodSetCenter     = "SetCenter"
)

type layer struct {
	table Table
	bonds []r3.Vec // nil when not supplied
}

// Lattice is a mutable-at-build, read-only-afterwards Geometry.
type Lattice struct {
	coords     []r3.Vec
	layers     map[int]layer
	triangles  [][3]int
	plaquettes [][4]int
	center     int
}

// New creates a lattice over the given site coordinates.
// The coordinate slice is retained; callers must not modify it afterwards.
func New(coords []r3.Vec) *Lattice {
	return &Lattice{
		coords: coords,
		layers: make(map[int]layer),
	}
}

// AddLayer registers the neighbor table (and optional bond vectors) for order.
func (l *Lattice) AddLayer(order int, t Table, bonds []r3.Vec) error {
	n := len(l.coords)
	if t.Width <= 0 || len(t.Index) != n*t.Width {
		return fmt.Errorf("%s: order=%d, width=%d, len=%d, sites=%d: %w",
			methodAddLayer, order, t.Width, len(t.Index), n, ErrBadTable)
	}
	for i, m := range t.Index {
		if m != NoNeighbor && (m < 0 || m >= n) {
			return fmt.Errorf("%s: order=%d, slot=%d -> %d: %w", methodAddLayer, order, i, m, ErrBadTable)
		}
	}
	if bonds != nil && len(bonds) != len(t.Index) {
		return fmt.Errorf("%s: order=%d, bonds=%d, slots=%d: %w",
			methodAddLayer, order, len(bonds), len(t.Index), ErrBadTable)
	}
	l.layers[order] = layer{table: t, bonds: bonds}

	return nil
}

// SetTriangles registers the topological-charge triangles.
func (l *Lattice) SetTriangles(tris [][3]int) error {
	for _, tri := range tris {
		for _, s := range tri {
			if s < 0 || s >= len(l.coords) {
				return fmt.Errorf("%s: site %d: %w", methodSetTriangles, s, ErrSiteOutOfRange)
			}
		}
	}
	l.triangles = tris

	return nil
}

// SetPlaquettes registers the four-site plaquettes.
func (l *Lattice) SetPlaquettes(plqs [][4]int) error {
	for _, p := range plqs {
		for _, s := range p {
			if s < 0 || s >= len(l.coords) {
				return fmt.Errorf("%s: site %d: %w", methodSetPlaquettes, s, ErrSiteOutOfRange)
			}
		}
	}
	l.plaquettes = plqs

	return nil
}

// SetCenter designates the symmetry center site.
func (l *Lattice) SetCenter(s int) error {
	if s < 0 || s >= len(l.coords) {
		return fmt.Errorf("%s: site %d: %w", methodSetCenter, s, ErrSiteOutOfRange)
	}
	l.center = s

	return nil
}

// NumSites implements Geometry.
func (l *Lattice) NumSites() int { return len(l.coords) }

// Neighbors implements Geometry.
func (l *Lattice) Neighbors(order int) (Table, error) {
	ly, ok := l.layers[order]
	if !ok {
		return Table{}, fmt.Errorf("neighbors of order %d: %w", order, ErrNoTopology)
	}

	return ly.table, nil
}

// BondVectors implements Geometry.
func (l *Lattice) BondVectors(order int) ([]r3.Vec, error) {
	ly, ok := l.layers[order]
	if !ok || ly.bonds == nil {
		return nil, fmt.Errorf("bond vectors of order %d: %w", order, ErrNoTopology)
	}

	return ly.bonds, nil
}

// Coordinates implements Geometry.
func (l *Lattice) Coordinates() []r3.Vec { return l.coords }

// Triangles implements Geometry.
func (l *Lattice) Triangles() [][3]int { return l.triangles }

// Plaquettes implements Geometry.
func (l *Lattice) Plaquettes() [][4]int { return l.plaquettes }

// CenterSite implements Geometry.
func (l *Lattice) CenterSite() int { return l.center }

// compile-time check
var _ Geometry = (*Lattice)(nil)
