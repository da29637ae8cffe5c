// SPDX-License-Identifier: MIT
// Package: lattice
//
// types.go — the Geometry contract and neighbor-table representation.

package lattice

import "gonum.org/v1/gonum/spatial/r3"

// NoNeighbor marks an empty neighbor slot (open boundary).
const NoNeighbor = -1

// Neighbor orders used by the fixture builders.
const (
	// Nearest selects the nearest-neighbor shell.
	Nearest = 1
	// NextNearest selects the next-nearest-neighbor shell.
	NextNearest = 2
)

// Table is a fixed-width, flattened neighbor-index table.
type Table struct {
	// Width is the number of neighbor slots per site.
	Width int
	// Index holds NumSites*Width entries; NoNeighbor marks empty slots.
	Index []int
}

// Neighbor returns the k-th neighbor of site s (possibly NoNeighbor).
func (t Table) Neighbor(s, k int) int { return t.Index[s*t.Width+k] }

// Row returns the neighbor slots of site s without copying.
func (t Table) Row(s int) []int { return t.Index[s*t.Width : (s+1)*t.Width] }

// SlotOf returns the slot k at which site s lists neighbor n, or -1.
func (t Table) SlotOf(s, n int) int {
	for k, m := range t.Row(s) {
		if m == n {
			return k
		}
	}

	return -1
}

// Sites returns the number of sites covered by the table.
func (t Table) Sites() int {
	if t.Width == 0 {
		return 0
	}

	return len(t.Index) / t.Width
}

// Geometry is everything the energy core reads from the lattice.
// Implementations must be immutable for the lifetime of the terms using them.
type Geometry interface {
	// NumSites returns the atom count N.
	NumSites() int

	// Neighbors returns the neighbor table for the given order.
	// Returns ErrNoTopology if the order was not built.
	Neighbors(order int) (Table, error)

	// BondVectors returns vectors from each site to each of its neighbors,
	// aligned with Neighbors(order).Index. Returns ErrNoTopology when absent.
	BondVectors(order int) ([]r3.Vec, error)

	// Coordinates returns the position of every site.
	Coordinates() []r3.Vec

	// Triangles returns the oriented triangles used for topological charge.
	Triangles() [][3]int

	// Plaquettes returns the oriented four-site plaquettes (i,j,k,l),
	// listed in cyclic order around the square.
	Plaquettes() [][4]int

	// CenterSite returns the site used as symmetry center by modulated terms.
	CenterSite() int
}
