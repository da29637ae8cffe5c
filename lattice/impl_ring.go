// SPDX-License-Identifier: MIT
// Package: lattice
//
// impl_ring.go — implementation of the Ring(n) fixture.
//
// Canonical model:
//   • n sites on the x axis at x = i*spacing.
//   • Nearest layer width 2: slot 0 = right (i+1), slot 1 = left (i-1).
//   • Periodic by default: i+1 and i-1 wrap modulo n. Open boundaries store
//     NoNeighbor at the chain ends.
//   • Next-nearest layer (optional) width 2: i+2 and i-2.
//   • No triangles or plaquettes; center = n/2.
//
// Complexity:
//   • Time O(n), space O(n) per layer.

package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodRing   = "Ring"
	minRingSites = 2
	ringWidth    = 2
)

// Ring builds a one-dimensional chain of n sites.
func Ring(n int, opts ...Option) (*Lattice, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if n < minRingSites {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingSites, ErrTooFewSites)
	}
	cfg := newBuilderConfig(opts...)
	periodic := cfg.periodicOr(true)

	// 2) Coordinates in ascending index order.
	coords := make([]r3.Vec, n)
	for i := range coords {
		coords[i] = r3.Vec{X: float64(i) * cfg.spacing}
	}
	lat := New(coords)

	// 3) Emit one layer per requested order; step = order.
	orders := []int{Nearest}
	if cfg.nextNearest {
		orders = append(orders, NextNearest)
	}
	for _, order := range orders {
		t, bonds := ringLayer(n, order, cfg.spacing, periodic)
		if err := lat.AddLayer(order, t, bonds); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRing, err)
		}
	}

	if err := lat.SetCenter(n / 2); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}

	return lat, nil
}

// ringLayer builds the table for neighbors at ±step.
func ringLayer(n, step int, spacing float64, periodic bool) (Table, []r3.Vec) {
	t := Table{Width: ringWidth, Index: make([]int, n*ringWidth)}
	bonds := make([]r3.Vec, n*ringWidth)
	d := float64(step) * spacing

	for i := 0; i < n; i++ {
		for k, sign := range [ringWidth]int{+1, -1} {
			j := i + sign*step
			slot := i*ringWidth + k
			if periodic {
				j = ((j % n) + n) % n
			} else if j < 0 || j >= n {
				t.Index[slot] = NoNeighbor
				continue
			}
			t.Index[slot] = j
			bonds[slot] = r3.Vec{X: float64(sign) * d}
		}
	}

	return t, bonds
}
