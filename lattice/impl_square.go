// SPDX-License-Identifier: MIT
// Package: lattice
//
// impl_square.go — implementation of the Square(rows, cols) fixture.
//
// Canonical model:
//   • Site (r,c) has index r*cols+c and coordinate (c*a, r*a, 0).
//   • Nearest layer width 4, slot order: +x, +y, -x, -y.
//   • Next-nearest layer (optional) width 4, slot order: +x+y, -x+y, -x-y, +x-y.
//   • Open boundaries by default; WithPeriodic(true) wraps both axes.
//     Bond vectors are always the lattice step, never the wrapped coordinate
//     difference.
//   • Every unit cell (r,c)-(r,c+1)-(r+1,c+1)-(r+1,c) yields one plaquette in
//     counter-clockwise order and two counter-clockwise triangles.
//   • Center site = (rows/2, cols/2).
//
// Complexity:
//   • Time O(rows*cols), space O(rows*cols) per layer.
//
// Determinism:
//   • Row-major site order, fixed slot order, cells emitted row-major.

package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodSquare = "Square"
	minSquareDim = 1
	squareWidth  = 4
)

var (
	nearestSteps     = [squareWidth][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	nextNearestSteps = [squareWidth][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
)

// Square builds a rows×cols square lattice in the xy plane.
func Square(rows, cols int, opts ...Option) (*Lattice, error) {
	if rows < minSquareDim || cols < minSquareDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodSquare, rows, cols, minSquareDim, ErrTooFewSites)
	}
	cfg := newBuilderConfig(opts...)
	periodic := cfg.periodicOr(false)
	a := cfg.spacing

	coords := make([]r3.Vec, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coords[r*cols+c] = r3.Vec{X: float64(c) * a, Y: float64(r) * a}
		}
	}
	lat := New(coords)

	layers := map[int][squareWidth][2]int{Nearest: nearestSteps}
	if cfg.nextNearest {
		layers[NextNearest] = nextNearestSteps
	}
	for _, order := range []int{Nearest, NextNearest} {
		steps, ok := layers[order]
		if !ok {
			continue
		}
		t, bonds := squareLayer(rows, cols, steps, a, periodic)
		if err := lat.AddLayer(order, t, bonds); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSquare, err)
		}
	}

	tris, plqs := squareCells(rows, cols, periodic)
	if err := lat.SetTriangles(tris); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSquare, err)
	}
	if err := lat.SetPlaquettes(plqs); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSquare, err)
	}
	if err := lat.SetCenter((rows/2)*cols + cols/2); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSquare, err)
	}

	return lat, nil
}

// wrap maps (r,c) into the lattice, reporting false for open-boundary misses.
func wrap(r, c, rows, cols int, periodic bool) (int, bool) {
	if periodic {
		r = ((r % rows) + rows) % rows
		c = ((c % cols) + cols) % cols
	} else if r < 0 || r >= rows || c < 0 || c >= cols {
		return NoNeighbor, false
	}

	return r*cols + c, true
}

func squareLayer(rows, cols int, steps [squareWidth][2]int, a float64, periodic bool) (Table, []r3.Vec) {
	n := rows * cols
	t := Table{Width: squareWidth, Index: make([]int, n*squareWidth)}
	bonds := make([]r3.Vec, n*squareWidth)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s := r*cols + c
			for k, st := range steps {
				slot := s*squareWidth + k
				j, ok := wrap(r+st[1], c+st[0], rows, cols, periodic)
				if !ok {
					t.Index[slot] = NoNeighbor
					continue
				}
				t.Index[slot] = j
				bonds[slot] = r3.Vec{X: float64(st[0]) * a, Y: float64(st[1]) * a}
			}
		}
	}

	return t, bonds
}

func squareCells(rows, cols int, periodic bool) ([][3]int, [][4]int) {
	var tris [][3]int
	var plqs [][4]int

	rMax, cMax := rows-1, cols-1
	if periodic {
		rMax, cMax = rows, cols
	}
	for r := 0; r < rMax; r++ {
		for c := 0; c < cMax; c++ {
			i, _ := wrap(r, c, rows, cols, periodic)
			j, _ := wrap(r, c+1, rows, cols, periodic)
			k, _ := wrap(r+1, c+1, rows, cols, periodic)
			l, _ := wrap(r+1, c, rows, cols, periodic)

			plqs = append(plqs, [4]int{i, j, k, l})
			tris = append(tris, [3]int{i, j, k}, [3]int{i, k, l})
		}
	}

	return tris, plqs
}
