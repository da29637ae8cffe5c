// SPDX-License-Identifier: MIT
// Package: spin
//
// vector.go — small helpers over gonum r3.Vec used by every kernel.

package spin

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tolerance is the length below which a vector counts as zero.
const Tolerance = 1e-9

// Normalize returns v/|v|, or ErrZeroVector when |v| < Tolerance.
func Normalize(v r3.Vec) (r3.Vec, error) {
	n := r3.Norm(v)
	if n < Tolerance {
		return r3.Vec{}, ErrZeroVector
	}

	return r3.Scale(1/n, v), nil
}

// UnitOrZero returns v/|v|, or the zero vector for near-zero input.
// Kernels use it where a degenerate geometry means "no contribution".
func UnitOrZero(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n < Tolerance {
		return r3.Vec{}
	}

	return r3.Scale(1/n, v)
}

// Spherical builds the unit vector for polar angle theta and azimuth phi
// in the laboratory frame.
func Spherical(theta, phi float64) r3.Vec {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	return r3.Vec{X: st * cp, Y: st * sp, Z: ct}
}
