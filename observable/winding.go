// SPDX-License-Identifier: MIT
// Package: observable
//
// winding.go — discrete topological charge (skyrmion number).
//
// For every oriented triangle (s1,s2,s3):
//   N = S1·(S2×S3)
//   D = 1 + S1·S2 + S1·S3 + S2·S3
//   Ω = 2·atan2(N, D)            (signed solid angle of the spherical triangle)
// and Q = Σ Ω / 4π.
//
// A collinear configuration gives N = 0 and D > 0 on every triangle, so Q is
// exactly 0.

package observable

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	kindWindingNumber = "WindingNumber"
	methodNewWinding  = "NewWindingNumber"
)

// SolidAngle returns 2·atan2(N, D) for one oriented triangle of spins.
func SolidAngle(s1, s2, s3 r3.Vec) float64 {
	num := r3.Dot(s1, r3.Cross(s2, s3))
	den := 1 + r3.Dot(s1, s2) + r3.Dot(s1, s3) + r3.Dot(s2, s3)

	return 2 * math.Atan2(num, den)
}

// Charge returns the topological charge of spins over tris.
func Charge(spins []r3.Vec, tris [][3]int) float64 {
	var sum float64
	for _, t := range tris {
		sum += SolidAngle(spins[t[0]], spins[t[1]], spins[t[2]])
	}

	return sum / (4 * math.Pi)
}

// WindingNumber samples the topological charge.
type WindingNumber struct {
	window
	arena *spin.Arena
	tris  [][3]int
	steps []float64
}

// NewWindingNumber observes arena over the triangles of geo.
func NewWindingNumber(geo lattice.Geometry, arena *spin.Arena, opts ...Option) (*WindingNumber, error) {
	if geo == nil || arena == nil {
		return nil, fmt.Errorf("%s: %w", methodNewWinding, ErrNilArgument)
	}
	if arena.Len() != geo.NumSites() {
		return nil, fmt.Errorf("%s: arena=%d, lattice=%d: %w", methodNewWinding, arena.Len(), geo.NumSites(), ErrSizeMismatch)
	}
	tris := geo.Triangles()
	if len(tris) == 0 {
		return nil, fmt.Errorf("%s: no triangles: %w", methodNewWinding, ErrMissingTopology)
	}

	return &WindingNumber{
		window: newWindow(kindWindingNumber, newSettings(opts...)),
		arena:  arena,
		tris:   tris,
	}, nil
}

// Current returns the charge of the current configuration.
func (w *WindingNumber) Current() float64 { return Charge(w.arena.Spins(), w.tris) }

// StepsHeader implements Observable.
func (w *WindingNumber) StepsHeader() []string { return []string{"Q"} }

// MeanHeader implements Observable.
func (w *WindingNumber) MeanHeader() []string { return []string{"<Q>", "Var(Q)"} }

// TakeValue implements Observable.
func (w *WindingNumber) TakeValue() error {
	i, err := w.advance()
	if err != nil {
		return err
	}
	w.steps[i] = w.Current()

	return nil
}

// StepValue implements Observable.
func (w *WindingNumber) StepValue(i int) ([]float64, error) {
	if err := w.requireStep(i); err != nil {
		return nil, err
	}

	return []float64{w.steps[i]}, nil
}

// MeanValue implements Observable. Temperature is not used.
func (w *WindingNumber) MeanValue(float64) ([]float64, error) {
	if err := w.requireFull(); err != nil {
		return []float64{0, 0}, err
	}
	mean, variance := stat.PopMeanVariance(w.steps, nil)

	return []float64{mean, variance}, nil
}

// SetCapacity implements Observable.
func (w *WindingNumber) SetCapacity(n int) {
	w.resize(n)
	w.steps = make([]float64, w.capacity)
}

// ClearStorage implements Observable.
func (w *WindingNumber) ClearStorage() { w.SetCapacity(w.capacity) }
