// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_dipolar.go — long-range dipole–dipole interaction.
//
// Model (classical point dipoles, strength w = μ0μ²/4π in energy units):
//   • E_s = w Σ_{j≠s} (1/r³)[S_s·S_j − 3(S_s·r̂)(S_j·r̂)].
//   • H_s = −w Σ_{j≠s} (1/r³)[S_j − 3 r̂ (S_j·r̂)].
//   • Factor 0.5: each pair is seen from both sites.
//
// Cache:
//   • All-pairs 1/r³ and r̂ are computed once at construction, rows in
//     parallel (errgroup, bounded by WithWorkers). Each goroutine writes only
//     its own rows; coordinates are read-only.
//   • Coincident sites (r < BondTolerance) get a zero entry.
//
// Complexity:
//   • Construction O(N²) time and memory. SiteEnergy/Field O(N).

package interaction

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const methodNewDipolar = "NewDipolar"

// Dipolar is the all-pairs dipole–dipole term.
type Dipolar struct {
	base
	w     float64
	n     int
	invR3 []float64 // n*n
	dirs  []r3.Vec  // n*n, unit vector from s to j
}

// NewDipolar builds the dipolar term with prefactor w.
func NewDipolar(geo lattice.Geometry, arena *spin.Arena, w float64, opts ...Option) (*Dipolar, error) {
	if geo == nil {
		return nil, fmt.Errorf("%s: geometry: %w", methodNewDipolar, ErrNilArgument)
	}
	if err := checkArena(methodNewDipolar, geo, arena); err != nil {
		return nil, err
	}
	coords := geo.Coordinates()
	n := geo.NumSites()
	if len(coords) != n {
		return nil, fmt.Errorf("%s: %d coordinates for %d sites: %w", methodNewDipolar, len(coords), n, ErrMissingTopology)
	}

	cfg := newTermConfig(opts...)
	d := &Dipolar{
		base:  newBase(KindDipolar, FactorPair, arena, cfg),
		w:     w,
		n:     n,
		invR3: make([]float64, n*n),
		dirs:  make([]r3.Vec, n*n),
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for s := 0; s < n; s++ {
		s := s
		g.Go(func() error {
			d.fillRow(coords, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewDipolar, err)
	}

	return d, nil
}

// fillRow writes the cache row of site s.
func (d *Dipolar) fillRow(coords []r3.Vec, s int) {
	row := s * d.n
	for j := 0; j < d.n; j++ {
		if j == s {
			continue
		}
		r := r3.Sub(coords[j], coords[s])
		dist := r3.Norm(r)
		if dist < BondTolerance {
			continue
		}
		d.invR3[row+j] = 1 / (dist * dist * dist)
		d.dirs[row+j] = r3.Scale(1/dist, r)
	}
}

func (d *Dipolar) pair(s, j int) float64 {
	idx := s*d.n + j
	f := d.invR3[idx]
	if f == 0 {
		return 0
	}
	si, sj, u := d.arena.At(s), d.arena.At(j), d.dirs[idx]

	return f * (r3.Dot(si, sj) - 3*r3.Dot(si, u)*r3.Dot(sj, u))
}

// SiteEnergy implements Term.
func (d *Dipolar) SiteEnergy(s int) float64 {
	var e float64
	for j := 0; j < d.n; j++ {
		e += d.pair(s, j)
	}

	return d.w * e
}

// Field implements Term.
func (d *Dipolar) Field(s int) r3.Vec {
	var h r3.Vec
	row := s * d.n
	for j := 0; j < d.n; j++ {
		f := d.invR3[row+j]
		if f == 0 {
			continue
		}
		sj, u := d.arena.At(j), d.dirs[row+j]
		h = r3.Add(h, r3.Scale(f, r3.Sub(sj, r3.Scale(3*r3.Dot(sj, u), u))))
	}

	return r3.Scale(-d.w, h)
}

// PairEnergy implements Pairer.
func (d *Dipolar) PairEnergy(s1, s2 int) float64 {
	if s1 == s2 {
		return 0
	}

	return d.w * d.pair(s1, s2)
}
