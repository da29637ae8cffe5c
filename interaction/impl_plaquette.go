// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_plaquette.go — three-site and four-site multi-spin terms.
//
// Four-spin model over plaquettes (i,j,k,l) in cyclic order:
//   • E_p = −K[(Si·Sj)(Sk·Sl) + (Si·Sl)(Sj·Sk) − (Si·Sk)(Sj·Sl)].
//   • The expression is invariant under cyclic relabeling, so the field on any
//     member is obtained by rotating the plaquette to start at that member:
//       H_i = K[Sj(Sk·Sl) + Sl(Sj·Sk) − Sk(Sj·Sl)].
//   • Factor 0.25: each plaquette is visited from its four sites.
//
// Three-spin model over triangles (1,2,3):
//   • E_t = −K[(S1·S2)(S2·S3) + (S2·S3)(S3·S1) + (S3·S1)(S1·S2)].
//   • H_1 = K[(S2·S3)(S2 + S3) + (S1·S2)S3 + (S1·S3)S2].
//   • Factor 1/3.
//
// Membership is indexed per occurrence, so a site appearing twice in one
// cell (tiny periodic lattices) still sums to exactly 4 (or 3) visits.

package interaction

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	methodNewFourSpin  = "NewFourSpin"
	methodNewThreeSpin = "NewThreeSpin"
)

// membership records that a site sits at position pos of cell idx.
type membership struct {
	idx int
	pos int
}

func indexCells(n int, cells [][]int) [][]membership {
	bySite := make([][]membership, n)
	for c, cell := range cells {
		for pos, s := range cell {
			bySite[s] = append(bySite[s], membership{idx: c, pos: pos})
		}
	}

	return bySite
}

// FourSpin is the four-site plaquette interaction.
type FourSpin struct {
	base
	k      float64
	plaqs  [][4]int
	bySite [][]membership
}

// NewFourSpin builds a four-spin term over geo.Plaquettes().
func NewFourSpin(geo lattice.Geometry, arena *spin.Arena, k float64, opts ...Option) (*FourSpin, error) {
	if geo == nil {
		return nil, fmt.Errorf("%s: geometry: %w", methodNewFourSpin, ErrNilArgument)
	}
	if err := checkArena(methodNewFourSpin, geo, arena); err != nil {
		return nil, err
	}
	plaqs := geo.Plaquettes()
	if len(plaqs) == 0 {
		return nil, fmt.Errorf("%s: no plaquettes: %w", methodNewFourSpin, ErrMissingTopology)
	}

	cells := make([][]int, len(plaqs))
	for i := range plaqs {
		cells[i] = plaqs[i][:]
	}

	return &FourSpin{
		base:   newBase(KindFourSpin, FactorPlaquette, arena, newTermConfig(opts...)),
		k:      k,
		plaqs:  plaqs,
		bySite: indexCells(geo.NumSites(), cells),
	}, nil
}

// rotated returns the plaquette spins starting at position pos.
func (f *FourSpin) rotated(m membership) (a, b, c, d r3.Vec) {
	p := f.plaqs[m.idx]
	at := f.arena.At
	return at(p[m.pos]), at(p[(m.pos+1)%4]), at(p[(m.pos+2)%4]), at(p[(m.pos+3)%4])
}

func (f *FourSpin) plaquetteEnergy(idx int) float64 {
	a, b, c, d := f.rotated(membership{idx: idx})

	return -f.k * (r3.Dot(a, b)*r3.Dot(c, d) + r3.Dot(a, d)*r3.Dot(b, c) - r3.Dot(a, c)*r3.Dot(b, d))
}

// SiteEnergy implements Term.
func (f *FourSpin) SiteEnergy(s int) float64 {
	var e float64
	for _, m := range f.bySite[s] {
		e += f.plaquetteEnergy(m.idx)
	}

	return e
}

// Field implements Term.
func (f *FourSpin) Field(s int) r3.Vec {
	var h r3.Vec
	for _, m := range f.bySite[s] {
		_, b, c, d := f.rotated(m)
		h = r3.Add(h, r3.Scale(r3.Dot(c, d), b))
		h = r3.Add(h, r3.Scale(r3.Dot(b, c), d))
		h = r3.Sub(h, r3.Scale(r3.Dot(b, d), c))
	}

	return r3.Scale(f.k, h)
}

// PairEnergy implements Pairer: the energy of every plaquette holding both sites.
func (f *FourSpin) PairEnergy(s1, s2 int) float64 {
	if s1 == s2 {
		return 0
	}
	var e float64
	last := -1
	for _, m := range f.bySite[s1] {
		if m.idx == last {
			continue
		}
		last = m.idx
		for _, s := range f.plaqs[m.idx] {
			if s == s2 {
				e += f.plaquetteEnergy(m.idx)
				break
			}
		}
	}

	return e
}

// ThreeSpin is the three-site triangle interaction.
type ThreeSpin struct {
	base
	k      float64
	tris   [][3]int
	bySite [][]membership
}

// NewThreeSpin builds a three-spin term over geo.Triangles().
func NewThreeSpin(geo lattice.Geometry, arena *spin.Arena, k float64, opts ...Option) (*ThreeSpin, error) {
	if geo == nil {
		return nil, fmt.Errorf("%s: geometry: %w", methodNewThreeSpin, ErrNilArgument)
	}
	if err := checkArena(methodNewThreeSpin, geo, arena); err != nil {
		return nil, err
	}
	tris := geo.Triangles()
	if len(tris) == 0 {
		return nil, fmt.Errorf("%s: no triangles: %w", methodNewThreeSpin, ErrMissingTopology)
	}

	cells := make([][]int, len(tris))
	for i := range tris {
		cells[i] = tris[i][:]
	}

	return &ThreeSpin{
		base:   newBase(KindThreeSpin, FactorTriangle, arena, newTermConfig(opts...)),
		k:      k,
		tris:   tris,
		bySite: indexCells(geo.NumSites(), cells),
	}, nil
}

func (t *ThreeSpin) rotated(m membership) (a, b, c r3.Vec) {
	tri := t.tris[m.idx]
	at := t.arena.At
	return at(tri[m.pos]), at(tri[(m.pos+1)%3]), at(tri[(m.pos+2)%3])
}

func (t *ThreeSpin) triangleEnergy(idx int) float64 {
	a, b, c := t.rotated(membership{idx: idx})
	ab, bc, ca := r3.Dot(a, b), r3.Dot(b, c), r3.Dot(c, a)

	return -t.k * (ab*bc + bc*ca + ca*ab)
}

// SiteEnergy implements Term.
func (t *ThreeSpin) SiteEnergy(s int) float64 {
	var e float64
	for _, m := range t.bySite[s] {
		e += t.triangleEnergy(m.idx)
	}

	return e
}

// Field implements Term.
func (t *ThreeSpin) Field(s int) r3.Vec {
	var h r3.Vec
	for _, m := range t.bySite[s] {
		a, b, c := t.rotated(m)
		bc := r3.Dot(b, c)
		h = r3.Add(h, r3.Scale(bc, r3.Add(b, c)))
		h = r3.Add(h, r3.Scale(r3.Dot(a, b), c))
		h = r3.Add(h, r3.Scale(r3.Dot(a, c), b))
	}

	return r3.Scale(t.k, h)
}

// PairEnergy implements Pairer: the energy of every triangle holding both sites.
func (t *ThreeSpin) PairEnergy(s1, s2 int) float64 {
	if s1 == s2 {
		return 0
	}
	var e float64
	last := -1
	for _, m := range t.bySite[s1] {
		if m.idx == last {
			continue
		}
		last = m.idx
		for _, s := range t.tris[m.idx] {
			if s == s2 {
				e += t.triangleEnergy(m.idx)
				break
			}
		}
	}

	return e
}
