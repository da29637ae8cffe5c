// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_defect.go — defect variants of exchange, DM and uniaxial anisotropy.
//
// DefectExchange:
//   • Uniform J everywhere except bonds touched by overrides; coefficients
//     live in a BondMap[float64] with identity reciprocity.
//
// DefectDM:
//   • Per-bond DM vectors d_sk·D̂_sk stored in a BondMap[r3.Vec] with negating
//     reciprocity. Overrides carry scalar strengths; a point defect
//     (Slot = AllSlots) rescales every bond of the site.
//   • E_s = −Σ_k V_sk·(S_s×S_n), H_s = −Σ_k V_sk×S_n.
//
// DefectAnisotropy:
//   • K_s = overrides[s] if present, else K. Single-site; no propagation.
//
// Factors: 0.5, 0.5, 1.

package interaction

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	methodNewDefectExchange   = "NewDefectExchange"
	methodNewDefectDM         = "NewDefectDM"
	methodNewDefectAnisotropy = "NewDefectAnisotropy"
)

// DefectExchange is exchange with localized coupling overrides.
type DefectExchange struct {
	base
	topo  bondTopology
	coeff *BondMap[float64]
}

// NewDefectExchange builds exchange of strength j with the given overrides.
func NewDefectExchange(geo lattice.Geometry, arena *spin.Arena, j float64, overrides []BondOverride[float64], opts ...Option) (*DefectExchange, error) {
	cfg := newTermConfig(opts...)
	topo, err := loadTopology(methodNewDefectExchange, geo, arena, cfg.order, false)
	if err != nil {
		return nil, err
	}
	topo.bonds = optionalBonds(geo, cfg.order, topo.table)
	m, err := BuildSymmetricBondMap(topo.table, topo.bonds,
		func(int, int) float64 { return j },
		overrides,
		func(v float64) float64 { return v })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewDefectExchange, err)
	}

	return &DefectExchange{
		base:  newBase(KindDefectExchange, FactorPair, arena, cfg),
		topo:  topo,
		coeff: m,
	}, nil
}

// Couplings exposes the defect map.
func (d *DefectExchange) Couplings() *BondMap[float64] { return d.coeff }

// SiteEnergy implements Term.
func (d *DefectExchange) SiteEnergy(s int) float64 {
	si := d.arena.At(s)
	var e float64
	for k, n := range d.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		e -= d.coeff.At(s, k) * r3.Dot(si, d.arena.At(n))
	}

	return e
}

// Field implements Term.
func (d *DefectExchange) Field(s int) r3.Vec {
	var h r3.Vec
	for k, n := range d.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		h = r3.Add(h, r3.Scale(d.coeff.At(s, k), d.arena.At(n)))
	}

	return h
}

// PairEnergy implements Pairer.
func (d *DefectExchange) PairEnergy(s1, s2 int) float64 {
	dot := r3.Dot(d.arena.At(s1), d.arena.At(s2))
	var e float64
	for k, n := range d.topo.table.Row(s1) {
		if n == s2 {
			e -= d.coeff.At(s1, k) * dot
		}
	}

	return e
}

// DefectDM is DM with localized strength overrides.
type DefectDM struct {
	base
	topo bondTopology
	vecs *BondMap[r3.Vec]
}

// NewDefectDM builds a DM term of strength d with per-bond strength overrides.
func NewDefectDM(geo lattice.Geometry, arena *spin.Arena, d float64, conv DMConvention, axis r3.Vec, overrides []BondOverride[float64], opts ...Option) (*DefectDM, error) {
	cfg := newTermConfig(opts...)
	topo, err := loadTopology(methodNewDefectDM, geo, arena, cfg.order, true)
	if err != nil {
		return nil, err
	}
	unit, err := dmVectors(methodNewDefectDM, topo, conv, axis)
	if err != nil {
		return nil, err
	}

	w := topo.table.Width
	expanded := make([]BondOverride[r3.Vec], 0, len(overrides))
	for i, o := range overrides {
		if o.Site < 0 || o.Site >= geo.NumSites() {
			return nil, fmt.Errorf("%s: override %d site=%d: %w", methodNewDefectDM, i, o.Site, ErrBadDefect)
		}
		if o.Slot != AllSlots {
			if o.Slot < 0 || o.Slot >= w {
				return nil, fmt.Errorf("%s: override %d slot=%d: %w", methodNewDefectDM, i, o.Slot, ErrBadDefect)
			}
			expanded = append(expanded, BondOverride[r3.Vec]{Site: o.Site, Slot: o.Slot, Value: r3.Scale(o.Value, unit[o.Site*w+o.Slot])})
			continue
		}
		for k, n := range topo.table.Row(o.Site) {
			if n == lattice.NoNeighbor {
				continue
			}
			expanded = append(expanded, BondOverride[r3.Vec]{Site: o.Site, Slot: k, Value: r3.Scale(o.Value, unit[o.Site*w+k])})
		}
	}

	m, err := BuildSymmetricBondMap(topo.table, topo.bonds,
		func(s, k int) r3.Vec { return r3.Scale(d, unit[s*w+k]) },
		expanded,
		func(v r3.Vec) r3.Vec { return r3.Scale(-1, v) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewDefectDM, err)
	}

	return &DefectDM{
		base: newBase(KindDefectDM, FactorPair, arena, cfg),
		topo: topo,
		vecs: m,
	}, nil
}

// Vectors exposes the per-bond DM vector map.
func (d *DefectDM) Vectors() *BondMap[r3.Vec] { return d.vecs }

// SiteEnergy implements Term.
func (d *DefectDM) SiteEnergy(s int) float64 {
	si := d.arena.At(s)
	var e float64
	for k, n := range d.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		e -= r3.Dot(d.vecs.At(s, k), r3.Cross(si, d.arena.At(n)))
	}

	return e
}

// Field implements Term.
func (d *DefectDM) Field(s int) r3.Vec {
	var h r3.Vec
	for k, n := range d.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		h = r3.Sub(h, r3.Cross(d.vecs.At(s, k), d.arena.At(n)))
	}

	return h
}

// PairEnergy implements Pairer.
func (d *DefectDM) PairEnergy(s1, s2 int) float64 {
	c := r3.Cross(d.arena.At(s1), d.arena.At(s2))
	var e float64
	for k, n := range d.topo.table.Row(s1) {
		if n == s2 {
			e -= r3.Dot(d.vecs.At(s1, k), c)
		}
	}

	return e
}

// DefectAnisotropy is uniaxial anisotropy with per-site overrides.
type DefectAnisotropy struct {
	base
	k       float64
	axis    r3.Vec
	defects map[int]float64
}

// NewDefectAnisotropy builds K sin²θ with K replaced at the given sites.
func NewDefectAnisotropy(arena *spin.Arena, k float64, axis r3.Vec, defects map[int]float64, opts ...Option) (*DefectAnisotropy, error) {
	if err := checkArena(methodNewDefectAnisotropy, nil, arena); err != nil {
		return nil, err
	}
	u, err := unitAxis(methodNewDefectAnisotropy, axis)
	if err != nil {
		return nil, err
	}
	own := make(map[int]float64, len(defects))
	for s, v := range defects {
		if s < 0 || s >= arena.Len() {
			return nil, fmt.Errorf("%s: site=%d: %w", methodNewDefectAnisotropy, s, ErrBadDefect)
		}
		own[s] = v
	}

	return &DefectAnisotropy{
		base:    newBase(KindDefectAnisotropy, FactorSingle, arena, newTermConfig(opts...)),
		k:       k,
		axis:    u,
		defects: own,
	}, nil
}

// Coefficient returns K at site s.
func (d *DefectAnisotropy) Coefficient(s int) float64 {
	if v, ok := d.defects[s]; ok {
		return v
	}

	return d.k
}

// SiteEnergy implements Term.
func (d *DefectAnisotropy) SiteEnergy(s int) float64 {
	return uniaxialEnergy(d.Coefficient(s), d.axis, d.arena.At(s))
}

// Field implements Term.
func (d *DefectAnisotropy) Field(s int) r3.Vec {
	return uniaxialField(d.Coefficient(s), d.axis, d.arena.At(s))
}
