// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_modulated.go — spatially modulated exchange and anisotropy.
//
// ModulatedExchange:
//   • J_sk = J0 + A·f(m_sk), m_sk the bond midpoint. The midpoint is always
//     taken from the lower-index endpoint so both records of a bond hold the
//     same coefficient even across periodic seams.
//   • Energy/field as Exchange with per-slot J. Factor 0.5.
//
// ModulatedAnisotropy:
//   • K_s = K0 + A·f(r_s); uniaxial energy/field. Factor 1.
//
// Profiles are evaluated once at construction around geo.CenterSite().

package interaction

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	methodNewModulatedExchange   = "NewModulatedExchange"
	methodNewModulatedAnisotropy = "NewModulatedAnisotropy"
)

// centerOf resolves the center coordinate used by profiles.
func centerOf(method string, geo lattice.Geometry) (r3.Vec, []r3.Vec, error) {
	coords := geo.Coordinates()
	if len(coords) != geo.NumSites() {
		return r3.Vec{}, nil, fmt.Errorf("%s: %d coordinates for %d sites: %w", method, len(coords), geo.NumSites(), ErrMissingTopology)
	}
	c := geo.CenterSite()
	if c < 0 || c >= len(coords) {
		return r3.Vec{}, nil, fmt.Errorf("%s: center site %d: %w", method, c, ErrMissingTopology)
	}

	return coords[c], coords, nil
}

// ModulatedExchange is exchange with a per-bond profile coefficient.
type ModulatedExchange struct {
	base
	topo  bondTopology
	coeff []float64 // per slot
}

// NewModulatedExchange builds J_sk = j0 + amp·f(midpoint).
func NewModulatedExchange(geo lattice.Geometry, arena *spin.Arena, j0, amp float64, mod Modulation, opts ...Option) (*ModulatedExchange, error) {
	cfg := newTermConfig(opts...)
	topo, err := loadTopology(methodNewModulatedExchange, geo, arena, cfg.order, true)
	if err != nil {
		return nil, err
	}
	center, coords, err := centerOf(methodNewModulatedExchange, geo)
	if err != nil {
		return nil, err
	}
	f, err := mod.Profile(center)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewModulatedExchange, err)
	}

	coeff := make([]float64, len(topo.table.Index))
	w := topo.table.Width
	for s := 0; s < geo.NumSites(); s++ {
		for k, n := range topo.table.Row(s) {
			if n == lattice.NoNeighbor {
				continue
			}
			var mid r3.Vec
			if n < s {
				mid = r3.Add(coords[n], r3.Scale(-0.5, topo.bonds[s*w+k]))
			} else {
				mid = r3.Add(coords[s], r3.Scale(0.5, topo.bonds[s*w+k]))
			}
			coeff[s*w+k] = j0 + amp*f(mid)
		}
	}

	return &ModulatedExchange{
		base:  newBase(KindModulatedExchange, FactorPair, arena, cfg),
		topo:  topo,
		coeff: coeff,
	}, nil
}

// Coefficient returns J for slot k of site s.
func (m *ModulatedExchange) Coefficient(s, k int) float64 { return m.coeff[s*m.topo.table.Width+k] }

// SiteEnergy implements Term.
func (m *ModulatedExchange) SiteEnergy(s int) float64 {
	si := m.arena.At(s)
	w := m.topo.table.Width
	var e float64
	for k, n := range m.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		e -= m.coeff[s*w+k] * r3.Dot(si, m.arena.At(n))
	}

	return e
}

// Field implements Term.
func (m *ModulatedExchange) Field(s int) r3.Vec {
	w := m.topo.table.Width
	var h r3.Vec
	for k, n := range m.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		h = r3.Add(h, r3.Scale(m.coeff[s*w+k], m.arena.At(n)))
	}

	return h
}

// PairEnergy implements Pairer.
func (m *ModulatedExchange) PairEnergy(s1, s2 int) float64 {
	w := m.topo.table.Width
	d := r3.Dot(m.arena.At(s1), m.arena.At(s2))
	var e float64
	for k, n := range m.topo.table.Row(s1) {
		if n == s2 {
			e -= m.coeff[s1*w+k] * d
		}
	}

	return e
}

// ModulatedAnisotropy is uniaxial anisotropy with a per-site profile.
type ModulatedAnisotropy struct {
	base
	axis  r3.Vec
	coeff []float64 // per site
}

// NewModulatedAnisotropy builds K_s = k0 + amp·f(r_s) about axis.
func NewModulatedAnisotropy(geo lattice.Geometry, arena *spin.Arena, k0, amp float64, axis r3.Vec, mod Modulation, opts ...Option) (*ModulatedAnisotropy, error) {
	if geo == nil {
		return nil, fmt.Errorf("%s: geometry: %w", methodNewModulatedAnisotropy, ErrNilArgument)
	}
	if err := checkArena(methodNewModulatedAnisotropy, geo, arena); err != nil {
		return nil, err
	}
	u, err := unitAxis(methodNewModulatedAnisotropy, axis)
	if err != nil {
		return nil, err
	}
	center, coords, err := centerOf(methodNewModulatedAnisotropy, geo)
	if err != nil {
		return nil, err
	}
	f, err := mod.Profile(center)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewModulatedAnisotropy, err)
	}

	coeff := make([]float64, len(coords))
	for s, r := range coords {
		coeff[s] = k0 + amp*f(r)
	}

	return &ModulatedAnisotropy{
		base:  newBase(KindModulatedAnisotropy, FactorSingle, arena, newTermConfig(opts...)),
		axis:  u,
		coeff: coeff,
	}, nil
}

// Coefficient returns K at site s.
func (m *ModulatedAnisotropy) Coefficient(s int) float64 { return m.coeff[s] }

// SiteEnergy implements Term.
func (m *ModulatedAnisotropy) SiteEnergy(s int) float64 {
	return uniaxialEnergy(m.coeff[s], m.axis, m.arena.At(s))
}

// Field implements Term.
func (m *ModulatedAnisotropy) Field(s int) r3.Vec {
	return uniaxialField(m.coeff[s], m.axis, m.arena.At(s))
}
