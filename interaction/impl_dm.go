// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_dm.go — Dzyaloshinskii–Moriya interaction.
//
// Model:
//   • Per-bond unit vector D_sn:
//       Neel   : D = unit(axis × r_sn)   (interfacial, radial)
//       Chiral : D = unit(r_sn)          (bulk, tangential)
//     D = 0 when |r_sn| < BondTolerance.
//   • E_s = −d Σ_n D_sn·(S_s × S_n).
//   • H_s = −∂E/∂S_s = d Σ_n S_n × D_sn = −d Σ_n D_sn × S_n.
//   • Factor 0.5. D_sn = −D_ns for both conventions, so each bond energy is
//     the same from either endpoint.
//
// Contract:
//   • Bond vectors are required; absence is ErrMissingTopology.
//   • Neel requires a non-zero axis (ErrInvalidParameter).

package interaction

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const methodNewDM = "NewDM"

// DMConvention selects how the DM vector follows the bond.
type DMConvention int

const (
	// Neel places D perpendicular to the bond and the symmetry axis.
	Neel DMConvention = iota
	// Chiral places D along the bond.
	Chiral
)

// String returns "Neel" or "Chiral".
func (c DMConvention) String() string {
	switch c {
	case Neel:
		return "Neel"
	case Chiral:
		return "Chiral"
	default:
		return "Unknown"
	}
}

// DMVector returns the unit DM vector for a bond r under conv.
func DMVector(conv DMConvention, axis, r r3.Vec) r3.Vec {
	if r3.Norm(r) < BondTolerance {
		return r3.Vec{}
	}
	if conv == Chiral {
		return spin.UnitOrZero(r)
	}

	return spin.UnitOrZero(r3.Cross(axis, r))
}

// DM is the uniform-strength DM term with precomputed per-bond vectors.
type DM struct {
	base
	d    float64
	conv DMConvention
	topo bondTopology
	vecs []r3.Vec // unit D per slot, aligned with topo.table.Index
}

// NewDM builds a DM term of strength d.
func NewDM(geo lattice.Geometry, arena *spin.Arena, d float64, conv DMConvention, axis r3.Vec, opts ...Option) (*DM, error) {
	cfg := newTermConfig(opts...)
	topo, err := loadTopology(methodNewDM, geo, arena, cfg.order, true)
	if err != nil {
		return nil, err
	}
	vecs, err := dmVectors(methodNewDM, topo, conv, axis)
	if err != nil {
		return nil, err
	}

	return &DM{
		base: newBase(KindDM, FactorPair, arena, cfg),
		d:    d,
		conv: conv,
		topo: topo,
		vecs: vecs,
	}, nil
}

// dmVectors evaluates DMVector for every slot.
func dmVectors(method string, topo bondTopology, conv DMConvention, axis r3.Vec) ([]r3.Vec, error) {
	switch conv {
	case Neel:
		if r3.Norm(axis) < spin.Tolerance {
			return nil, fmt.Errorf("%s: Neel axis is zero: %w", method, ErrInvalidParameter)
		}
	case Chiral:
	default:
		return nil, fmt.Errorf("%s: convention %d: %w", method, conv, ErrInvalidParameter)
	}

	vecs := make([]r3.Vec, len(topo.table.Index))
	for i, n := range topo.table.Index {
		if n == lattice.NoNeighbor {
			continue
		}
		vecs[i] = DMVector(conv, axis, topo.bonds[i])
	}

	return vecs, nil
}

// Vector returns the unit DM vector stored for slot k of site s.
func (m *DM) Vector(s, k int) r3.Vec { return m.vecs[s*m.topo.table.Width+k] }

// Convention returns the DM convention.
func (m *DM) Convention() DMConvention { return m.conv }

// SiteEnergy implements Term.
func (m *DM) SiteEnergy(s int) float64 {
	si := m.arena.At(s)
	w := m.topo.table.Width
	var sum float64
	for k, n := range m.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		sum += r3.Dot(m.vecs[s*w+k], r3.Cross(si, m.arena.At(n)))
	}

	return -m.d * sum
}

// Field implements Term.
func (m *DM) Field(s int) r3.Vec {
	w := m.topo.table.Width
	var h r3.Vec
	for k, n := range m.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		h = r3.Add(h, r3.Cross(m.vecs[s*w+k], m.arena.At(n)))
	}

	return r3.Scale(-m.d, h)
}

// PairEnergy implements Pairer.
func (m *DM) PairEnergy(s1, s2 int) float64 {
	w := m.topo.table.Width
	c := r3.Cross(m.arena.At(s1), m.arena.At(s2))
	var sum float64
	for k, n := range m.topo.table.Row(s1) {
		if n == s2 {
			sum += r3.Dot(m.vecs[s1*w+k], c)
		}
	}

	return -m.d * sum
}
