// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_biquadratic.go — biquadratic exchange.
//
// Model:
//   • E_s = −K Σ_n (S_s·S_n)².
//   • H_s = 2K Σ_n (S_s·S_n) S_n.
//   • Factor 0.5.

package interaction

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const methodNewBiquadratic = "NewBiquadratic"

// Biquadratic is the (S_i·S_j)² pair term.
type Biquadratic struct {
	base
	k    float64
	topo bondTopology
}

// NewBiquadratic builds a biquadratic term with constant k.
func NewBiquadratic(geo lattice.Geometry, arena *spin.Arena, k float64, opts ...Option) (*Biquadratic, error) {
	cfg := newTermConfig(opts...)
	topo, err := loadTopology(methodNewBiquadratic, geo, arena, cfg.order, false)
	if err != nil {
		return nil, err
	}

	return &Biquadratic{
		base: newBase(KindBiquadratic, FactorPair, arena, cfg),
		k:    k,
		topo: topo,
	}, nil
}

// SiteEnergy implements Term.
func (b *Biquadratic) SiteEnergy(s int) float64 {
	si := b.arena.At(s)
	var sum float64
	for _, n := range b.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		d := r3.Dot(si, b.arena.At(n))
		sum += d * d
	}

	return -b.k * sum
}

// Field implements Term.
func (b *Biquadratic) Field(s int) r3.Vec {
	si := b.arena.At(s)
	var h r3.Vec
	for _, n := range b.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		sn := b.arena.At(n)
		h = r3.Add(h, r3.Scale(r3.Dot(si, sn), sn))
	}

	return r3.Scale(2*b.k, h)
}

// PairEnergy implements Pairer.
func (b *Biquadratic) PairEnergy(s1, s2 int) float64 {
	var sum float64
	for _, n := range b.topo.table.Row(s1) {
		if n == s2 {
			d := r3.Dot(b.arena.At(s1), b.arena.At(s2))
			sum += d * d
		}
	}

	return -b.k * sum
}
