// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_exchange.go — isotropic Heisenberg exchange.
//
// Model:
//   • E_s = −J Σ_n S_s·S_n over the neighbor shell of the configured order.
//   • H_s = J Σ_n S_n.
//   • Factor 0.5: every bond is seen from both endpoints.
//
// Complexity:
//   • SiteEnergy/Field: O(width). PairEnergy: O(width).

package interaction

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const methodNewExchange = "NewExchange"

// Exchange is the uniform Heisenberg exchange term.
type Exchange struct {
	base
	j    float64
	topo bondTopology
}

// NewExchange builds an exchange term with coupling j.
func NewExchange(geo lattice.Geometry, arena *spin.Arena, j float64, opts ...Option) (*Exchange, error) {
	cfg := newTermConfig(opts...)
	topo, err := loadTopology(methodNewExchange, geo, arena, cfg.order, false)
	if err != nil {
		return nil, err
	}

	return &Exchange{
		base: newBase(KindExchange, FactorPair, arena, cfg),
		j:    j,
		topo: topo,
	}, nil
}

// J returns the coupling constant.
func (e *Exchange) J() float64 { return e.j }

// SiteEnergy implements Term.
func (e *Exchange) SiteEnergy(s int) float64 {
	si := e.arena.At(s)
	var sum float64
	for _, n := range e.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		sum += r3.Dot(si, e.arena.At(n))
	}

	return -e.j * sum
}

// Field implements Term.
func (e *Exchange) Field(s int) r3.Vec {
	var h r3.Vec
	for _, n := range e.topo.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		h = r3.Add(h, e.arena.At(n))
	}

	return r3.Scale(e.j, h)
}

// PairEnergy implements Pairer.
func (e *Exchange) PairEnergy(s1, s2 int) float64 {
	var sum float64
	for _, n := range e.topo.table.Row(s1) {
		if n == s2 {
			sum += r3.Dot(e.arena.At(s1), e.arena.At(s2))
		}
	}

	return -e.j * sum
}
