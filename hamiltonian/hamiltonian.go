// SPDX-License-Identifier: MIT
// Package: hamiltonian
//
// hamiltonian.go — ordered term aggregation and trial-move pricing.
//
// Contract:
//   • TotalEnergy = Σ_t PartEnergy(t); PartEnergy(t) = Factor(t)·Σ_s E_t(s).
//   • TotalField(s) = Σ_t H_t(s).
//   • SiteEnergy(s) = Σ_t E_t(s), no factor.
//   • PairEnergyExcludingSingleSite(s1,s2) = Σ_{t: Factor<0.9, t is Pairer}
//     t.PairEnergy(s1,s2). For a joint move of s1 and s2 the driver uses
//     SiteEnergy(s1)+SiteEnergy(s2)−PairEnergyExcludingSingleSite(s1,s2).
//
// Complexity:
//   • TotalEnergy: O(Σ_t N·cost_t). TotalField/SiteEnergy: O(Σ_t cost_t).

package hamiltonian

import (
	"fmt"
	"log/slog"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	methodNew          = "New"
	methodAdd          = "Add"
	methodPartEnergyAt = "PartEnergyAt"
	methodLookup       = "Lookup"
	methodRebind       = "RebindSpinArray"

	// pairFactorCutoff separates multi-site terms (0.5, 1/3, 0.25) from
	// single-site terms (1).
	pairFactorCutoff = 0.9
)

// Hamiltonian is an ordered collection of terms sharing one spin arena.
type Hamiltonian struct {
	arena   *spin.Arena
	terms   []interaction.Term
	logger  *slog.Logger
	workers int
}

// New builds a Hamiltonian over arena from terms, kept in the given order.
// Every term must have been constructed on the same arena and carry a
// distinct label.
func New(arena *spin.Arena, terms []interaction.Term, opts ...Option) (*Hamiltonian, error) {
	if arena == nil {
		return nil, fmt.Errorf("%s: arena: %w", methodNew, ErrNilArgument)
	}
	h := &Hamiltonian{
		arena:   arena,
		terms:   make([]interaction.Term, 0, len(terms)),
		logger:  slog.Default(),
		workers: defaultWorkers(),
	}
	for _, opt := range opts {
		opt(h)
	}
	for _, t := range terms {
		if err := h.Add(t); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
	}

	return h, nil
}

// Add appends t after all existing terms. t must read the Hamiltonian's
// arena, and its label must differ from every label already present; two
// terms of one kind need WithLabel.
func (h *Hamiltonian) Add(t interaction.Term) error {
	if t == nil {
		return fmt.Errorf("%s: term #%d: %w", methodAdd, len(h.terms), ErrNilArgument)
	}
	if t.Arena() != h.arena {
		return fmt.Errorf("%s: term #%d (%s): %w", methodAdd, len(h.terms), t.Label(), ErrArenaMismatch)
	}
	for _, prev := range h.terms {
		if prev.Label() == t.Label() {
			return fmt.Errorf("%s: term #%d: label %q: %w", methodAdd, len(h.terms), t.Label(), ErrDuplicateLabel)
		}
	}
	h.terms = append(h.terms, t)

	return nil
}

// Arena returns the shared spin arena.
func (h *Hamiltonian) Arena() *spin.Arena { return h.arena }

// NumSites returns the atom count N.
func (h *Hamiltonian) NumSites() int { return h.arena.Len() }

// Terms returns the terms in insertion order. The slice is a copy.
func (h *Hamiltonian) Terms() []interaction.Term {
	out := make([]interaction.Term, len(h.terms))
	copy(out, h.terms)

	return out
}

// Labels returns the term labels in insertion order.
func (h *Hamiltonian) Labels() []string {
	out := make([]string, len(h.terms))
	for i, t := range h.terms {
		out[i] = t.Label()
	}

	return out
}

// PartEnergy returns Factor(t)·Σ_s t.SiteEnergy(s).
func (h *Hamiltonian) PartEnergy(t interaction.Term) float64 {
	n := h.arena.Len()
	var e float64
	for s := 0; s < n; s++ {
		e += t.SiteEnergy(s)
	}

	return e * t.Factor()
}

// PartEnergyAt returns the energy of the i-th term. An out-of-range index is
// logged at Warn and yields 0 with ErrIndexOutOfRange.
func (h *Hamiltonian) PartEnergyAt(i int) (float64, error) {
	if i < 0 || i >= len(h.terms) {
		h.logger.Warn("part energy index out of range",
			"index", i,
			"terms", len(h.terms))
		return 0, fmt.Errorf("%s: index=%d, terms=%d: %w", methodPartEnergyAt, i, len(h.terms), ErrIndexOutOfRange)
	}

	return h.PartEnergy(h.terms[i]), nil
}

// PartEnergies returns PartEnergy for every term in insertion order.
func (h *Hamiltonian) PartEnergies() []float64 {
	out := make([]float64, len(h.terms))
	for i, t := range h.terms {
		out[i] = h.PartEnergy(t)
	}

	return out
}

// TotalEnergy returns the total system energy.
func (h *Hamiltonian) TotalEnergy() float64 {
	return floats.Sum(h.PartEnergies())
}

// TotalField returns the effective field Σ_t H_t(s).
func (h *Hamiltonian) TotalField(s int) r3.Vec {
	var f r3.Vec
	for _, t := range h.terms {
		f = r3.Add(f, t.Field(s))
	}

	return f
}

// SiteEnergy returns Σ_t E_t(s) without correction factors.
func (h *Hamiltonian) SiteEnergy(s int) float64 {
	var e float64
	for _, t := range h.terms {
		e += t.SiteEnergy(s)
	}

	return e
}

// PairEnergyExcludingSingleSite returns the shared energy of s1 and s2 over
// all multi-site terms.
func (h *Hamiltonian) PairEnergyExcludingSingleSite(s1, s2 int) float64 {
	var e float64
	for _, t := range h.terms {
		if t.Factor() >= pairFactorCutoff {
			continue
		}
		if p, ok := t.(interaction.Pairer); ok {
			e += p.PairEnergy(s1, s2)
		}
	}

	return e
}

// RebindSpinArray makes every term read buf from now on.
func (h *Hamiltonian) RebindSpinArray(buf []r3.Vec) error {
	if err := h.arena.Rebind(buf); err != nil {
		return fmt.Errorf("%s: %w", methodRebind, err)
	}

	return nil
}

// Lookup returns the first term whose label equals label, or failing that the
// first whose label starts with it.
func (h *Hamiltonian) Lookup(label string) (interaction.Term, error) {
	for _, t := range h.terms {
		if t.Label() == label {
			return t, nil
		}
	}
	if label != "" {
		for _, t := range h.terms {
			if strings.HasPrefix(t.Label(), label) {
				return t, nil
			}
		}
	}

	return nil, fmt.Errorf("%s: %q: %w", methodLookup, label, ErrTermNotFound)
}
