// SPDX-License-Identifier: MIT
// Package: observable
//
// energy.go — per-term and total energy with heat capacity.
//
// Columns:
//   • steps: E_<label> for every term in Hamiltonian order, then E_total.
//   • mean : ⟨E_<label>⟩…, ⟨E_total⟩, C = Var(E_total)/(kB·T²).
// Var is the population variance over the window.

package observable

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/JHagemeister/MonteCrystal-sub001/hamiltonian"
	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
)

const kindEnergy = "Energy"

// Energy samples the energy of every term and the total.
type Energy struct {
	window
	h     *hamiltonian.Hamiltonian
	terms []interaction.Term
	cols  [][]float64 // len(terms)+1 columns; the last is the total
}

// NewEnergy observes h. The term list is fixed at construction.
func NewEnergy(h *hamiltonian.Hamiltonian, opts ...Option) (*Energy, error) {
	if h == nil {
		return nil, fmt.Errorf("NewEnergy: hamiltonian: %w", ErrNilArgument)
	}
	terms := h.Terms()

	return &Energy{
		window: newWindow(kindEnergy, newSettings(opts...)),
		h:      h,
		terms:  terms,
		cols:   columns(len(terms)+1, 0),
	}, nil
}

// StepsHeader implements Observable.
func (e *Energy) StepsHeader() []string {
	out := make([]string, 0, len(e.terms)+1)
	for _, t := range e.terms {
		out = append(out, "E_"+t.Label())
	}

	return append(out, "E_total")
}

// MeanHeader implements Observable.
func (e *Energy) MeanHeader() []string {
	out := make([]string, 0, len(e.terms)+2)
	for _, h := range e.StepsHeader() {
		out = append(out, "<"+h+">")
	}

	return append(out, "C")
}

// TakeValue implements Observable.
func (e *Energy) TakeValue() error {
	i, err := e.advance()
	if err != nil {
		return err
	}
	var total float64
	for c, t := range e.terms {
		v := e.h.PartEnergy(t)
		e.cols[c][i] = v
		total += v
	}
	e.cols[len(e.terms)][i] = total

	return nil
}

// StepValue implements Observable.
func (e *Energy) StepValue(i int) ([]float64, error) {
	if err := e.requireStep(i); err != nil {
		return nil, err
	}

	return row(e.cols, i), nil
}

// MeanValue implements Observable.
func (e *Energy) MeanValue(temperature float64) ([]float64, error) {
	out := make([]float64, len(e.cols)+1)
	if err := e.requireFull(); err != nil {
		return out, err
	}
	if err := e.requireTemperature(temperature); err != nil {
		return out, err
	}
	for c, col := range e.cols {
		out[c] = stat.Mean(col, nil)
	}
	_, variance := stat.PopMeanVariance(e.cols[len(e.terms)], nil)
	out[len(e.cols)] = variance / (BoltzmannMeV * temperature * temperature)

	return out, nil
}

// SetCapacity implements Observable.
func (e *Energy) SetCapacity(n int) {
	e.resize(n)
	e.cols = columns(len(e.terms)+1, e.capacity)
}

// ClearStorage implements Observable.
func (e *Energy) ClearStorage() { e.SetCapacity(e.capacity) }
