// SPDX-License-Identifier: MIT
// Package: observable
//
// magnetisation.go — mean magnetization and absolute magnetization.
//
// Magnetisation:
//   • step: M = (1/N) Σ_s S_s, columns M_x M_y M_z.
//   • mean: ⟨M_x⟩ ⟨M_y⟩ ⟨M_z⟩ |⟨M⟩| χ with χ = (⟨|M|²⟩ − |⟨M⟩|²)/(kB·T).
//   • WithSiteResolved: per-site running sums, allocated on the first sample
//     after a clear and only when the option is set.
//
// AbsoluteMagnetisation:
//   • step: Σ_s |S_s,α| for α = x, y, z.
//   • mean: the step columns averaged over samples and divided by N.

package observable

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	kindMagnetisation         = "Magnetisation"
	kindAbsoluteMagnetisation = "AbsoluteMagnetisation"
)

// Magnetisation samples the per-site normalized magnetization.
type Magnetisation struct {
	window
	arena        *spin.Arena
	cols         [][]float64 // x, y, z
	siteResolved bool
	siteSums     []r3.Vec // nil until the first resolved sample
}

// NewMagnetisation observes arena.
func NewMagnetisation(arena *spin.Arena, opts ...Option) (*Magnetisation, error) {
	if arena == nil {
		return nil, fmt.Errorf("NewMagnetisation: arena: %w", ErrNilArgument)
	}
	s := newSettings(opts...)

	return &Magnetisation{
		window:       newWindow(kindMagnetisation, s),
		arena:        arena,
		cols:         columns(3, 0),
		siteResolved: s.siteResolved,
	}, nil
}

// StepsHeader implements Observable.
func (m *Magnetisation) StepsHeader() []string { return []string{"M_x", "M_y", "M_z"} }

// MeanHeader implements Observable.
func (m *Magnetisation) MeanHeader() []string {
	return []string{"<M_x>", "<M_y>", "<M_z>", "|<M>|", "chi"}
}

// TakeValue implements Observable.
func (m *Magnetisation) TakeValue() error {
	i, err := m.advance()
	if err != nil {
		return err
	}
	n := m.arena.Len()
	mv := r3.Scale(1/float64(n), m.arena.Magnetisation())
	m.cols[0][i], m.cols[1][i], m.cols[2][i] = mv.X, mv.Y, mv.Z

	if m.siteResolved {
		if m.siteSums == nil {
			m.siteSums = make([]r3.Vec, n)
		}
		for s, v := range m.arena.Spins() {
			m.siteSums[s] = r3.Add(m.siteSums[s], v)
		}
	}

	return nil
}

// StepValue implements Observable.
func (m *Magnetisation) StepValue(i int) ([]float64, error) {
	if err := m.requireStep(i); err != nil {
		return nil, err
	}

	return row(m.cols, i), nil
}

// MeanValue implements Observable.
func (m *Magnetisation) MeanValue(temperature float64) ([]float64, error) {
	out := make([]float64, 5)
	if err := m.requireFull(); err != nil {
		return out, err
	}
	if err := m.requireTemperature(temperature); err != nil {
		return out, err
	}

	mean := r3.Vec{X: stat.Mean(m.cols[0], nil), Y: stat.Mean(m.cols[1], nil), Z: stat.Mean(m.cols[2], nil)}
	sq := make([]float64, m.capacity)
	for i := range sq {
		v := r3.Vec{X: m.cols[0][i], Y: m.cols[1][i], Z: m.cols[2][i]}
		sq[i] = r3.Dot(v, v)
	}
	norm := r3.Norm(mean)

	out[0], out[1], out[2] = mean.X, mean.Y, mean.Z
	out[3] = norm
	out[4] = (stat.Mean(sq, nil) - norm*norm) / (BoltzmannMeV * temperature)

	return out, nil
}

// SiteResolved reports whether per-site sums are kept.
func (m *Magnetisation) SiteResolved() bool { return m.siteResolved }

// SiteMeans returns the mean spin of every site over the window. It needs
// WithSiteResolved and a full window; otherwise it returns nil and an error.
func (m *Magnetisation) SiteMeans() ([]r3.Vec, error) {
	if !m.siteResolved {
		return nil, fmt.Errorf("%s.SiteMeans: %w", m.kind, ErrNotSiteResolved)
	}
	if err := m.requireFull(); err != nil {
		return nil, err
	}
	out := make([]r3.Vec, len(m.siteSums))
	inv := 1 / float64(m.capacity)
	for s, v := range m.siteSums {
		out[s] = r3.Scale(inv, v)
	}

	return out, nil
}

// SetCapacity implements Observable.
func (m *Magnetisation) SetCapacity(n int) {
	m.resize(n)
	m.cols = columns(3, m.capacity)
	m.siteSums = nil
}

// ClearStorage implements Observable.
func (m *Magnetisation) ClearStorage() { m.SetCapacity(m.capacity) }

// AbsoluteMagnetisation samples Σ_s |S_s,α| per axis.
type AbsoluteMagnetisation struct {
	window
	arena *spin.Arena
	cols  [][]float64
}

// NewAbsoluteMagnetisation observes arena.
func NewAbsoluteMagnetisation(arena *spin.Arena, opts ...Option) (*AbsoluteMagnetisation, error) {
	if arena == nil {
		return nil, fmt.Errorf("NewAbsoluteMagnetisation: arena: %w", ErrNilArgument)
	}

	return &AbsoluteMagnetisation{
		window: newWindow(kindAbsoluteMagnetisation, newSettings(opts...)),
		arena:  arena,
		cols:   columns(3, 0),
	}, nil
}

// StepsHeader implements Observable.
func (a *AbsoluteMagnetisation) StepsHeader() []string {
	return []string{"|S_x|", "|S_y|", "|S_z|"}
}

// MeanHeader implements Observable.
func (a *AbsoluteMagnetisation) MeanHeader() []string {
	return []string{"<|S_x|>", "<|S_y|>", "<|S_z|>"}
}

// TakeValue implements Observable.
func (a *AbsoluteMagnetisation) TakeValue() error {
	i, err := a.advance()
	if err != nil {
		return err
	}
	var x, y, z float64
	for _, v := range a.arena.Spins() {
		x += math.Abs(v.X)
		y += math.Abs(v.Y)
		z += math.Abs(v.Z)
	}
	a.cols[0][i], a.cols[1][i], a.cols[2][i] = x, y, z

	return nil
}

// StepValue implements Observable.
func (a *AbsoluteMagnetisation) StepValue(i int) ([]float64, error) {
	if err := a.requireStep(i); err != nil {
		return nil, err
	}

	return row(a.cols, i), nil
}

// MeanValue implements Observable. Temperature is not used.
func (a *AbsoluteMagnetisation) MeanValue(float64) ([]float64, error) {
	out := make([]float64, 3)
	if err := a.requireFull(); err != nil {
		return out, err
	}
	norm := float64(a.arena.Len()) * float64(a.capacity)
	for c, col := range a.cols {
		out[c] = floats.Sum(col) / norm
	}

	return out, nil
}

// SetCapacity implements Observable.
func (a *AbsoluteMagnetisation) SetCapacity(n int) {
	a.resize(n)
	a.cols = columns(3, a.capacity)
}

// ClearStorage implements Observable.
func (a *AbsoluteMagnetisation) ClearStorage() { a.SetCapacity(a.capacity) }
